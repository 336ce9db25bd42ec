package ast

import "github.com/kolkov/ujs/internal/token"

// Locations maps nodes to their source spans. Nodes are keyed by pointer
// identity, so two structurally equal nodes have separate entries.
//
// The zero value is not usable; create one with NewLocations.
type Locations struct {
	spans map[Node]token.Span
}

// NewLocations returns an empty location table.
func NewLocations() *Locations {
	return &Locations{spans: make(map[Node]token.Span)}
}

// Set records the span of n.
func (l *Locations) Set(n Node, s token.Span) {
	l.spans[n] = s
}

// Get returns the span of n.
func (l *Locations) Get(n Node) (token.Span, bool) {
	s, ok := l.spans[n]
	return s, ok
}

// Len returns the number of recorded nodes.
func (l *Locations) Len() int {
	return len(l.spans)
}
