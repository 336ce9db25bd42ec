package ast

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Printer provides pretty-printing for AST nodes.
// It outputs an indented tree suitable for debugging.
type Printer struct {
	w      io.Writer
	indent int
	err    error

	// Locations, if set, appends the source span of each node that has one.
	Locations *Locations
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes a pretty-printed representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	p.printf("\n")
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) newline() {
	p.printf("\n")
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "  ")
	}
}

func (p *Printer) printNode(node Node) {
	if isNil(node) {
		p.printf("<nil>")
		return
	}
	k := node.Type()
	p.printf("%s", k)
	v := value(node)
	for _, fd := range fieldTable[k] {
		if fd.Shape.IsNode() {
			continue
		}
		x := v.Field(fd.index)
		if fd.Shape == MaybeScalar && x.String() == "" {
			continue
		}
		p.printf(" %s=%s", fd.Name, scalarString(x))
	}
	if p.Locations != nil {
		if s, ok := p.Locations.Get(node); ok {
			p.printf(" @%s", s)
		}
	}

	p.indent++
	for _, fd := range fieldTable[k] {
		x := v.Field(fd.index)
		switch {
		case fd.Shape.IsList():
			for i := 0; i < x.Len(); i++ {
				p.newline()
				p.printf("%s[%d]: ", fd.Name, i)
				if c := nodeOf(x.Index(i)); c != nil {
					p.printNode(c)
				} else {
					p.printf("<hole>")
				}
			}
		case fd.Shape.IsNode():
			if c := nodeOf(x); c != nil {
				p.newline()
				p.printf("%s: ", fd.Name)
				p.printNode(c)
			}
		}
	}
	p.indent--
}

func scalarString(x reflect.Value) string {
	switch x.Kind() {
	case reflect.String:
		return strconv.Quote(x.String())
	case reflect.Bool:
		return strconv.FormatBool(x.Bool())
	case reflect.Float64:
		return strconv.FormatFloat(x.Float(), 'g', -1, 64)
	}
	if s, ok := x.Interface().(fmt.Stringer); ok {
		return strconv.Quote(s.String())
	}
	return fmt.Sprint(x.Interface())
}

// String returns a string representation of the node.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.printNode(node)
	return sb.String()
}
