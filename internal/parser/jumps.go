package parser

import (
	"slices"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/token"
)

// jumps collects the control transfers of a statement that are not yet
// resolved by an enclosing construct, and the labels it declares.
//
// Sibling statements combine with concat, which is associative and has the
// zero value as identity. The constructs that resolve jumps apply one of
// loop, switchCase or label on the way up; function boundaries report what
// is left (see Parser.reportJumps).
type jumps struct {
	breaks    []jump
	continues []jump
	returns   []token.Position
	labels    []string
}

type jump struct {
	label   string // "" for an unlabeled jump
	pos     token.Position
	notLoop bool // continue inside a non-iteration statement with its label
}

func (j jumps) concat(o jumps) jumps {
	return jumps{
		breaks:    appendShared(j.breaks, o.breaks),
		continues: appendShared(j.continues, o.continues),
		returns:   appendShared(j.returns, o.returns),
		labels:    appendShared(j.labels, o.labels),
	}
}

// appendShared appends b to a without writing into a's backing array.
func appendShared[T any](a, b []T) []T {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	return append(a[:len(a):len(a)], b...)
}

// loop resolves the unlabeled break and continue statements of an
// iteration body.
func (j jumps) loop() jumps {
	j.breaks = without(j.breaks, "")
	j.continues = without(j.continues, "")
	return j
}

// switchCase resolves the unlabeled break statements of a switch.
func (j jumps) switchCase() jumps {
	j.breaks = without(j.breaks, "")
	return j
}

// label resolves the jumps targeting a labeled statement. A continue only
// resolves when the labeled body is an iteration statement; otherwise it
// stays free and is marked as aimed at a non-iteration label.
func (j jumps) label(name string, iteration bool) jumps {
	j.breaks = without(j.breaks, name)
	if iteration {
		j.continues = without(j.continues, name)
	} else {
		j.continues = markNotLoop(j.continues, name)
	}
	j.labels = appendShared(j.labels, []string{name})
	return j
}

func (j jumps) declares(label string) bool {
	return slices.Contains(j.labels, label)
}

func markNotLoop(list []jump, label string) []jump {
	if !slices.ContainsFunc(list, func(x jump) bool { return x.label == label && !x.notLoop }) {
		return list
	}
	out := slices.Clone(list)
	for i := range out {
		if out[i].label == label {
			out[i].notLoop = true
		}
	}
	return out
}

func without(list []jump, label string) []jump {
	if !slices.ContainsFunc(list, func(x jump) bool { return x.label == label }) {
		return list
	}
	var out []jump
	for _, x := range list {
		if x.label != label {
			out = append(out, x)
		}
	}
	return out
}

// reportJumps records an early error for every jump left free at a
// function or program boundary. Free returns are only reported at the
// program level.
func (p *Parser) reportJumps(j jumps, program bool) {
	for _, b := range j.breaks {
		if b.label == "" {
			p.early.Add(b.pos, errIllegalBreak)
		} else {
			p.early = append(p.early, errorf(b.pos, errUndefinedLabel, b.label))
		}
	}
	for _, c := range j.continues {
		switch {
		case c.label == "":
			p.early.Add(c.pos, errIllegalContinue)
		case c.notLoop:
			p.early = append(p.early, errorf(c.pos, errContinueNotLoop, c.label))
		default:
			p.early = append(p.early, errorf(c.pos, errUndefinedLabel, c.label))
		}
	}
	if program {
		for _, pos := range j.returns {
			p.early.Add(pos, errIllegalReturn)
		}
	}
}

// labelTarget strips nested labels from the body of a labeled statement.
func labelTarget(s ast.Statement) ast.Statement {
	for {
		l, ok := s.(*ast.LabeledStatement)
		if !ok {
			return s
		}
		s = l.Body
	}
}
