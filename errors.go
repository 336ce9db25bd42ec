package ujs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/parser"
	"github.com/kolkov/ujs/internal/semantic"
	"github.com/kolkov/ujs/internal/token"
)

// JsError is a lexical or syntax error. Parsing stops at the first one.
type JsError struct {
	Message string
	Line    int // 1-based line number
	Column  int // 1-based byte column
	Offset  int // 0-based byte offset
}

func (e *JsError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ValidationError is an early error: a program that matches the grammar
// but breaks a static rule of the language.
type ValidationError struct {
	Message string
	// Node is the offending node. It is nil for errors the parser
	// detects before the node is built.
	Node ast.Node
	// Line, Column and Offset locate the error in the source. They are
	// zero for trees without locations.
	Line   int
	Column int
	Offset int
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	if e.Node != nil {
		return fmt.Sprintf("%s: %s", e.Node.Type(), e.Message)
	}
	return e.Message
}

// EarlyErrors is returned by the parse functions when a program parses
// but has early errors. It holds all of them, ordered by source offset.
type EarlyErrors []*ValidationError

func (el EarlyErrors) Error() string {
	switch len(el) {
	case 0:
		return "no early errors"
	case 1:
		return "early error at " + el[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d early errors:", len(el))
	for _, e := range el {
		sb.WriteString("\n\t")
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// syntaxError converts a fatal parser or lexer error to a JsError.
func syntaxError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return newJsError(pe.Pos, pe.Message)
	}
	var le *lexer.Error
	if errors.As(err, &le) {
		return newJsError(le.Pos, le.Message)
	}
	return &JsError{Message: err.Error()}
}

func newJsError(pos token.Position, msg string) *JsError {
	return &JsError{
		Message: msg,
		Line:    pos.Line,
		Column:  pos.Column,
		Offset:  pos.Offset,
	}
}

// earlyErrors merges the errors found by the parser with those of the
// checker.
func earlyErrors(fromParser parser.ErrorList, fromChecker semantic.ErrorList) EarlyErrors {
	el := make(EarlyErrors, 0, len(fromParser)+len(fromChecker))
	for _, e := range fromParser {
		el = append(el, &ValidationError{
			Message: e.Message,
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Offset:  e.Pos.Offset,
		})
	}
	el = append(el, validationErrors(fromChecker)...)
	sort.SliceStable(el, func(i, j int) bool {
		return el[i].Offset < el[j].Offset
	})
	return el
}

func validationErrors(errs semantic.ErrorList) []*ValidationError {
	out := make([]*ValidationError, len(errs))
	for i, e := range errs {
		out[i] = &ValidationError{
			Message: e.Message,
			Node:    e.Node,
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Offset:  e.Pos.Offset,
		}
	}
	return out
}
