// Package astjson converts syntax trees to and from the JSON interchange
// form.
//
// Each node is an object whose "type" member names its kind, followed by
// one member per field in field table order. Absent optional children
// and absent optional names are null, sequences are arrays, and holes in
// array literals and patterns are null elements. Operators are written
// as their source text, e.g. "+=" or "typeof".
package astjson

import (
	"encoding"
	"math"
	"reflect"

	"github.com/mailru/easyjson/jwriter"
	"github.com/tidwall/pretty"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/token"
)

// Options control encoding.
type Options struct {
	// Locations, if set, adds a "loc" member to every node it has a span
	// for.
	Locations *ast.Locations
	// Indent formats the output over several lines.
	Indent bool
}

// Encode returns the interchange form of n.
func Encode(n ast.Node) ([]byte, error) {
	return EncodeWith(n, Options{})
}

// EncodeWith is like Encode but takes options.
func EncodeWith(n ast.Node, opts Options) ([]byte, error) {
	e := encoder{locs: opts.Locations}
	e.node(n)
	if e.w.Error != nil {
		return nil, e.w.Error
	}
	b, err := e.w.BuildBytes()
	if err != nil {
		return nil, err
	}
	if opts.Indent {
		b = pretty.PrettyOptions(b, &pretty.Options{Width: 80, Indent: "  "})
	}
	return b, nil
}

type encoder struct {
	w    jwriter.Writer
	locs *ast.Locations
}

func (e *encoder) node(n ast.Node) {
	if n == nil {
		e.w.RawString("null")
		return
	}
	k := n.Type()
	e.w.RawString(`{"type":`)
	e.w.String(k.String())
	for _, fd := range ast.Fields(k) {
		e.w.RawByte(',')
		e.w.String(fd.Name)
		e.w.RawByte(':')
		v := ast.Get(n, fd)
		switch fd.Shape {
		case ast.Scalar:
			e.scalar(v)
		case ast.MaybeScalar:
			if s := v.String(); s != "" {
				e.w.String(s)
			} else {
				e.w.RawString("null")
			}
		case ast.One, ast.Maybe:
			e.node(nodeOf(v))
		case ast.List, ast.MaybeList:
			e.w.RawByte('[')
			for i := 0; i < v.Len(); i++ {
				if i > 0 {
					e.w.RawByte(',')
				}
				e.node(nodeOf(v.Index(i)))
			}
			e.w.RawByte(']')
		}
	}
	if e.locs != nil {
		if span, ok := e.locs.Get(n); ok {
			e.w.RawString(`,"loc":`)
			e.span(span)
		}
	}
	e.w.RawByte('}')
}

// scalar writes a scalar field. Numbers JSON cannot hold are written as
// the strings "NaN", "Infinity" and "-Infinity".
func (e *encoder) scalar(v reflect.Value) {
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			e.w.Error = err
			return
		}
		e.w.String(string(text))
		return
	}
	switch v.Kind() {
	case reflect.String:
		e.w.String(v.String())
	case reflect.Bool:
		e.w.Bool(v.Bool())
	case reflect.Float64:
		switch f := v.Float(); {
		case math.IsNaN(f):
			e.w.String("NaN")
		case math.IsInf(f, 1):
			e.w.String("Infinity")
		case math.IsInf(f, -1):
			e.w.String("-Infinity")
		default:
			e.w.Float64(f)
		}
	}
}

func (e *encoder) span(s token.Span) {
	e.w.RawString(`{"start":`)
	e.position(s.Start)
	e.w.RawString(`,"end":`)
	e.position(s.End)
	e.w.RawByte('}')
}

func (e *encoder) position(p token.Position) {
	e.w.RawString(`{"line":`)
	e.w.Int(p.Line)
	e.w.RawString(`,"column":`)
	e.w.Int(p.Column)
	e.w.RawString(`,"offset":`)
	e.w.Int(p.Offset)
	e.w.RawByte('}')
}

// nodeOf returns the node held in a field or slice element, or nil.
func nodeOf(v reflect.Value) ast.Node {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface().(ast.Node)
}
