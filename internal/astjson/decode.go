package astjson

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/kolkov/ujs/internal/ast"
)

// Error describes malformed interchange data.
type Error struct {
	Path string // location in the document, e.g. "statements[0].expression"
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "astjson: " + e.Msg
	}
	return "astjson: " + e.Path + ": " + e.Msg
}

// Decode parses the interchange form of a node. Unknown members, such as
// "loc", are ignored.
func Decode(data []byte) (ast.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, &Error{Msg: "invalid JSON"}
	}
	return decodeNode(gjson.ParseBytes(data), "")
}

// DecodeProgram is like Decode but requires a Script or Module.
func DecodeProgram(data []byte) (ast.Program, error) {
	n, err := Decode(data)
	if err != nil {
		return nil, err
	}
	prog, ok := n.(ast.Program)
	if !ok {
		return nil, &Error{Msg: fmt.Sprintf("%s is not a program", kindName(n))}
	}
	return prog, nil
}

func kindName(n ast.Node) string {
	if n == nil {
		return "null"
	}
	return n.Type().String()
}

func errorf(path, format string, args ...any) error {
	return &Error{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func decodeNode(r gjson.Result, path string) (ast.Node, error) {
	if r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsObject() {
		return nil, errorf(path, "expected a node, found %s", r.Type)
	}
	typ := r.Get("type")
	if typ.Type != gjson.String {
		return nil, errorf(path, `missing "type"`)
	}
	k, ok := ast.LookupKind(typ.Str)
	if !ok {
		return nil, errorf(path, "unknown node type %q", typ.Str)
	}
	n := ast.New(k)
	for _, fd := range ast.Fields(k) {
		fpath := join(path, fd.Name)
		fv := r.Get(fd.Name)
		dst := ast.Get(n, fd)
		switch fd.Shape {
		case ast.Scalar:
			if !fv.Exists() {
				return nil, errorf(fpath, "missing field")
			}
			if err := decodeScalar(fv, dst, fpath); err != nil {
				return nil, err
			}
		case ast.MaybeScalar:
			switch fv.Type {
			case gjson.Null:
			case gjson.String:
				dst.SetString(fv.Str)
			default:
				return nil, errorf(fpath, "expected a string or null, found %s", fv.Type)
			}
		case ast.One, ast.Maybe:
			child, err := decodeNode(fv, fpath)
			if err != nil {
				return nil, err
			}
			if child == nil {
				if fd.Shape == ast.One {
					return nil, errorf(fpath, "missing required node")
				}
				continue
			}
			if err := assign(dst, child, fd, fpath); err != nil {
				return nil, err
			}
		case ast.List, ast.MaybeList:
			if !fv.IsArray() {
				return nil, errorf(fpath, "expected an array, found %s", fv.Type)
			}
			elems := fv.Array()
			list := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
			for i, el := range elems {
				epath := fpath + "[" + strconv.Itoa(i) + "]"
				child, err := decodeNode(el, epath)
				if err != nil {
					return nil, err
				}
				if child == nil {
					if fd.Shape == ast.List {
						return nil, errorf(epath, "null is not allowed here")
					}
					continue
				}
				if err := assign(list.Index(i), child, fd, epath); err != nil {
					return nil, err
				}
			}
			dst.Set(list)
		}
	}
	return n, nil
}

// assign stores child in dst if the field admits its kind.
func assign(dst reflect.Value, child ast.Node, fd ast.Field, path string) error {
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(fd.Elem) {
		return errorf(path, "%s is not allowed here", child.Type())
	}
	dst.Set(cv)
	return nil
}

func decodeScalar(r gjson.Result, dst reflect.Value, path string) error {
	if u, ok := dst.Addr().Interface().(encoding.TextUnmarshaler); ok {
		if r.Type != gjson.String {
			return errorf(path, "expected an operator string, found %s", r.Type)
		}
		if err := u.UnmarshalText([]byte(r.Str)); err != nil {
			return errorf(path, "%v", err)
		}
		return nil
	}
	switch dst.Kind() {
	case reflect.String:
		if r.Type != gjson.String {
			return errorf(path, "expected a string, found %s", r.Type)
		}
		dst.SetString(r.Str)
	case reflect.Bool:
		if !r.IsBool() {
			return errorf(path, "expected a boolean, found %s", r.Type)
		}
		dst.SetBool(r.Bool())
	case reflect.Float64:
		switch {
		case r.Type == gjson.Number:
			dst.SetFloat(r.Num)
		case r.Type == gjson.String && r.Str == "NaN":
			dst.SetFloat(math.NaN())
		case r.Type == gjson.String && r.Str == "Infinity":
			dst.SetFloat(math.Inf(1))
		case r.Type == gjson.String && r.Str == "-Infinity":
			dst.SetFloat(math.Inf(-1))
		default:
			return errorf(path, "expected a number, found %s", r.Type)
		}
	}
	return nil
}
