package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Rewrite rebuilds the tree bottom-up. fn is called for every node after
// its children have been rewritten; it returns the replacement node and
// whether the replacement differs from its argument. A parent is copied
// only when one of its children changed, so unchanged subtrees are shared
// between the input and the result. The input tree is never modified.
//
// Rewrite panics if fn returns a node that does not fit the slot of the
// node it replaces.
func Rewrite(node Node, fn func(Node) (Node, bool)) (Node, bool) {
	if isNil(node) {
		return node, false
	}
	v := value(node)
	var cp reflect.Value
	ensureCopy := func() {
		if !cp.IsValid() {
			cp = reflect.New(v.Type()).Elem()
			cp.Set(v)
		}
	}
	for _, fd := range fieldTable[node.Type()] {
		switch {
		case fd.Shape.IsList():
			list := v.Field(fd.index)
			var fresh reflect.Value
			for i := 0; i < list.Len(); i++ {
				c := nodeOf(list.Index(i))
				if c == nil {
					continue
				}
				nc, changed := Rewrite(c, fn)
				if !changed {
					continue
				}
				ensureCopy()
				if !fresh.IsValid() {
					fresh = reflect.MakeSlice(list.Type(), list.Len(), list.Len())
					reflect.Copy(fresh, list)
					cp.Field(fd.index).Set(fresh)
				}
				mustSet(fresh.Index(i), nc, node.Type(), fd)
			}
		case fd.Shape.IsNode():
			c := nodeOf(v.Field(fd.index))
			if c == nil {
				continue
			}
			nc, changed := Rewrite(c, fn)
			if !changed {
				continue
			}
			ensureCopy()
			mustSet(cp.Field(fd.index), nc, node.Type(), fd)
		}
	}
	cur := node
	if cp.IsValid() {
		cur = cp.Addr().Interface().(Node)
	}
	out, changed := fn(cur)
	return out, changed || cp.IsValid()
}

// Clone returns a deep copy of node.
func Clone(node Node) Node {
	out, _ := Rewrite(node, func(n Node) (Node, bool) {
		v := value(n)
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		return cp.Interface().(Node), true
	})
	return out
}

func mustSet(dst reflect.Value, n Node, parent Kind, fd Field) {
	if err := setChild(dst, n); err != nil {
		panic(fmt.Sprintf("ast: rewrite of %s.%s: %v", parent, fd.Name, err))
	}
}

// setChild stores n into the slot dst, checking that it fits.
func setChild(dst reflect.Value, n Node) error {
	if isNil(n) {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	nv := reflect.ValueOf(n)
	if !nv.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%s does not fit a %s slot", n.Type(), slotName(dst.Type()))
	}
	dst.Set(nv)
	return nil
}

func slotName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Step is one edge of a Path: a field name and, for list fields, an index.
type Step struct {
	Field string
	Index int // -1 for single-valued fields
}

// Path addresses a node relative to a root.
type Path []Step

// String formats the path as in "statements[0].expression.left".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Field)
		if s.Index >= 0 {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// ParsePath parses the String form of a path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var p Path
	for _, part := range strings.Split(s, ".") {
		step := Step{Field: part, Index: -1}
		if i := strings.IndexByte(part, '['); i >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("malformed path step %q", part)
			}
			n, err := strconv.Atoi(part[i+1 : len(part)-1])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("malformed path index in %q", part)
			}
			step = Step{Field: part[:i], Index: n}
		}
		if step.Field == "" {
			return nil, fmt.Errorf("empty field name in path %q", s)
		}
		p = append(p, step)
	}
	return p, nil
}

func lookupField(k Kind, name string) (Field, bool) {
	for _, fd := range Fields(k) {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

// slot resolves one step from n to the reflect value holding the child.
func slot(n Node, s Step) (reflect.Value, error) {
	fd, ok := lookupField(n.Type(), s.Field)
	if !ok || !fd.Shape.IsNode() {
		return reflect.Value{}, fmt.Errorf("%s has no child field %q", n.Type(), s.Field)
	}
	v := value(n).Field(fd.index)
	if fd.Shape.IsList() {
		if s.Index < 0 || s.Index >= v.Len() {
			return reflect.Value{}, fmt.Errorf("index %d out of range for %s.%s", s.Index, n.Type(), s.Field)
		}
		return v.Index(s.Index), nil
	}
	if s.Index >= 0 {
		return reflect.Value{}, fmt.Errorf("%s.%s is not a list", n.Type(), s.Field)
	}
	return v, nil
}

// At returns the node addressed by path, or nil if the path ends at an
// absent optional child.
func At(root Node, path Path) (Node, error) {
	cur := root
	for i, s := range path {
		if isNil(cur) {
			return nil, fmt.Errorf("path %s: nil node at step %d", path, i)
		}
		v, err := slot(cur, s)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", path, err)
		}
		cur = nodeOf(v)
	}
	return cur, nil
}

// WithChildAt returns a copy of root in which the node addressed by path
// is replaced with child. Only the nodes along the path are copied; root
// itself is left unchanged.
func WithChildAt(root Node, path Path, child Node) (Node, error) {
	if len(path) == 0 {
		return child, nil
	}
	if isNil(root) {
		return nil, fmt.Errorf("path %s: nil root", path)
	}
	v, err := slot(root, path[0])
	if err != nil {
		return nil, fmt.Errorf("path %s: %w", path, err)
	}
	sub, err := WithChildAt(nodeOf(v), path[1:], child)
	if err != nil {
		return nil, err
	}

	cp := reflect.New(value(root).Type())
	cp.Elem().Set(value(root))
	out := cp.Interface().(Node)
	fd, _ := lookupField(root.Type(), path[0].Field)
	dst := cp.Elem().Field(fd.index)
	if fd.Shape.IsList() {
		fresh := reflect.MakeSlice(dst.Type(), dst.Len(), dst.Len())
		reflect.Copy(fresh, dst)
		dst.Set(fresh)
		dst = fresh.Index(path[0].Index)
	}
	if err := setChild(dst, sub); err != nil {
		return nil, fmt.Errorf("path %s: %w", path, err)
	}
	return out, nil
}
