package ast

// Visitor is called by Walk for each node. If Visit returns a non-nil
// visitor w, Walk visits each child of node with w, followed by a call of
// w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. Children are visited in
// field table order.
func Walk(v Visitor, node Node) {
	if isNil(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	eachChild(node, func(_ Field, _ int, child Node) {
		Walk(v, child)
	})
	v.Visit(nil)
}

// inspector adapts a function to the Visitor interface.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns true, Inspect recursively visits the children of node.
// After visiting the children, f is called with nil.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the non-nil children of node in field table order.
func Children(node Node) []Node {
	var out []Node
	eachChild(node, func(_ Field, _ int, child Node) {
		out = append(out, child)
	})
	return out
}

// Reduce folds the tree bottom-up. fn receives each node together with
// the reduced values of its non-nil children, in field table order.
func Reduce[T any](node Node, fn func(node Node, children []T) T) T {
	var kids []T
	eachChild(node, func(_ Field, _ int, child Node) {
		kids = append(kids, Reduce(child, fn))
	})
	return fn(node, kids)
}

// eachChild calls fn for every non-nil child of node. index is -1 for
// single-valued fields.
func eachChild(node Node, fn func(fd Field, index int, child Node)) {
	if isNil(node) {
		return
	}
	v := value(node)
	for _, fd := range fieldTable[node.Type()] {
		switch {
		case fd.Shape.IsList():
			list := v.Field(fd.index)
			for i := 0; i < list.Len(); i++ {
				if c := nodeOf(list.Index(i)); c != nil {
					fn(fd, i, c)
				}
			}
		case fd.Shape.IsNode():
			if c := nodeOf(v.Field(fd.index)); c != nil {
				fn(fd, -1, c)
			}
		}
	}
}
