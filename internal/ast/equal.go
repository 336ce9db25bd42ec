package ast

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal: same kinds, equal
// scalar fields and pairwise equal children. A nil list equals an empty
// one, and NaN equals NaN.
func Equal(a, b Node) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	if a.Type() != b.Type() {
		return false
	}
	av, bv := value(a), value(b)
	for _, fd := range fieldTable[a.Type()] {
		x, y := av.Field(fd.index), bv.Field(fd.index)
		switch {
		case fd.Shape.IsList():
			if x.Len() != y.Len() {
				return false
			}
			for i := 0; i < x.Len(); i++ {
				if !Equal(nodeOf(x.Index(i)), nodeOf(y.Index(i))) {
					return false
				}
			}
		case fd.Shape.IsNode():
			if !Equal(nodeOf(x), nodeOf(y)) {
				return false
			}
		default:
			if !scalarEqual(x, y) {
				return false
			}
		}
	}
	return true
}

func scalarEqual(x, y reflect.Value) bool {
	if x.Kind() == reflect.Float64 {
		a, b := x.Float(), y.Float()
		return a == b && math.Signbit(a) == math.Signbit(b) || math.IsNaN(a) && math.IsNaN(b)
	}
	return x.Interface() == y.Interface()
}
