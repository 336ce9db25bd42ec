package semantic

import (
	"unicode/utf8"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
)

// Property kinds for the object literal collision check.
const (
	propData = 1 << iota
	propGetter
	propSetter
)

// checkProperties reports duplicate __proto__ data properties and
// collisions between accessors and other properties of the same name.
// Computed names are not checked.
func (c *checker) checkProperties(obj *ast.ObjectExpression) {
	seen := make(map[string]int)
	proto := false
	for _, prop := range obj.Properties {
		var (
			name string
			ok   bool
			kind int
		)
		switch p := prop.(type) {
		case *ast.DataProperty:
			name, ok = staticName(p.Name)
			kind = propData
			if ok && name == "__proto__" {
				if proto {
					c.errorf(p, errDuplicateProto)
				}
				proto = true
			}
		case *ast.ShorthandProperty:
			name, ok, kind = p.Name.Name, true, propData
		case *ast.Method:
			name, ok = staticName(p.Name)
			kind = propData
		case *ast.Getter:
			name, ok = staticName(p.Name)
			kind = propGetter
		case *ast.Setter:
			name, ok = staticName(p.Name)
			kind = propSetter
		}
		if !ok {
			continue
		}
		prev := seen[name]
		switch {
		case kind == propData && prev&(propGetter|propSetter) != 0,
			kind != propData && prev&propData != 0:
			c.errorf(prop, errAccessorData, name)
		case kind == propGetter && prev&propGetter != 0:
			c.errorf(prop, errDuplicateAccessor, name, "getter")
		case kind == propSetter && prev&propSetter != 0:
			c.errorf(prop, errDuplicateAccessor, name, "setter")
		}
		seen[name] = prev | kind
	}
}

// validDirective reports whether raw can be printed as the body of a
// string literal: escapes are complete, line terminators are escaped and
// at least one quote character does not occur unescaped.
func validDirective(raw string) bool {
	var single, double bool
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch {
		case r == '\\':
			if i+size == len(raw) {
				return false
			}
			_, next := utf8.DecodeRuneInString(raw[i+size:])
			i += size + next
			continue
		case r == '\'':
			single = true
		case r == '"':
			double = true
		case lexer.IsLineTerminator(r):
			return false
		}
		i += size
	}
	return !single || !double
}

// validTemplateRaw reports whether raw can be printed between template
// delimiters: it contains no unescaped backquote or "${" and does not end
// in a lone backslash.
func validTemplateRaw(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			if i+1 == len(raw) {
				return false
			}
			i++
		case '`':
			return false
		case '$':
			if i+1 < len(raw) && raw[i+1] == '{' {
				return false
			}
		}
	}
	return true
}
