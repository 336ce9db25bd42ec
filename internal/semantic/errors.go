// Package semantic provides the early-error checker for ECMAScript trees.
//
// The checker walks a complete Script or Module and reports every static
// semantic violation it finds:
//   - Identifier validity: syntax, reserved words, strict mode restrictions
//   - Declarations: duplicate lexical bindings, lexical/var conflicts,
//     duplicate parameters, duplicate and unresolved exports
//   - Strict mode: with statements, delete of identifiers, eval/arguments
//   - Literals: object property collisions, numeric and regular
//     expression literal validity
//   - Context: break/continue targets, return, yield, await, super and
//     new.target placement
//
// Trees built by the parser already satisfy the context rules, so
// CheckParsed skips them. Check is meant for trees built by hand or by a
// transformation pass, which carry no such guarantee.
package semantic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/token"
)

// Error is an early error. Pos is the start of the offending node when
// the tree has locations and the zero Position otherwise.
type Error struct {
	Pos     token.Position
	Node    ast.Node
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	if e.Node != nil {
		return fmt.Sprintf("%s: %s", e.Node.Type(), e.Message)
	}
	return e.Message
}

// ErrorList is a collection of early errors.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, node ast.Node, format string, args ...any) {
	*el = append(*el, &Error{
		Pos:     pos,
		Node:    node,
		Message: fmt.Sprintf(format, args...),
	})
}

// Sort orders the list by source offset. Errors without a position keep
// their relative order at the front.
func (el ErrorList) Sort() {
	sort.SliceStable(el, func(i, j int) bool {
		return el[i].Pos.Offset < el[j].Pos.Offset
	})
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// Identifier errors.
const (
	errInvalidIdentifier = "%q is not a valid identifier"
	errReservedWord      = "unexpected reserved word %q"
	errStrictReserved    = "unexpected strict mode reserved word %q"
	errRestrictedBinding = "cannot bind %q in strict mode code"
	errAwaitModule       = "%q is reserved in module code"
	errYieldIdentifier   = "'yield' is not a valid identifier in a generator"
	errAwaitIdentifier   = "'await' is not a valid identifier in an async function"
	errLetName           = "%q is not a valid lexically bound name"
	errInvalidProperty   = "%q is not a valid property name"
)

// Declaration errors.
const (
	errDuplicateLexical  = "duplicate declaration of %q"
	errVarConflict       = "%q is already declared in this scope"
	errDuplicateParam    = "duplicate parameter name %q"
	errStrictParams      = "\"use strict\" not allowed in function with non-simple parameters"
	errConstInit         = "missing initializer in const declaration"
	errPatternInit       = "missing initializer in destructuring declaration"
	errForInOfBinding    = "%s loop declaration must declare exactly one binding"
	errForInOfInit       = "%s loop variable declaration may not have an initializer"
	errDuplicateExport   = "duplicate export of %q"
	errUnresolvedExport  = "export of undeclared name %q"
	errDuplicateProto    = "duplicate __proto__ property in object literal"
	errDuplicateAccessor = "property %q already has a %s"
	errAccessorData      = "property %q cannot be both an accessor and a data property"
	errParamsExpression  = "%s expression not allowed in formal parameters"
	errLexicalBody       = "lexical declaration cannot appear in a single-statement context"
	errFunctionBody      = "function declaration cannot appear in a single-statement context"
)

// Class errors.
const (
	errDuplicateCtor   = "a class may only have one constructor"
	errSpecialCtor     = "class constructor may not be %s"
	errStaticPrototype = "classes may not have a static property named 'prototype'"
)

// Strict mode and literal errors.
const (
	errStrictWith      = "strict mode code may not include a with statement"
	errStrictDelete    = "delete of an unqualified identifier in strict mode"
	errNumericLiteral  = "numeric literal must be a finite non-negative number, got %v"
	errInvalidRegExp   = "invalid regular expression /%s/: %v"
	errDirective       = "invalid directive %q"
	errTemplateElement = "invalid raw template element %q"
)

// Context errors. The parser reports these itself, so CheckParsed skips
// them.
const (
	errIllegalBreak    = "illegal break statement"
	errIllegalContinue = "illegal continue statement"
	errIllegalReturn   = "illegal return statement"
	errUndefinedLabel  = "undefined label %q"
	errContinueNotLoop = "label %q does not denote an iteration statement"
	errDuplicateLabel  = "label %q has already been declared"
	errYieldOutside    = "yield expression outside of a generator"
	errAwaitOutside    = "await expression outside of an async function"
	errSuperCall       = "'super' call outside of a derived class constructor"
	errSuperProperty   = "'super' property access outside of a method"
	errNewTarget       = "new.target outside of a function"
)
