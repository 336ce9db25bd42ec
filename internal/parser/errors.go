package parser

import (
	"fmt"
	"sort"

	"github.com/kolkov/ujs/internal/token"
)

// ParseError represents a syntax error or a parser-detected early error.
// It implements the error interface and includes source position information.
type ParseError struct {
	Pos     token.Position // Position where the error occurred
	Message string         // Human-readable error message
	Got     string         // Token/value that was found (optional)
	Want    string         // Token/value that was expected (optional)
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// ErrorList is a list of parse errors.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, msg string) {
	*el = append(*el, &ParseError{Pos: pos, Message: msg})
}

// Sort orders the list by source offset. The order of errors at the same
// offset is preserved.
func (el ErrorList) Sort() {
	sort.SliceStable(el, func(i, j int) bool {
		return el[i].Pos.Offset < el[j].Pos.Offset
	})
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// errorf creates a ParseError at the given position with formatted message.
func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// expectedError creates a ParseError for unexpected token.
func expectedError(pos token.Position, want string, got string) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf("expected %s, got %s", want, got),
		Want:    want,
		Got:     got,
	}
}

// Syntax error messages.
const (
	errUnexpectedToken   = "unexpected token %s"
	errInvalidTarget     = "invalid assignment target"
	errInvalidBinding    = "invalid binding pattern"
	errInvalidArrowParam = "invalid arrow function parameters"
	errRestLast          = "rest element must be last"
	errRestInit          = "rest element may not have a default initializer"
	errMissingInit       = "missing initializer in destructuring declaration"
	errNewlineThrow      = "illegal newline after throw"
	errNewlineArrow      = "line terminator before arrow"
	errMultipleDefaults  = "more than one default clause in switch statement"
	errUnexpectedSuper   = "unexpected super"
	errLexicalStatement  = "lexical declaration cannot appear in a single-statement context"
	errFunctionStatement = "function declaration cannot appear in a single-statement context"
	errImportInScript    = "import and export may only appear in a module"
	errNoCatchOrFinally  = "missing catch or finally after try"
	errExponentOperand   = "unary operator used immediately before exponentiation expression"
	errForInOfInit       = "invalid left-hand side in for-%s loop"
)

// Early error messages.
const (
	errIllegalBreak       = "illegal break statement"
	errIllegalContinue    = "illegal continue statement"
	errIllegalReturn      = "illegal return statement"
	errUndefinedLabel     = "undefined label %q"
	errContinueNotLoop    = "label %q does not denote an iteration statement"
	errDuplicateLabel     = "label %q has already been declared"
	errStrictOctal        = "octal literals are not allowed in strict mode"
	errStrictOctalEscape  = "octal escape sequences are not allowed in strict mode"
	errRegexpFlag         = "invalid regular expression flag %q"
	errRegexpDupFlag      = "duplicate regular expression flag %q"
	errTemplateEscape     = "invalid escape sequence in template"
	errCoverInit          = "invalid shorthand property initializer"
	errNewTarget          = "new.target expression is not allowed here"
	errSuperCall          = "super() call is not allowed here"
	errSuperProperty      = "super property access is not allowed here"
	errYieldBinding       = "yield is not a valid binding identifier in a generator"
	errAwaitBinding       = "await is not a valid binding identifier in an async function"
	errParenPattern       = "parenthesized pattern is not a valid assignment target"
)
