package semantic

import (
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// asciiIdentifier matches the identifier names made of ASCII characters
// only, which covers nearly every name in real programs.
var asciiIdentifier = mustCompile(`^[A-Za-z_$][0-9A-Za-z_$]*$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic("semantic: " + err.Error())
	}
	return re
}

// isIdentifierName reports whether name is a syntactically valid
// IdentifierName. Names with non-ASCII characters take the Unicode path.
func isIdentifierName(name string) bool {
	if asciiIdentifier.MatchString(name) {
		return true
	}
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return lexer.IsIdentifierName(name)
		}
	}
	return false
}

// identifierError returns the message for an invalid use of name as an
// identifier, or "" if it is allowed in the given context.
func identifierError(name string, ctx context) string {
	switch {
	case !isIdentifierName(name):
		return errInvalidIdentifier
	case token.IsReservedWord(name):
		return errReservedWord
	case ctx.strict && token.IsStrictReservedWord(name):
		return errStrictReserved
	case ctx.module && name == "await":
		return errAwaitModule
	}
	return ""
}
