package semantic

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"github.com/kolkov/ujs/internal/ast"
)

// lineTerminators are the characters a regular expression literal may not
// contain.
const lineTerminators = "\n\r\u2028\u2029"

// validateRegExp checks the body of a regular expression literal by
// compiling it with the ECMAScript dialect of regexp2. Flags are fields of
// the node and so need no checking here.
//
// regexp2 has no Unicode mode, so the bodies of u-flagged literals are
// only checked for the properties every literal shares.
func validateRegExp(lit *ast.LiteralRegExpExpression) error {
	if lit.Pattern == "" {
		return errors.New("empty pattern")
	}
	if strings.ContainsAny(lit.Pattern, lineTerminators) {
		return errors.New("line terminator in pattern")
	}
	if err := checkSlashes(lit.Pattern); err != nil {
		return err
	}
	if lit.Unicode {
		return nil
	}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if lit.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if lit.MultiLine {
		opts |= regexp2.Multiline
	}
	if _, err := regexp2.Compile(lit.Pattern, opts); err != nil {
		return errors.Wrap(err, "regexp2")
	}
	return nil
}

// checkSlashes rejects an unescaped '/' outside a character class, which
// would end the literal early, and a trailing lone backslash.
func checkSlashes(pattern string) error {
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 == len(pattern) {
				return errors.New("trailing backslash")
			}
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return errors.New("unescaped '/'")
			}
		}
	}
	return nil
}
