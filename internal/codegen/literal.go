package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/numfmt"
)

// quoteString returns s as a string literal. It uses double quotes
// unless s contains more of them than single quotes.
func quoteString(s string) string {
	quote := byte('"')
	if strings.Count(s, `"`) > strings.Count(s, "'") {
		quote = '\''
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := lexer.DecodeWTF8(s[i:])
		i += size
		switch {
		case r == rune(quote), r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\v':
			b.WriteString(`\v`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7F:
			fmt.Fprintf(&b, `\x%02X`, r)
		case r == '\u2028', r == '\u2029', r >= 0xD800 && r <= 0xDFFF:
			fmt.Fprintf(&b, `\u%04X`, r)
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\uFFFD`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// quoteDirective wraps the raw text of a directive in quotes it does not
// contain unescaped.
func quoteDirective(raw string) string {
	if hasUnescaped(raw, '"') {
		return "'" + raw + "'"
	}
	return `"` + raw + `"`
}

func hasUnescaped(raw string, c byte) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case c:
			return true
		}
	}
	return false
}

func regExpLiteral(e *ast.LiteralRegExpExpression) string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(e.Pattern)
	b.WriteByte('/')
	for _, f := range []struct {
		set  bool
		flag byte
	}{
		{e.Global, 'g'},
		{e.IgnoreCase, 'i'},
		{e.MultiLine, 'm'},
		{e.Unicode, 'u'},
		{e.Sticky, 'y'},
	} {
		if f.set {
			b.WriteByte(f.flag)
		}
	}
	return b.String()
}

// staticName returns a property name as an identifier when it is one, as
// a number when the number converts back to the same name, and as a
// string otherwise.
func staticName(name string) *rep {
	if lexer.IsIdentifierName(name) {
		return t(name)
	}
	if v, err := strconv.ParseFloat(name, 64); err == nil && !math.Signbit(v) && numfmt.ToString(v) == name {
		return number(numfmt.Format(v))
	}
	return t(quoteString(name))
}
