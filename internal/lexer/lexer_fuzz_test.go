package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/kolkov/ujs/internal/token"
)

// FuzzTokenizer tests that the lexer handles arbitrary input without
// panicking and that token spans are well-formed and increasing.
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		`var x = 1 + 2;`,
		`function f(a, b = 1, ...c) { return a ** b; }`,
		"`a${b}c${`d${e}`}`",
		`/re[/]x/gi.test(s)`,
		`0x1F 0o17 0b11 017 08 .5e-3`,
		`"str\x41\u{1F600}A\
continued"`,
		`a <!-- html
--> close`,
		`/* unterminated`,
		`"unterminated`,
		"`unterminated ${",
		`if (\u{61}) {}`,
		``,
		"}",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		for _, module := range []bool{false, true} {
			l := New(src, module)
			last := -1
			for i := 0; i < len(src)+2; i++ {
				tok, err := l.Next()
				if err != nil {
					break
				}
				if tok.Span.Start.Offset < last || tok.Span.End.Offset < tok.Span.Start.Offset {
					t.Fatalf("bad span %v after offset %d", tok.Span, last)
				}
				if tok.Span.End.Offset > len(src) {
					t.Fatalf("span %v past end of input", tok.Span)
				}
				last = tok.Span.End.Offset
				if tok.Type == token.IDENT && !tok.Escaped && utf8.ValidString(src) && !IsIdentifierName(tok.Value) {
					t.Fatalf("identifier %q is not an IdentifierName", tok.Value)
				}
				if tok.Type == token.DIV || tok.Type == token.DIV_ASSIGN {
					save := l.Snapshot()
					if _, err := l.RescanRegexp(tok); err != nil {
						l.Restore(save)
					}
				}
				if tok.Type == token.EOF {
					break
				}
			}
		}
	})
}
