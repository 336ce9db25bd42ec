package codegen

import (
	"strings"
	"unicode/utf8"

	"github.com/kolkov/ujs/internal/lexer"
)

type tokenKind uint8

const (
	tokOther tokenKind = iota
	tokNumber
	tokRegExp
)

// emitter writes a rep tree as source text. It inserts the spaces needed
// to keep adjacent tokens apart and, in compact mode, holds back optional
// semicolons until it knows a closing brace or the end of input does not
// follow.
type emitter struct {
	buf    strings.Builder
	pretty bool
	depth  int

	pendingSemi bool
	last        tokenKind
	lastText    string

	noIn bool
}

func (e *emitter) emit(r *rep) {
	switch r.kind {
	case repEmpty:
	case repToken:
		e.token(r.text, tokOther)
	case repNumber:
		e.token(r.text, tokNumber)
	case repRegExp:
		e.token(r.text, tokRegExp)
	case repSeq:
		for _, it := range r.items {
			e.emit(it)
		}
	case repParen:
		e.enclose("(", ")", r.items)
	case repBracket:
		e.enclose("[", "]", r.items)
	case repBrace:
		e.enclose("{", "}", r.items)
	case repBlock:
		saved := e.noIn
		e.noIn = false
		e.token("{", tokOther)
		if e.pretty && len(r.items) > 0 {
			e.depth++
			for _, it := range r.items {
				e.newline()
				e.emit(it)
			}
			e.depth--
			e.newline()
		} else {
			for _, it := range r.items {
				e.emit(it)
			}
		}
		e.token("}", tokOther)
		e.noIn = saved
	case repLines:
		for i, it := range r.items {
			if i > 0 && e.pretty {
				e.newline()
			}
			e.emit(it)
		}
	case repIndent:
		if e.pretty {
			e.depth++
		}
		for _, it := range r.items {
			if e.pretty {
				e.newline()
			}
			e.emit(it)
		}
		if e.pretty {
			e.depth--
		}
	case repCommaSep:
		for i, it := range r.items {
			if i > 0 {
				e.token(",", tokOther)
				if e.pretty && it.kind != repEmpty {
					e.space()
				}
			}
			e.emit(it)
		}
	case repSemi:
		e.token(";", tokOther)
	case repSemiOp:
		if e.pretty {
			e.token(";", tokOther)
		} else {
			e.pendingSemi = true
		}
	case repSpace:
		if e.pretty {
			e.space()
		}
	case repNoIn:
		saved := e.noIn
		e.noIn = true
		e.emit(r.items[0])
		e.noIn = saved
	case repContainsIn:
		if e.noIn {
			e.enclose("(", ")", r.items)
		} else {
			e.emit(r.items[0])
		}
	default:
		panic("codegen: unknown rep kind")
	}
}

// enclose writes items between open and close. 'in' is allowed again
// inside any bracketing.
func (e *emitter) enclose(open, close string, items []*rep) {
	saved := e.noIn
	e.noIn = false
	e.token(open, tokOther)
	for _, it := range items {
		e.emit(it)
	}
	e.token(close, tokOther)
	e.noIn = saved
}

// token writes s, preceded by a pending semicolon unless s closes a block
// and by a space if s would otherwise merge with the previous token.
func (e *emitter) token(s string, kind tokenKind) {
	if e.pendingSemi {
		e.pendingSemi = false
		if s != "}" {
			e.write(";", tokOther)
		}
	}
	if e.needsSpace(s) {
		e.buf.WriteByte(' ')
	}
	e.write(s, kind)
}

func (e *emitter) write(s string, kind tokenKind) {
	e.buf.WriteString(s)
	e.last = kind
	e.lastText = s
}

// needsSpace reports whether writing next directly after the output so
// far would change how it tokenizes.
func (e *emitter) needsSpace(next string) bool {
	if e.buf.Len() == 0 || next == "" {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(e.buf.String())
	first, _ := utf8.DecodeRuneInString(next)
	switch {
	case prev == ' ' || prev == '\n':
		return false
	case lexer.IsIDContinue(prev) && (lexer.IsIDContinue(first) || first == '\\'):
		return true
	case prev == '+' && first == '+', prev == '-' && first == '-':
		return true
	case prev == '/' && (first == '/' || first == '*'):
		// a regular expression or division followed by a comment opener
		return true
	case e.last == tokRegExp && lexer.IsIDContinue(first):
		return true
	case prev == '<' && first == '!':
		// <!-- starts a comment in scripts
		return true
	case e.last == tokNumber && first == '.':
		return isDecimalDigits(e.lastText)
	}
	return false
}

// isDecimalDigits reports whether s is an integer literal that a
// following '.' would extend.
func isDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func (e *emitter) space() {
	if e.buf.Len() == 0 {
		return
	}
	s := e.buf.String()
	if c := s[len(s)-1]; c == ' ' || c == '\n' {
		return
	}
	e.buf.WriteByte(' ')
}

func (e *emitter) newline() {
	e.buf.WriteByte('\n')
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString("  ")
	}
}

// String returns the text written so far. A trailing optional semicolon
// is dropped.
func (e *emitter) String() string {
	return e.buf.String()
}
