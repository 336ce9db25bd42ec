// Package lexer provides ECMAScript source code tokenization.
//
// The lexer is driven by the parser one token at a time. Two decisions it
// cannot make alone are delegated back to the parser: whether a '/' starts
// a regular expression (see RescanRegexp), and how far to look ahead (see
// Snapshot and Restore). Template literals are tracked with an explicit
// stack of brace depths so a '}' can resume the enclosing template.
package lexer

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kolkov/ujs/internal/token"
)

// Token represents a scanned token with its span and decoded value.
type Token struct {
	Type token.Token
	Span token.Span

	// Value holds the decoded value: the identifier name with escapes
	// resolved, the cooked string or template value, the regular
	// expression body, or the source text of a punctuator or keyword.
	Value string
	// Raw is the source text of the token. For templates it is the text
	// between the delimiters.
	Raw string
	// Num is the value of a numeric literal.
	Num float64
	// Flags holds the flags of a regular expression literal.
	Flags string

	NewlineBefore bool // a line terminator precedes the token
	Escaped       bool // identifier written with \u escapes
	Octal         bool // legacy octal literal or escape, or \8 and \9
	Tail          bool // template chunk ends with a backquote
	BadEscape     bool // template chunk has an invalid escape sequence
}

// Error is a malformed-token error.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Error messages.
const (
	errUnexpectedChar     = "unexpected character %q"
	errUnterminatedString = "unterminated string literal"
	errUnterminatedTmpl   = "unterminated template literal"
	errUnterminatedRegexp = "unterminated regular expression"
	errUnterminatedComm   = "unterminated comment"
	errInvalidEscape      = "invalid escape sequence"
	errInvalidUnicode     = "invalid Unicode escape sequence"
	errInvalidNumber      = "invalid numeric literal"
	errIdentAfterNumber   = "identifier starts immediately after numeric literal"
	errInvalidIdentEscape = "invalid identifier escape"
)

// CommentKind distinguishes the comment forms.
type CommentKind uint8

const (
	SingleLine CommentKind = iota // // comment
	MultiLine                     // /* comment */
	HTMLOpen                      // <!-- comment
	HTMLClose                     // --> comment
)

func (k CommentKind) String() string {
	switch k {
	case SingleLine:
		return "SingleLine"
	case MultiLine:
		return "MultiLine"
	case HTMLOpen:
		return "HTMLOpen"
	case HTMLClose:
		return "HTMLClose"
	}
	return "CommentKind(" + strconv.Itoa(int(k)) + ")"
}

// Comment is a comment collected on the side while scanning.
type Comment struct {
	Kind CommentKind
	Text string // source text including delimiters
	Span token.Span
}

// Lexer tokenizes ECMAScript source code.
type Lexer struct {
	src    string
	module bool // Module goal: no HTML-like comments

	offset    int  // Current byte offset
	line      int  // Current line (1-based)
	lineStart int  // Offset of the first byte of the current line
	newline   bool // Line terminator crossed since the last token

	templates []int // Brace depth inside each open template substitution
	comments  []Comment
}

// New creates a new Lexer for the given source code. module selects the
// Module goal.
func New(src string, module bool) *Lexer {
	return &Lexer{src: src, module: module, line: 1}
}

// State is a saved lexer position, see Snapshot.
type State struct {
	offset, line, lineStart int
	newline                 bool
	templates               []int
	comments                int
}

// Snapshot saves the lexer position so the parser can look ahead and
// return.
func (l *Lexer) Snapshot() State {
	return State{
		offset:    l.offset,
		line:      l.line,
		lineStart: l.lineStart,
		newline:   l.newline,
		templates: append([]int(nil), l.templates...),
		comments:  len(l.comments),
	}
}

// Restore rewinds the lexer to a saved position.
func (l *Lexer) Restore(s State) {
	l.offset = s.offset
	l.line = s.line
	l.lineStart = s.lineStart
	l.newline = s.newline
	l.templates = append(l.templates[:0], s.templates...)
	l.comments = l.comments[:s.comments]
}

// Comments returns the comments scanned so far.
func (l *Lexer) Comments() []Comment {
	return l.comments
}

// Pos returns the current position.
func (l *Lexer) Pos() token.Position {
	return l.posAt(l.offset)
}

func (l *Lexer) posAt(offset int) token.Position {
	return token.Position{Line: l.line, Column: offset - l.lineStart + 1, Offset: offset}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) *Error {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return &Error{Pos: pos, Message: format}
}

// peek returns the byte at offset+n, or 0 past the end.
func (l *Lexer) peek(n int) byte {
	if l.offset+n < len(l.src) {
		return l.src[l.offset+n]
	}
	return 0
}

// char returns the code point at the current offset and its size.
func (l *Lexer) char() (rune, int) {
	if l.offset >= len(l.src) {
		return -1, 0
	}
	if c := l.src[l.offset]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(l.src[l.offset:])
}

// lineBreak consumes the line terminator r of size n at the current
// offset, treating CR LF as one terminator.
func (l *Lexer) lineBreak(r rune, n int) {
	l.offset += n
	if r == '\r' && l.peek(0) == '\n' {
		l.offset++
	}
	l.line++
	l.lineStart = l.offset
	l.newline = true
}

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}
	nl := l.newline
	l.newline = false
	start := l.Pos()
	tok, err := l.scan(start)
	if err != nil {
		return Token{}, err
	}
	l.newline = false
	tok.NewlineBefore = nl
	tok.Span = token.Span{Start: start, End: l.Pos()}
	if tok.Type != token.TEMPLATE && tok.Type != token.EOF {
		tok.Raw = l.src[start.Offset:l.offset]
	}
	return tok, nil
}

func (l *Lexer) scan(start token.Position) (Token, error) {
	if l.offset >= len(l.src) {
		return Token{Type: token.EOF}, nil
	}
	c := l.src[l.offset]
	switch {
	case c == '`':
		l.offset++
		return l.scanTemplate(start)
	case c == '"' || c == '\'':
		return l.scanString(start)
	case isDigit(c) || c == '.' && isDigit(l.peek(1)):
		return l.scanNumber(start)
	case c == '\\' || c >= utf8.RuneSelf || IsIDStart(rune(c)):
		return l.scanIdentifier(start)
	}
	if t, ok, err := l.scanPunctuator(); ok || err != nil {
		return t, err
	}
	return Token{}, l.errorf(start, errUnexpectedChar, rune(c))
}

// punctuators lists the punctuators by leading byte, longest first.
var punctuators = [256][]struct {
	text string
	tok  token.Token
}{
	'{': {{"{", token.LBRACE}},
	'}': {{"}", token.RBRACE}},
	'(': {{"(", token.LPAREN}},
	')': {{")", token.RPAREN}},
	'[': {{"[", token.LBRACK}},
	']': {{"]", token.RBRACK}},
	'.': {{"...", token.ELLIPSIS}, {".", token.DOT}},
	';': {{";", token.SEMICOLON}},
	',': {{",", token.COMMA}},
	'?': {{"?", token.QUESTION}},
	':': {{":", token.COLON}},
	'~': {{"~", token.BITNOT}},
	'<': {{"<<=", token.SHL_ASSIGN}, {"<<", token.SHL}, {"<=", token.LTE}, {"<", token.LT}},
	'>': {{">>>=", token.SHR_ASSIGN}, {">>>", token.SHR}, {">>=", token.SAR_ASSIGN}, {">>", token.SAR}, {">=", token.GTE}, {">", token.GT}},
	'=': {{"===", token.SEQ}, {"==", token.EQ}, {"=>", token.ARROW}, {"=", token.ASSIGN}},
	'!': {{"!==", token.SNE}, {"!=", token.NE}, {"!", token.NOT}},
	'+': {{"++", token.INC}, {"+=", token.ADD_ASSIGN}, {"+", token.ADD}},
	'-': {{"--", token.DEC}, {"-=", token.SUB_ASSIGN}, {"-", token.SUB}},
	'*': {{"**=", token.EXP_ASSIGN}, {"**", token.EXP}, {"*=", token.MUL_ASSIGN}, {"*", token.MUL}},
	'/': {{"/=", token.DIV_ASSIGN}, {"/", token.DIV}},
	'%': {{"%=", token.MOD_ASSIGN}, {"%", token.MOD}},
	'&': {{"&&", token.AND}, {"&=", token.AND_ASSIGN}, {"&", token.BITAND}},
	'|': {{"||", token.OR}, {"|=", token.OR_ASSIGN}, {"|", token.BITOR}},
	'^': {{"^=", token.XOR_ASSIGN}, {"^", token.BITXOR}},
}

// scanPunctuator scans a punctuator. A '}' that closes a template
// substitution resumes the template instead.
func (l *Lexer) scanPunctuator() (Token, bool, error) {
	rest := l.src[l.offset:]
	for _, p := range punctuators[rest[0]] {
		if !strings.HasPrefix(rest, p.text) {
			continue
		}
		start := l.offset
		l.offset += len(p.text)
		n := len(l.templates)
		switch {
		case n == 0:
		case p.tok == token.LBRACE:
			l.templates[n-1]++
		case p.tok == token.RBRACE && l.templates[n-1] == 0:
			l.templates = l.templates[:n-1]
			tok, err := l.scanTemplate(l.posAt(start))
			return tok, true, err
		case p.tok == token.RBRACE:
			l.templates[n-1]--
		}
		return Token{Type: p.tok, Value: p.text}, true, nil
	}
	return Token{}, false, nil
}

// skipTrivia skips whitespace, line terminators and comments.
func (l *Lexer) skipTrivia() error {
	for l.offset < len(l.src) {
		r, n := l.char()
		switch {
		case IsLineTerminator(r):
			l.lineBreak(r, n)
		case isWhitespace(r):
			l.offset += n
		case r == '/' && l.peek(1) == '/':
			l.lineComment(SingleLine, 2)
		case r == '/' && l.peek(1) == '*':
			if err := l.blockComment(); err != nil {
				return err
			}
		case r == '<' && !l.module && strings.HasPrefix(l.src[l.offset:], "<!--"):
			l.lineComment(HTMLOpen, 4)
		case r == '-' && !l.module && (l.newline || l.offset == 0) &&
			strings.HasPrefix(l.src[l.offset:], "-->"):
			l.lineComment(HTMLClose, 3)
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) lineComment(kind CommentKind, skip int) {
	start := l.Pos()
	l.offset += skip
	for l.offset < len(l.src) {
		r, n := l.char()
		if IsLineTerminator(r) {
			break
		}
		l.offset += n
	}
	l.comments = append(l.comments, Comment{
		Kind: kind,
		Text: l.src[start.Offset:l.offset],
		Span: token.Span{Start: start, End: l.Pos()},
	})
}

func (l *Lexer) blockComment() error {
	start := l.Pos()
	l.offset += 2
	for {
		if l.offset >= len(l.src) {
			return l.errorf(start, errUnterminatedComm)
		}
		if l.src[l.offset] == '*' && l.peek(1) == '/' {
			l.offset += 2
			break
		}
		r, n := l.char()
		if IsLineTerminator(r) {
			l.lineBreak(r, n)
			continue
		}
		l.offset += n
	}
	l.comments = append(l.comments, Comment{
		Kind: MultiLine,
		Text: l.src[start.Offset:l.offset],
		Span: token.Span{Start: start, End: l.Pos()},
	})
	return nil
}

// ============================================================================
// Identifiers
// ============================================================================

func (l *Lexer) scanIdentifier(start token.Position) (Token, error) {
	var sb []byte
	escaped := false
	first := true
	for l.offset < len(l.src) {
		r, n := l.char()
		if r == '\\' {
			pos := l.Pos()
			if l.peek(1) != 'u' {
				return Token{}, l.errorf(pos, errInvalidIdentEscape)
			}
			l.offset += 2
			r, ok := l.unicodeEscape()
			if !ok {
				return Token{}, l.errorf(pos, errInvalidUnicode)
			}
			if first && !IsIDStart(r) || !first && !IsIDContinue(r) {
				return Token{}, l.errorf(pos, errInvalidIdentEscape)
			}
			if !escaped {
				sb = append(sb, l.src[start.Offset:pos.Offset]...)
				escaped = true
			}
			sb = utf8.AppendRune(sb, r)
			first = false
			continue
		}
		if first && !IsIDStart(r) || !first && !IsIDContinue(r) {
			if first {
				return Token{}, l.errorf(start, errUnexpectedChar, r)
			}
			break
		}
		if escaped {
			sb = append(sb, l.src[l.offset:l.offset+n]...)
		}
		l.offset += n
		first = false
	}
	name := l.src[start.Offset:l.offset]
	if escaped {
		name = string(sb)
		// Escaped reserved words never act as keywords.
		return Token{Type: token.IDENT, Value: name, Escaped: true}, nil
	}
	return Token{Type: token.Lookup(name), Value: name}, nil
}

// unicodeEscape decodes the part of a \u escape after the 'u'.
func (l *Lexer) unicodeEscape() (rune, bool) {
	if l.peek(0) == '{' {
		l.offset++
		var r rune
		digits := 0
		for isHexDigit(l.peek(0)) {
			r = r*16 + hexValue(l.peek(0))
			if r > utf8.MaxRune {
				return 0, false
			}
			l.offset++
			digits++
		}
		if digits == 0 || l.peek(0) != '}' {
			return 0, false
		}
		l.offset++
		return r, true
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := l.peek(0)
		if !isHexDigit(c) {
			return 0, false
		}
		r = r*16 + hexValue(c)
		l.offset++
	}
	return r, true
}

// ============================================================================
// Numbers
// ============================================================================

func (l *Lexer) scanNumber(start token.Position) (Token, error) {
	tok := Token{Type: token.NUMBER}
	c := l.src[l.offset]
	if c == '0' {
		switch l.peek(1) | 0x20 {
		case 'x':
			return l.scanRadix(start, 16)
		case 'o':
			return l.scanRadix(start, 8)
		case 'b':
			return l.scanRadix(start, 2)
		}
		if isDigit(l.peek(1)) {
			// Legacy octal, or a decimal with a leading zero when an 8
			// or 9 appears.
			l.offset++
			digitsStart := l.offset
			octal := true
			for isDigit(l.peek(0)) {
				if l.peek(0) >= '8' {
					octal = false
				}
				l.offset++
			}
			tok.Octal = true
			if octal {
				tok.Num = parseRadix(l.src[digitsStart:l.offset], 8)
				return tok, l.checkNumberEnd()
			}
			return l.scanDecimalTail(start, tok)
		}
	}
	for isDigit(l.peek(0)) {
		l.offset++
	}
	return l.scanDecimalTail(start, tok)
}

// scanDecimalTail scans the fraction and exponent of a decimal literal
// whose integer part has been consumed.
func (l *Lexer) scanDecimalTail(start token.Position, tok Token) (Token, error) {
	if l.peek(0) == '.' {
		l.offset++
		for isDigit(l.peek(0)) {
			l.offset++
		}
	}
	if l.peek(0)|0x20 == 'e' {
		l.offset++
		if l.peek(0) == '+' || l.peek(0) == '-' {
			l.offset++
		}
		if !isDigit(l.peek(0)) {
			return Token{}, l.errorf(start, errInvalidNumber)
		}
		for isDigit(l.peek(0)) {
			l.offset++
		}
	}
	text := l.src[start.Offset:l.offset]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		return Token{}, l.errorf(start, errInvalidNumber)
	}
	tok.Num = v
	return tok, l.checkNumberEnd()
}

func (l *Lexer) scanRadix(start token.Position, base int) (Token, error) {
	l.offset += 2
	digitsStart := l.offset
	for {
		c := l.peek(0)
		if !isHexDigit(c) || hexValue(c) >= rune(base) {
			break
		}
		l.offset++
	}
	if l.offset == digitsStart {
		return Token{}, l.errorf(start, errInvalidNumber)
	}
	tok := Token{Type: token.NUMBER, Num: parseRadix(l.src[digitsStart:l.offset], base)}
	return tok, l.checkNumberEnd()
}

// checkNumberEnd rejects an identifier or digit directly after a number.
func (l *Lexer) checkNumberEnd() error {
	r, _ := l.char()
	if r == '\\' || r >= 0 && (IsIDStart(r) || r < utf8.RuneSelf && isDigit(byte(r))) {
		return l.errorf(l.Pos(), errIdentAfterNumber)
	}
	return nil
}

// parseRadix converts digits in base to the nearest float64.
func parseRadix(digits string, base int) float64 {
	if v, err := strconv.ParseUint(digits, base, 64); err == nil && v <= 1<<53 {
		return float64(v)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// ============================================================================
// Strings
// ============================================================================

func (l *Lexer) scanString(start token.Position) (Token, error) {
	quote := l.src[l.offset]
	l.offset++
	var sb []byte
	tok := Token{Type: token.STRING}
	chunk := l.offset
	for {
		if l.offset >= len(l.src) {
			return Token{}, l.errorf(start, errUnterminatedString)
		}
		c := l.src[l.offset]
		if c == quote {
			sb = append(sb, l.src[chunk:l.offset]...)
			l.offset++
			break
		}
		if c == '\\' {
			sb = append(sb, l.src[chunk:l.offset]...)
			var err error
			sb, err = l.escape(sb, &tok, false)
			if err != nil {
				return Token{}, err
			}
			chunk = l.offset
			continue
		}
		r, n := l.char()
		if IsLineTerminator(r) {
			return Token{}, l.errorf(start, errUnterminatedString)
		}
		if r == utf8.RuneError && n == 1 {
			sb = appendReplacement(sb, l.src[chunk:l.offset])
			l.offset++
			chunk = l.offset
			continue
		}
		l.offset += n
	}
	tok.Value = string(sb)
	return tok, nil
}

// appendReplacement appends the pending chunk of a literal and U+FFFD in
// place of the invalid UTF-8 byte that follows it.
func appendReplacement(sb []byte, chunk string) []byte {
	sb = append(sb, chunk...)
	return utf8.AppendRune(sb, utf8.RuneError)
}

// escape decodes the escape sequence at the current backslash and appends
// the result to sb. In templates, legacy octal escapes are invalid.
func (l *Lexer) escape(sb []byte, tok *Token, template bool) ([]byte, error) {
	pos := l.Pos()
	l.offset++ // backslash
	if l.offset >= len(l.src) {
		return sb, l.errorf(pos, errInvalidEscape)
	}
	r, n := l.char()
	if IsLineTerminator(r) {
		l.lineBreak(r, n)
		return sb, nil
	}
	l.offset += n
	switch r {
	case 'n':
		return append(sb, '\n'), nil
	case 't':
		return append(sb, '\t'), nil
	case 'r':
		return append(sb, '\r'), nil
	case 'b':
		return append(sb, '\b'), nil
	case 'f':
		return append(sb, '\f'), nil
	case 'v':
		return append(sb, '\v'), nil
	case 'x':
		if !isHexDigit(l.peek(0)) || !isHexDigit(l.peek(1)) {
			return sb, l.errorf(pos, errInvalidEscape)
		}
		v := hexValue(l.peek(0))<<4 | hexValue(l.peek(1))
		l.offset += 2
		return utf8.AppendRune(sb, v), nil
	case 'u':
		v, ok := l.unicodeEscape()
		if !ok {
			return sb, l.errorf(pos, errInvalidUnicode)
		}
		if v >= 0xD800 && v <= 0xDBFF && l.peek(0) == '\\' && l.peek(1) == 'u' {
			save := l.offset
			l.offset += 2
			if lo, ok := l.unicodeEscape(); ok && lo >= 0xDC00 && lo <= 0xDFFF {
				return utf8.AppendRune(sb, (v-0xD800)<<10+(lo-0xDC00)+0x10000), nil
			}
			l.offset = save
		}
		return AppendWTF8(sb, v), nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if r == '0' && !isDigit(l.peek(0)) {
			return append(sb, 0), nil
		}
		if template {
			return sb, l.errorf(pos, errInvalidEscape)
		}
		tok.Octal = true
		v := r - '0'
		limit := 2
		if r >= '4' {
			limit = 1
		}
		for i := 0; i < limit && l.peek(0) >= '0' && l.peek(0) <= '7'; i++ {
			v = v*8 + rune(l.peek(0)-'0')
			l.offset++
		}
		return utf8.AppendRune(sb, v), nil
	case '8', '9':
		if template {
			return sb, l.errorf(pos, errInvalidEscape)
		}
		tok.Octal = true
		return append(sb, byte(r)), nil
	}
	return utf8.AppendRune(sb, r), nil
}

// ============================================================================
// Templates
// ============================================================================

// scanTemplate scans a template chunk. The opening backquote or closing
// brace has been consumed.
func (l *Lexer) scanTemplate(start token.Position) (Token, error) {
	tok := Token{Type: token.TEMPLATE}
	var sb []byte
	chunk := l.offset
	rawStart := l.offset
	for {
		if l.offset >= len(l.src) {
			return Token{}, l.errorf(start, errUnterminatedTmpl)
		}
		c := l.src[l.offset]
		switch {
		case c == '`':
			sb = append(sb, l.src[chunk:l.offset]...)
			tok.Raw = l.src[rawStart:l.offset]
			l.offset++
			tok.Tail = true
			tok.Value = string(sb)
			return tok, nil
		case c == '$' && l.peek(1) == '{':
			sb = append(sb, l.src[chunk:l.offset]...)
			tok.Raw = l.src[rawStart:l.offset]
			l.offset += 2
			l.templates = append(l.templates, 0)
			tok.Value = string(sb)
			return tok, nil
		case c == '\\':
			sb = append(sb, l.src[chunk:l.offset]...)
			save := l.Snapshot()
			var err error
			sb, err = l.escape(sb, &tok, true)
			if err != nil {
				// Tagged templates may contain invalid escapes; skip the
				// backslash and the next character.
				l.Restore(save)
				l.offset++
				tok.BadEscape = true
				if l.offset < len(l.src) && l.src[l.offset] != '`' {
					r, n := l.char()
					if IsLineTerminator(r) {
						l.lineBreak(r, n)
					} else {
						l.offset += n
					}
				}
			}
			chunk = l.offset
		case c == '\r' || c == '\n' || c >= utf8.RuneSelf:
			r, n := l.char()
			if IsLineTerminator(r) {
				sb = append(sb, l.src[chunk:l.offset]...)
				if r == '\r' {
					sb = append(sb, '\n')
				} else {
					sb = utf8.AppendRune(sb, r)
				}
				l.lineBreak(r, n)
				chunk = l.offset
			} else if r == utf8.RuneError && n == 1 {
				sb = appendReplacement(sb, l.src[chunk:l.offset])
				l.offset++
				chunk = l.offset
			} else {
				l.offset += n
			}
		default:
			l.offset++
		}
	}
}

// ============================================================================
// Regular expressions
// ============================================================================

// RescanRegexp re-scans tok, a '/' or '/=' token just returned by Next, as
// a regular expression literal. The body and flags are returned raw; their
// validity is checked later.
func (l *Lexer) RescanRegexp(tok Token) (Token, error) {
	start := tok.Span.Start
	l.offset = start.Offset + 1
	inClass := false
	for {
		r, n := l.char()
		if r < 0 || IsLineTerminator(r) {
			return Token{}, l.errorf(start, errUnterminatedRegexp)
		}
		l.offset += n
		if r == '\\' {
			r, n = l.char()
			if r < 0 || IsLineTerminator(r) {
				return Token{}, l.errorf(start, errUnterminatedRegexp)
			}
			l.offset += n
			continue
		}
		if r == '[' {
			inClass = true
		} else if r == ']' {
			inClass = false
		} else if r == '/' && !inClass {
			break
		}
	}
	bodyEnd := l.offset - 1
	flagsStart := l.offset
	for l.offset < len(l.src) {
		r, n := l.char()
		if r == '\\' {
			return Token{}, l.errorf(l.Pos(), errInvalidIdentEscape)
		}
		if !IsIDContinue(r) {
			break
		}
		l.offset += n
	}
	return Token{
		Type:          token.REGEXP,
		Span:          token.Span{Start: start, End: l.Pos()},
		Value:         l.src[start.Offset+1 : bodyEnd],
		Flags:         l.src[flagsStart:l.offset],
		Raw:           l.src[start.Offset:l.offset],
		NewlineBefore: tok.NewlineBefore,
	}, nil
}
