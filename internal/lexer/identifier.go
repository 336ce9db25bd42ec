package lexer

import (
	"unicode"
	"unicode/utf8"
)

var (
	idStart    = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_ID_Start}
	idContinue = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	}
)

// IsIDStart reports whether r may start an identifier.
func IsIDStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '$' || r == '_'
	}
	return unicode.In(r, idStart...)
}

// IsIDContinue reports whether r may continue an identifier.
func IsIDContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return IsIDStart(r) || isDigit(byte(r))
	}
	return r == '\u200C' || r == '\u200D' || unicode.In(r, idContinue...)
}

// IsIdentifierName reports whether s is a valid IdentifierName written
// without escapes.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 && !IsIDStart(r) || i > 0 && !IsIDContinue(r) {
			return false
		}
	}
	return true
}

// IsLineTerminator reports whether r ends a line.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00A0', '\uFEFF':
		return true
	}
	return r >= utf8.RuneSelf && unicode.Is(unicode.Zs, r)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) rune {
	switch {
	case ch >= '0' && ch <= '9':
		return rune(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return rune(ch - 'a' + 10)
	}
	return rune(ch - 'A' + 10)
}

// AppendWTF8 appends the generalized UTF-8 encoding of r to b. Unlike
// utf8.AppendRune it encodes lone surrogates as three-byte sequences, so
// string values that are not well-formed UTF-16 survive decoding.
func AppendWTF8(b []byte, r rune) []byte {
	if r >= 0xD800 && r <= 0xDFFF {
		return append(b, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
	return utf8.AppendRune(b, r)
}

// DecodeWTF8 decodes the first code point of s, including the three-byte
// encodings of lone surrogates produced by AppendWTF8. It returns
// utf8.RuneError and size 1 for invalid input.
func DecodeWTF8(s string) (rune, int) {
	if len(s) >= 3 && s[0] == 0xED && s[1] >= 0xA0 && s[1] <= 0xBF && s[2]&0xC0 == 0x80 {
		return rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3
	}
	return utf8.DecodeRuneInString(s)
}
