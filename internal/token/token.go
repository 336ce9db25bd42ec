// Package token defines lexical tokens for ECMAScript.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // end of input

	// Literals
	literalStart
	IDENT    // identifier
	NUMBER   // numeric literal
	STRING   // string literal
	TEMPLATE // template
	REGEXP   // regular expression
	literalEnd

	// Punctuators
	operatorStart
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACK    // [
	RBRACK    // ]
	DOT       // .
	ELLIPSIS  // ...
	SEMICOLON // ;
	COMMA     // ,
	QUESTION  // ?
	COLON     // :
	ARROW     // =>

	LT  // <
	GT  // >
	LTE // <=
	GTE // >=
	EQ  // ==
	NE  // !=
	SEQ // ===
	SNE // !==

	ADD    // +
	SUB    // -
	MUL    // *
	DIV    // /
	MOD    // %
	EXP    // **
	INC    // ++
	DEC    // --
	SHL    // <<
	SAR    // >>
	SHR    // >>>
	BITAND // &
	BITOR  // |
	BITXOR // ^
	NOT    // !
	BITNOT // ~
	AND    // &&
	OR     // ||

	ASSIGN     // =
	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	DIV_ASSIGN // /=
	MOD_ASSIGN // %=
	EXP_ASSIGN // **=
	SHL_ASSIGN // <<=
	SAR_ASSIGN // >>=
	SHR_ASSIGN // >>>=
	AND_ASSIGN // &=
	OR_ASSIGN  // |=
	XOR_ASSIGN // ^=
	operatorEnd

	// Keywords
	keywordStart
	BREAK      // break
	CASE       // case
	CATCH      // catch
	CLASS      // class
	CONST      // const
	CONTINUE   // continue
	DEBUGGER   // debugger
	DEFAULT    // default
	DELETE     // delete
	DO         // do
	ELSE       // else
	ENUM       // enum
	EXPORT     // export
	EXTENDS    // extends
	FALSE      // false
	FINALLY    // finally
	FOR        // for
	FUNCTION   // function
	IF         // if
	IMPORT     // import
	IN         // in
	INSTANCEOF // instanceof
	NEW        // new
	NULL       // null
	RETURN     // return
	SUPER      // super
	SWITCH     // switch
	THIS       // this
	THROW      // throw
	TRUE       // true
	TRY        // try
	TYPEOF     // typeof
	VAR        // var
	VOID       // void
	WHILE      // while
	WITH       // with
	keywordEnd
)

var names = [...]string{
	ILLEGAL:  "<illegal>",
	EOF:      "end of input",
	IDENT:    "identifier",
	NUMBER:   "number",
	STRING:   "string",
	TEMPLATE: "template",
	REGEXP:   "regular expression",

	LBRACE:    "{",
	RBRACE:    "}",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACK:    "[",
	RBRACK:    "]",
	DOT:       ".",
	ELLIPSIS:  "...",
	SEMICOLON: ";",
	COMMA:     ",",
	QUESTION:  "?",
	COLON:     ":",
	ARROW:     "=>",

	LT:  "<",
	GT:  ">",
	LTE: "<=",
	GTE: ">=",
	EQ:  "==",
	NE:  "!=",
	SEQ: "===",
	SNE: "!==",

	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	MOD:    "%",
	EXP:    "**",
	INC:    "++",
	DEC:    "--",
	SHL:    "<<",
	SAR:    ">>",
	SHR:    ">>>",
	BITAND: "&",
	BITOR:  "|",
	BITXOR: "^",
	NOT:    "!",
	BITNOT: "~",
	AND:    "&&",
	OR:     "||",

	ASSIGN:     "=",
	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	DIV_ASSIGN: "/=",
	MOD_ASSIGN: "%=",
	EXP_ASSIGN: "**=",
	SHL_ASSIGN: "<<=",
	SAR_ASSIGN: ">>=",
	SHR_ASSIGN: ">>>=",
	AND_ASSIGN: "&=",
	OR_ASSIGN:  "|=",
	XOR_ASSIGN: "^=",

	BREAK:      "break",
	CASE:       "case",
	CATCH:      "catch",
	CLASS:      "class",
	CONST:      "const",
	CONTINUE:   "continue",
	DEBUGGER:   "debugger",
	DEFAULT:    "default",
	DELETE:     "delete",
	DO:         "do",
	ELSE:       "else",
	ENUM:       "enum",
	EXPORT:     "export",
	EXTENDS:    "extends",
	FALSE:      "false",
	FINALLY:    "finally",
	FOR:        "for",
	FUNCTION:   "function",
	IF:         "if",
	IMPORT:     "import",
	IN:         "in",
	INSTANCEOF: "instanceof",
	NEW:        "new",
	NULL:       "null",
	RETURN:     "return",
	SUPER:      "super",
	SWITCH:     "switch",
	THIS:       "this",
	THROW:      "throw",
	TRUE:       "true",
	TRY:        "try",
	TYPEOF:     "typeof",
	VAR:        "var",
	VOID:       "void",
	WHILE:      "while",
	WITH:       "with",
}

// String returns the source spelling of punctuators and keywords and a
// description for the other token types.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator returns true if the token is a punctuator.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is an identifier or literal.
func (t Token) IsLiteral() bool {
	return t > literalStart && t < literalEnd
}

// IsAssign returns true for = and the compound assignment operators.
func (t Token) IsAssign() bool {
	return t >= ASSIGN && t <= XOR_ASSIGN
}

// IdentifierName reports whether the token can be used where an
// IdentifierName is expected (property names, member access).
func (t Token) IdentifierName() bool {
	return t == IDENT || t.IsKeyword()
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, keywordEnd-keywordStart)
	for t := keywordStart + 1; t < keywordEnd; t++ {
		keywords[names[t]] = t
	}
}

// Lookup returns the keyword token for name, or IDENT if name is not a
// reserved word. Contextual keywords (let, yield, await, async, of, get,
// set, static) are returned as IDENT.
func Lookup(name string) Token {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return IDENT
}

// strictReserved are reserved only in strict mode code.
var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"let":        true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
}

// IsReservedWord reports whether name is always reserved.
func IsReservedWord(name string) bool {
	_, ok := keywords[name]
	return ok
}

// IsStrictReservedWord reports whether name is reserved in strict mode code,
// including the words that are always reserved.
func IsStrictReservedWord(name string) bool {
	return strictReserved[name] || IsReservedWord(name)
}

// IsRestrictedWord reports whether name may not be bound in strict mode code.
func IsRestrictedWord(name string) bool {
	return name == "eval" || name == "arguments"
}
