// Package parser provides an ECMAScript 2017 recursive descent parser.
//
// The parser drives the lexer one token at a time and builds the tree in a
// single pass. Grammar violations abort the parse with a *ParseError (or
// the *lexer.Error of a malformed token). Static-semantic violations that
// only the parser can see, such as jumps without a target or octal
// literals in strict code, are collected as early errors in Result and do
// not stop the parse.
//
// Ambiguities are resolved by reinterpretation: a parenthesized expression
// or call arguments followed by "=>" are converted to arrow parameters, and
// an expression followed by "=" is converted to an assignment target. A '/'
// in operand position is rescanned by the lexer as a regular expression.
package parser

import (
	"sort"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// Mode controls optional parser behavior.
type Mode uint

const (
	ModuleGoal Mode = 1 << iota // parse with the Module goal
	Locations                   // record node spans in Result.Locations
)

// Result is the outcome of a syntactically successful parse.
type Result struct {
	Program     ast.Program
	Locations   *ast.Locations // nil unless the Locations mode is set
	Comments    []lexer.Comment
	EarlyErrors ErrorList
}

// Parser holds the parser state.
type Parser struct {
	lexer  *lexer.Lexer
	src    string
	module bool

	tok     lexer.Token    // current token
	prevEnd token.Position // end of the last consumed token

	locs  *ast.Locations
	early ErrorList

	// cover grammar bookkeeping
	parenthesized map[ast.Node]bool
	coverInits    map[*ast.DataProperty]token.Position
	restComma     map[*ast.ArrayExpression]bool
}

// context is the grammar context of the production being parsed. It is
// passed by value, so nested productions cannot leak changes outwards.
type context struct {
	strict    bool
	noIn      bool // 'in' is not a relational operator (for statement heads)
	yield     bool // inside a generator: yield is an operator
	await     bool // inside an async function: await is an operator
	superCall bool // super(...) is allowed
	superProp bool // super.x and super[x] are allowed
	newTarget bool // new.target is allowed
}

// bailout carries a fatal error up to the entry point.
type bailout struct{ err error }

// Parse parses src and returns the tree with its early errors. The error
// is non-nil only for lexical and syntax errors.
func Parse(src string, mode Mode) (res *Result, err error) {
	p := newParser(src, mode)
	defer p.handleBailout(&err)

	p.next()
	var prog ast.Program
	if p.module {
		prog = p.parseModule()
	} else {
		prog = p.parseScript()
	}
	p.reportCoverInits()
	p.early.Sort()
	return &Result{
		Program:     prog,
		Locations:   p.locs,
		Comments:    p.lexer.Comments(),
		EarlyErrors: p.early,
	}, nil
}

// ParseScript parses src with the Script goal. Early errors found by the
// parser are returned as an ErrorList.
func ParseScript(src string) (*ast.Script, error) {
	res, err := Parse(src, 0)
	if err != nil {
		return nil, err
	}
	if err := res.EarlyErrors.Err(); err != nil {
		return nil, err
	}
	return res.Program.(*ast.Script), nil
}

// ParseModule parses src with the Module goal.
func ParseModule(src string) (*ast.Module, error) {
	res, err := Parse(src, ModuleGoal)
	if err != nil {
		return nil, err
	}
	if err := res.EarlyErrors.Err(); err != nil {
		return nil, err
	}
	return res.Program.(*ast.Module), nil
}

// ParseExpr parses a single expression in sloppy Script code.
func ParseExpr(src string) (_ ast.Expression, err error) {
	p := newParser(src, 0)
	defer p.handleBailout(&err)

	p.next()
	expr := p.parseExpression(context{})
	if p.tok.Type != token.EOF {
		p.unexpected()
	}
	p.reportCoverInits()
	if err := p.early.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

func newParser(src string, mode Mode) *Parser {
	p := &Parser{
		lexer:         lexer.New(src, mode&ModuleGoal != 0),
		src:           src,
		module:        mode&ModuleGoal != 0,
		parenthesized: make(map[ast.Node]bool),
		coverInits:    make(map[*ast.DataProperty]token.Position),
		restComma:     make(map[*ast.ArrayExpression]bool),
	}
	if mode&Locations != 0 {
		p.locs = ast.NewLocations()
	}
	return p
}

func (p *Parser) handleBailout(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.prevEnd = p.tok.Span.End
	tok, err := p.lexer.Next()
	if err != nil {
		panic(bailout{err})
	}
	p.tok = tok
}

// peek returns the token after the current one without consuming it. A
// malformed token is returned as ILLEGAL; the error surfaces when the
// parser gets there.
func (p *Parser) peek() lexer.Token {
	s := p.lexer.Snapshot()
	tok, err := p.lexer.Next()
	p.lexer.Restore(s)
	if err != nil {
		return lexer.Token{Type: token.ILLEGAL}
	}
	return tok
}

// expect checks that the current token is tok and advances.
func (p *Parser) expect(tok token.Token) {
	if p.tok.Type != tok {
		p.fail(expectedError(p.tok.Span.Start, "'"+tok.String()+"'", p.tokenDesc()))
	}
	p.next()
}

// eat advances past the current token if it is tok.
func (p *Parser) eat(tok token.Token) bool {
	if p.tok.Type != tok {
		return false
	}
	p.next()
	return true
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// isContextual reports whether the current token is the contextual keyword
// name written without escapes.
func (p *Parser) isContextual(name string) bool {
	return p.tok.Type == token.IDENT && p.tok.Value == name && !p.tok.Escaped
}

// expectContextual consumes the contextual keyword name.
func (p *Parser) expectContextual(name string) {
	if !p.isContextual(name) {
		p.fail(expectedError(p.tok.Span.Start, "'"+name+"'", p.tokenDesc()))
	}
	p.next()
}

// templateStart reports whether the current token opens a template
// literal, as opposed to continuing one after a substitution.
func (p *Parser) templateStart() bool {
	return p.tok.Type == token.TEMPLATE && p.src[p.tok.Span.Start.Offset] == '`'
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT, token.NUMBER, token.STRING, token.REGEXP:
		return p.tok.Raw
	case token.TEMPLATE:
		return "template"
	}
	return "'" + p.tok.Type.String() + "'"
}

// consumeSemicolon implements automatic semicolon insertion: a missing
// semicolon is accepted before '}', at the end of input, or after a line
// terminator.
func (p *Parser) consumeSemicolon() {
	if p.eat(token.SEMICOLON) {
		return
	}
	if p.tok.Type == token.RBRACE || p.tok.Type == token.EOF || p.tok.NewlineBefore {
		return
	}
	p.unexpected()
}

// consumeRestrictedSemicolon ends a return, break or continue with no
// operand. A line terminator after the keyword inserts the semicolon, so
// a ';' on the next line is an empty statement of its own.
func (p *Parser) consumeRestrictedSemicolon() {
	if p.tok.NewlineBefore {
		return
	}
	p.consumeSemicolon()
}

// -----------------------------------------------------------------------------
// Errors and locations
// -----------------------------------------------------------------------------

// fail aborts the parse with err.
func (p *Parser) fail(err *ParseError) {
	panic(bailout{err})
}

// failf aborts the parse with a formatted error at pos.
func (p *Parser) failf(pos token.Position, format string, args ...any) {
	p.fail(errorf(pos, format, args...))
}

// unexpected aborts the parse at the current token.
func (p *Parser) unexpected() {
	e := errorf(p.tok.Span.Start, errUnexpectedToken, p.tokenDesc())
	e.Got = p.tokenDesc()
	p.fail(e)
}

// earlyf records an early error.
func (p *Parser) earlyf(pos token.Position, format string, args ...any) {
	p.early = append(p.early, errorf(pos, format, args...))
}

// finish records the span of n, from start to the end of the last
// consumed token.
func finish[T ast.Node](p *Parser, start token.Position, n T) T {
	if p.locs != nil {
		p.locs.Set(n, token.Span{Start: start, End: p.prevEnd})
	}
	return n
}

// startOf returns the recorded start of n, or the zero position when
// locations are not tracked.
func (p *Parser) startOf(n ast.Node) token.Position {
	if p.locs == nil {
		return token.Position{}
	}
	s, _ := p.locs.Get(n)
	return s.Start
}

// relocate gives the converted node to the span of the node it replaces.
func relocate[T ast.Node](p *Parser, from ast.Node, to T) T {
	if p.locs != nil {
		if s, ok := p.locs.Get(from); ok {
			p.locs.Set(to, s)
		}
	}
	if p.parenthesized[from] {
		p.parenthesized[to] = true
	}
	return to
}

// reportCoverInits reports object literal initializers ({a = 1}) that
// were never reinterpreted as patterns.
func (p *Parser) reportCoverInits() {
	positions := make([]token.Position, 0, len(p.coverInits))
	for _, pos := range p.coverInits {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Offset < positions[j].Offset })
	for _, pos := range positions {
		p.early.Add(pos, errCoverInit)
	}
}

// checkOctal records strict mode violations carried by a literal token.
func (p *Parser) checkOctal(ctx context, tok lexer.Token) {
	if !ctx.strict || !tok.Octal {
		return
	}
	if tok.Type == token.NUMBER {
		p.early.Add(tok.Span.Start, errStrictOctal)
	} else {
		p.early.Add(tok.Span.Start, errStrictOctalEscape)
	}
}
