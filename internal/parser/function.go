package parser

import (
	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// defaultName is the binding name of an anonymous function or class
// declaration in export default position.
const defaultName = "*default*"

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

// functionContext returns the context of the body of a function.
func functionContext(outer context, isAsync, isGenerator bool) context {
	return context{
		strict:    outer.strict,
		yield:     isGenerator,
		await:     isAsync,
		newTarget: true,
	}
}

// parseFunctionDeclaration parses a function declaration. The 'async'
// prefix, if any, has been consumed. With defaultExport set the name may
// be omitted.
func (p *Parser) parseFunctionDeclaration(ctx context, start token.Position, isAsync, defaultExport bool) *ast.FunctionDeclaration {
	p.expect(token.FUNCTION)
	isGenerator := p.parseGeneratorStar(isAsync)
	var name *ast.BindingIdentifier
	if defaultExport && p.tok.Type == token.LPAREN {
		name = spanned(p, p.tok.Span, &ast.BindingIdentifier{Name: defaultName})
	} else {
		name = p.parseBindingIdentifier(ctx)
	}
	fctx := functionContext(ctx, isAsync, isGenerator)
	params := p.parseFormalParameters(fctx)
	body := p.parseFunctionBody(fctx)
	return finish(p, start, &ast.FunctionDeclaration{
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Name:        name,
		Params:      params,
		Body:        body,
	})
}

// parseFunctionExpression parses a function expression. The name, if
// present, is bound in the context of the function itself.
func (p *Parser) parseFunctionExpression(ctx context, start token.Position, isAsync bool) *ast.FunctionExpression {
	p.expect(token.FUNCTION)
	isGenerator := p.parseGeneratorStar(isAsync)
	fctx := functionContext(ctx, isAsync, isGenerator)
	var name *ast.BindingIdentifier
	if p.tok.Type == token.IDENT {
		name = p.parseBindingIdentifier(fctx)
	}
	params := p.parseFormalParameters(fctx)
	body := p.parseFunctionBody(fctx)
	return finish(p, start, &ast.FunctionExpression{
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Name:        name,
		Params:      params,
		Body:        body,
	})
}

// parseGeneratorStar consumes the '*' of a generator. Async generators
// are not part of the language version.
func (p *Parser) parseGeneratorStar(isAsync bool) bool {
	if p.tok.Type != token.MUL {
		return false
	}
	if isAsync {
		p.unexpected()
	}
	p.next()
	return true
}

// parseFormalParameters parses a parenthesized parameter list.
func (p *Parser) parseFormalParameters(ctx context) *ast.FormalParameters {
	start := p.tok.Span.Start
	p.expect(token.LPAREN)
	params := &ast.FormalParameters{}
	for p.tok.Type != token.RPAREN {
		if p.eat(token.ELLIPSIS) {
			params.Rest = p.parseBindingTarget(ctx)
			if p.tok.Type == token.ASSIGN {
				p.failf(p.tok.Span.Start, errRestInit)
			}
			break
		}
		params.Items = append(params.Items, p.parseBindingElement(ctx))
		if p.tok.Type != token.RPAREN {
			p.expect(token.COMMA)
		}
	}
	p.expect(token.RPAREN)
	return finish(p, start, params)
}

// parseFunctionBody parses a braced function body and reports the jumps
// that escape it.
func (p *Parser) parseFunctionBody(ctx context) *ast.FunctionBody {
	start := p.tok.Span.Start
	p.expect(token.LBRACE)
	dirs, first, ctx := p.parseDirectives(ctx)
	stmts, j := p.parseBody(ctx, token.RBRACE)
	if first != nil {
		stmts = append([]ast.Statement{first}, stmts...)
	}
	p.expect(token.RBRACE)
	p.reportJumps(j, false)
	return finish(p, start, &ast.FunctionBody{Directives: dirs, Statements: stmts})
}

// -----------------------------------------------------------------------------
// Methods and classes
// -----------------------------------------------------------------------------

type methodOptions struct {
	class   bool // class element; a method definition is required
	static  bool
	derived bool // the class has an extends clause
}

// parseMethodDefinition parses a method, getter or setter. In an object
// literal the member may turn out to be a data or shorthand property; then
// m is nil and the parsed name and its first token are returned.
func (p *Parser) parseMethodDefinition(ctx context, start token.Position, opts methodOptions) (m ast.MethodDefinition, name ast.PropertyName, nameTok lexer.Token) {
	prefix := ""
	if p.tok.Type == token.IDENT && !p.tok.Escaped {
		switch p.tok.Value {
		case "get", "set", "async":
			next := p.peek()
			switch next.Type {
			case token.LPAREN, token.COMMA, token.RBRACE, token.COLON, token.ASSIGN:
			default:
				if p.tok.Value != "async" || !next.NewlineBefore {
					prefix = p.tok.Value
					p.next()
				}
			}
		}
	}
	isAsync := prefix == "async"
	isGenerator := prefix != "get" && prefix != "set" && p.parseGeneratorStar(isAsync)
	name, nameTok = p.parsePropertyName(ctx)

	fctx := functionContext(ctx, isAsync, isGenerator)
	fctx.strict = ctx.strict || opts.class
	fctx.superProp = true
	switch prefix {
	case "get":
		p.expect(token.LPAREN)
		p.expect(token.RPAREN)
		body := p.parseFunctionBody(fctx)
		return finish(p, start, &ast.Getter{Name: name, Body: body}), name, nameTok
	case "set":
		p.expect(token.LPAREN)
		param := p.parseBindingElement(fctx)
		p.expect(token.RPAREN)
		body := p.parseFunctionBody(fctx)
		return finish(p, start, &ast.Setter{Name: name, Param: param, Body: body}), name, nameTok
	}
	if prefix == "" && !isGenerator && p.tok.Type != token.LPAREN {
		if opts.class {
			p.unexpected()
		}
		return nil, name, nameTok
	}
	if opts.derived && !opts.static && !isAsync && !isGenerator && isConstructorName(name) {
		fctx.superCall = true
	}
	params := p.parseFormalParameters(fctx)
	body := p.parseFunctionBody(fctx)
	return finish(p, start, &ast.Method{
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Name:        name,
		Params:      params,
		Body:        body,
	}), name, nameTok
}

func isConstructorName(name ast.PropertyName) bool {
	s, ok := name.(*ast.StaticPropertyName)
	return ok && s.Value == "constructor"
}

// parseClassDeclaration parses a class declaration. With defaultExport set
// the name may be omitted.
func (p *Parser) parseClassDeclaration(ctx context, defaultExport bool) *ast.ClassDeclaration {
	start := p.tok.Span.Start
	p.expect(token.CLASS)
	ctx.strict = true
	var name *ast.BindingIdentifier
	if defaultExport && p.match(token.LBRACE, token.EXTENDS) {
		name = spanned(p, p.tok.Span, &ast.BindingIdentifier{Name: defaultName})
	} else {
		name = p.parseBindingIdentifier(ctx)
	}
	super, elements := p.parseClassTail(ctx)
	return finish(p, start, &ast.ClassDeclaration{Name: name, Super: super, Elements: elements})
}

// parseClassExpression parses a class expression with an optional name.
func (p *Parser) parseClassExpression(ctx context) *ast.ClassExpression {
	start := p.tok.Span.Start
	p.expect(token.CLASS)
	ctx.strict = true
	var name *ast.BindingIdentifier
	if p.tok.Type == token.IDENT {
		name = p.parseBindingIdentifier(ctx)
	}
	super, elements := p.parseClassTail(ctx)
	return finish(p, start, &ast.ClassExpression{Name: name, Super: super, Elements: elements})
}

// parseClassTail parses the heritage and the body of a class.
func (p *Parser) parseClassTail(ctx context) (ast.Expression, []*ast.ClassElement) {
	var super ast.Expression
	if p.eat(token.EXTENDS) {
		super = p.parseLHS(ctx)
	}
	p.expect(token.LBRACE)
	var elements []*ast.ClassElement
	for p.tok.Type != token.RBRACE {
		if p.eat(token.SEMICOLON) {
			continue
		}
		start := p.tok.Span.Start
		static := false
		if p.isContextual("static") && p.peek().Type != token.LPAREN {
			static = true
			p.next()
		}
		opts := methodOptions{class: true, static: static, derived: super != nil}
		m, _, _ := p.parseMethodDefinition(ctx, p.tok.Span.Start, opts)
		elements = append(elements, finish(p, start, &ast.ClassElement{IsStatic: static, Method: m}))
	}
	p.next()
	return super, elements
}
