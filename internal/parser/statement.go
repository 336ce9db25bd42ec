package parser

import (
	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/token"
)

// -----------------------------------------------------------------------------
// Programs and statement lists
// -----------------------------------------------------------------------------

// parseScript parses a Script: a directive prologue and a statement list.
func (p *Parser) parseScript() *ast.Script {
	start := token.Position{Line: 1, Column: 1}
	dirs, first, ctx := p.parseDirectives(context{})
	stmts, j := p.parseBody(ctx, token.EOF)
	if first != nil {
		stmts = append([]ast.Statement{first}, stmts...)
	}
	p.reportJumps(j, true)
	return spanned(p, token.Span{Start: start, End: p.tok.Span.End}, &ast.Script{Directives: dirs, Statements: stmts})
}

// parseDirectives parses a directive prologue. A string literal statement
// that turns out not to be a directive is returned as first. The returned
// context is strict if the prologue contains "use strict".
func (p *Parser) parseDirectives(ctx context) (dirs []*ast.Directive, first ast.Statement, _ context) {
	var octals []token.Position
	for p.tok.Type == token.STRING {
		tok := p.tok
		stmt, _ := p.parseStatement(ctx)
		es := stmt.(*ast.ExpressionStatement)
		if lit, ok := es.Expression.(*ast.LiteralStringExpression); !ok || p.parenthesized[lit] {
			first = stmt
			break
		}
		raw := tok.Raw[1 : len(tok.Raw)-1]
		dirs = append(dirs, relocate(p, stmt, &ast.Directive{RawValue: raw}))
		if tok.Octal && !ctx.strict {
			octals = append(octals, tok.Span.Start)
		}
		if raw == "use strict" {
			ctx.strict = true
		}
	}
	if ctx.strict {
		for _, pos := range octals {
			p.early.Add(pos, errStrictOctalEscape)
		}
	}
	return dirs, first, ctx
}

// parseBody parses statement list items up to (not including) end.
func (p *Parser) parseBody(ctx context, end token.Token) ([]ast.Statement, jumps) {
	var stmts []ast.Statement
	var j jumps
	for p.tok.Type != end && p.tok.Type != token.EOF {
		s, sj := p.parseStatementListItem(ctx)
		stmts = append(stmts, s)
		j = j.concat(sj)
	}
	return stmts, j
}

// parseStatementListItem parses a statement or a declaration.
func (p *Parser) parseStatementListItem(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	switch p.tok.Type {
	case token.FUNCTION:
		return p.parseFunctionDeclaration(ctx, start, false, false), jumps{}
	case token.CLASS:
		return p.parseClassDeclaration(ctx, false), jumps{}
	case token.CONST:
		return p.parseLexicalDeclaration(ctx), jumps{}
	case token.IMPORT, token.EXPORT:
		if p.module {
			p.unexpected()
		}
		p.failf(start, errImportInScript)
	case token.IDENT:
		if p.isContextual("let") && p.letDeclarationFollows() {
			return p.parseLexicalDeclaration(ctx), jumps{}
		}
		if p.asyncFunctionFollows() {
			p.next()
			return p.parseFunctionDeclaration(ctx, start, true, false), jumps{}
		}
	}
	return p.parseStatement(ctx)
}

// letDeclarationFollows reports whether the current 'let' starts a
// lexical declaration rather than an identifier expression.
func (p *Parser) letDeclarationFollows() bool {
	switch p.peek().Type {
	case token.IDENT, token.LBRACK, token.LBRACE:
		return true
	}
	return false
}

// asyncFunctionFollows reports whether the current token is 'async'
// followed by 'function' on the same line.
func (p *Parser) asyncFunctionFollows() bool {
	if !p.isContextual("async") {
		return false
	}
	next := p.peek()
	return next.Type == token.FUNCTION && !next.NewlineBefore
}

// parseLexicalDeclaration parses a let or const declaration statement.
func (p *Parser) parseLexicalDeclaration(ctx context) ast.Statement {
	start := p.tok.Span.Start
	decl := p.parseVariableDeclaration(ctx, false)
	p.consumeSemicolon()
	return finish(p, start, &ast.VariableDeclarationStatement{Declaration: decl})
}

// parseBlock parses a braced statement list.
func (p *Parser) parseBlock(ctx context) (*ast.Block, jumps) {
	start := p.tok.Span.Start
	p.expect(token.LBRACE)
	stmts, j := p.parseBody(ctx, token.RBRACE)
	p.expect(token.RBRACE)
	return finish(p, start, &ast.Block{Statements: stmts}), j
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// parseStatement parses a Statement. It returns the jumps of the statement
// that are not resolved inside it.
func (p *Parser) parseStatement(ctx context) (ast.Statement, jumps) {
	ctx.noIn = false
	start := p.tok.Span.Start
	switch p.tok.Type {
	case token.LBRACE:
		block, j := p.parseBlock(ctx)
		return finish(p, start, &ast.BlockStatement{Block: block}), j
	case token.SEMICOLON:
		p.next()
		return finish(p, start, &ast.EmptyStatement{}), jumps{}
	case token.VAR:
		decl := p.parseVariableDeclaration(ctx, false)
		p.consumeSemicolon()
		return finish(p, start, &ast.VariableDeclarationStatement{Declaration: decl}), jumps{}
	case token.IF:
		return p.parseIf(ctx)
	case token.FOR:
		return p.parseFor(ctx)
	case token.WHILE:
		p.next()
		test := p.parseCondition(ctx)
		body, j := p.parseStatement(ctx)
		return finish(p, start, &ast.WhileStatement{Test: test, Body: body}), j.loop()
	case token.DO:
		p.next()
		body, j := p.parseStatement(ctx)
		p.expect(token.WHILE)
		test := p.parseCondition(ctx)
		p.eat(token.SEMICOLON)
		return finish(p, start, &ast.DoWhileStatement{Body: body, Test: test}), j.loop()
	case token.CONTINUE, token.BREAK:
		return p.parseJump(ctx)
	case token.RETURN:
		p.next()
		var expr ast.Expression
		if !p.tok.NewlineBefore && !p.match(token.SEMICOLON, token.RBRACE, token.EOF) {
			expr = p.parseExpression(ctx)
			p.consumeSemicolon()
		} else {
			p.consumeRestrictedSemicolon()
		}
		return finish(p, start, &ast.ReturnStatement{Expression: expr}), jumps{returns: []token.Position{start}}
	case token.WITH:
		p.next()
		object := p.parseCondition(ctx)
		body, j := p.parseStatement(ctx)
		return finish(p, start, &ast.WithStatement{Object: object, Body: body}), j
	case token.SWITCH:
		return p.parseSwitch(ctx)
	case token.THROW:
		p.next()
		if p.tok.NewlineBefore {
			p.failf(p.tok.Span.Start, errNewlineThrow)
		}
		expr := p.parseExpression(ctx)
		p.consumeSemicolon()
		return finish(p, start, &ast.ThrowStatement{Expression: expr}), jumps{}
	case token.TRY:
		return p.parseTry(ctx)
	case token.DEBUGGER:
		p.next()
		p.consumeSemicolon()
		return finish(p, start, &ast.DebuggerStatement{}), jumps{}
	case token.FUNCTION:
		p.failf(start, errFunctionStatement)
	case token.CLASS, token.CONST:
		p.failf(start, errLexicalStatement)
	case token.IDENT:
		if p.isContextual("let") {
			if next := p.peek(); next.Type == token.LBRACK ||
				!next.NewlineBefore && (next.Type == token.IDENT || next.Type == token.LBRACE) {
				p.failf(start, errLexicalStatement)
			}
		}
		if p.asyncFunctionFollows() {
			p.failf(start, errFunctionStatement)
		}
		if p.peek().Type == token.COLON {
			return p.parseLabeled(ctx)
		}
	}
	expr := p.parseExpression(ctx)
	p.consumeSemicolon()
	return finish(p, start, &ast.ExpressionStatement{Expression: expr}), jumps{}
}

// parseCondition parses a parenthesized expression.
func (p *Parser) parseCondition(ctx context) ast.Expression {
	p.expect(token.LPAREN)
	expr := p.parseExpression(ctx)
	p.expect(token.RPAREN)
	return expr
}

// parseClauseBody parses the body of an if statement or a labeled
// statement. Sloppy code may use a plain function declaration there.
func (p *Parser) parseClauseBody(ctx context) (ast.Statement, jumps) {
	if p.tok.Type == token.FUNCTION && !ctx.strict {
		if next := p.peek(); next.Type != token.MUL {
			return p.parseFunctionDeclaration(ctx, p.tok.Span.Start, false, false), jumps{}
		}
	}
	return p.parseStatement(ctx)
}

func (p *Parser) parseIf(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	p.next()
	test := p.parseCondition(ctx)
	consequent, j := p.parseClauseBody(ctx)
	var alternate ast.Statement
	if p.eat(token.ELSE) {
		var aj jumps
		alternate, aj = p.parseClauseBody(ctx)
		j = j.concat(aj)
	}
	return finish(p, start, &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}), j
}

// parseJump parses a break or continue statement. A label must be on the
// same line as the keyword.
func (p *Parser) parseJump(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	isBreak := p.tok.Type == token.BREAK
	p.next()
	label := ""
	if p.tok.Type == token.IDENT && !p.tok.NewlineBefore {
		p.checkIdentifierReference(ctx, p.tok)
		label = p.tok.Value
		p.next()
		p.consumeSemicolon()
	} else {
		p.consumeRestrictedSemicolon()
	}
	jmp := []jump{{label: label, pos: start}}
	if isBreak {
		return finish(p, start, &ast.BreakStatement{Label: label}), jumps{breaks: jmp}
	}
	return finish(p, start, &ast.ContinueStatement{Label: label}), jumps{continues: jmp}
}

// parseLabeled parses label: body.
func (p *Parser) parseLabeled(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	p.checkIdentifierReference(ctx, p.tok)
	label := p.tok.Value
	p.next()
	p.expect(token.COLON)
	body, j := p.parseClauseBody(ctx)
	if j.declares(label) {
		p.earlyf(start, errDuplicateLabel, label)
	}
	j = j.label(label, ast.IsIteration(labelTarget(body)))
	return finish(p, start, &ast.LabeledStatement{Label: label, Body: body}), j
}

// parseFor parses the three for statement forms.
func (p *Parser) parseFor(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	p.next()
	p.expect(token.LPAREN)
	head := ctx
	head.noIn = true
	var init ast.ForInit
	switch {
	case p.tok.Type == token.SEMICOLON:
	case p.tok.Type == token.VAR || p.tok.Type == token.CONST ||
		p.isContextual("let") && p.letDeclarationFollows():
		decl := p.parseVariableDeclaration(head, true)
		if p.tok.Type == token.IN || p.isContextual("of") {
			return p.parseForInOf(ctx, start, decl)
		}
		init = decl
	default:
		exprStart := p.tok.Span.Start
		startsWithLet := p.isContextual("let")
		expr := p.parseExpression(head)
		isOf := p.isContextual("of")
		if p.tok.Type == token.IN || isOf {
			if startsWithLet && isOf {
				p.failf(exprStart, errForInOfInit, "of")
			}
			return p.parseForInOf(ctx, start, p.toTarget(expr, exprStart))
		}
		init = expr
	}
	p.expect(token.SEMICOLON)
	var test, update ast.Expression
	if p.tok.Type != token.SEMICOLON {
		test = p.parseExpression(ctx)
	}
	p.expect(token.SEMICOLON)
	if p.tok.Type != token.RPAREN {
		update = p.parseExpression(ctx)
	}
	p.expect(token.RPAREN)
	body, j := p.parseStatement(ctx)
	return finish(p, start, &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}), j.loop()
}

// parseForInOf parses the rest of a for-in or for-of statement whose left
// side has been parsed.
func (p *Parser) parseForInOf(ctx context, start token.Position, left ast.ForHead) (ast.Statement, jumps) {
	isOf := p.tok.Type != token.IN
	p.next()
	var right ast.Expression
	if isOf {
		right = p.parseAssign(ctx)
	} else {
		right = p.parseExpression(ctx)
	}
	p.expect(token.RPAREN)
	body, j := p.parseStatement(ctx)
	if isOf {
		return finish(p, start, &ast.ForOfStatement{Left: left, Right: right, Body: body}), j.loop()
	}
	return finish(p, start, &ast.ForInStatement{Left: left, Right: right, Body: body}), j.loop()
}

// parseVariableDeclaration parses a var, let or const declaration list.
// In a for statement head a pattern may omit its initializer when 'in' or
// 'of' follows.
func (p *Parser) parseVariableDeclaration(ctx context, inFor bool) *ast.VariableDeclaration {
	start := p.tok.Span.Start
	kind := ast.Var
	switch {
	case p.tok.Type == token.CONST:
		kind = ast.Const
	case p.isContextual("let"):
		kind = ast.Let
	}
	p.next()
	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		dstart := p.tok.Span.Start
		binding := p.parseBindingTarget(ctx)
		var init ast.Expression
		if p.eat(token.ASSIGN) {
			init = p.parseAssign(ctx)
		} else if _, ok := binding.(*ast.BindingIdentifier); !ok {
			if !inFor || p.tok.Type != token.IN && !p.isContextual("of") {
				p.failf(p.tok.Span.Start, errMissingInit)
			}
		}
		decl.Declarators = append(decl.Declarators, finish(p, dstart, &ast.VariableDeclarator{Binding: binding, Init: init}))
		if !p.eat(token.COMMA) {
			break
		}
	}
	return finish(p, start, decl)
}

// parseSwitch parses a switch statement. The clauses before and after the
// default clause are kept apart.
func (p *Parser) parseSwitch(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	p.next()
	discriminant := p.parseCondition(ctx)
	p.expect(token.LBRACE)
	var pre, post []*ast.SwitchCase
	var def *ast.SwitchDefault
	var j jumps
	for p.tok.Type != token.RBRACE {
		clauseStart := p.tok.Span.Start
		if p.eat(token.DEFAULT) {
			if def != nil {
				p.failf(clauseStart, errMultipleDefaults)
			}
			p.expect(token.COLON)
			body, cj := p.parseCaseBody(ctx)
			def = finish(p, clauseStart, &ast.SwitchDefault{Consequent: body})
			j = j.concat(cj)
			continue
		}
		p.expect(token.CASE)
		test := p.parseExpression(ctx)
		p.expect(token.COLON)
		body, cj := p.parseCaseBody(ctx)
		c := finish(p, clauseStart, &ast.SwitchCase{Test: test, Consequent: body})
		if def == nil {
			pre = append(pre, c)
		} else {
			post = append(post, c)
		}
		j = j.concat(cj)
	}
	p.next()
	j = j.switchCase()
	if def == nil {
		return finish(p, start, &ast.SwitchStatement{Discriminant: discriminant, Cases: pre}), j
	}
	return finish(p, start, &ast.SwitchStatementWithDefault{
		Discriminant:     discriminant,
		PreDefaultCases:  pre,
		DefaultCase:      def,
		PostDefaultCases: post,
	}), j
}

func (p *Parser) parseCaseBody(ctx context) ([]ast.Statement, jumps) {
	var stmts []ast.Statement
	var j jumps
	for !p.match(token.CASE, token.DEFAULT, token.RBRACE, token.EOF) {
		s, sj := p.parseStatementListItem(ctx)
		stmts = append(stmts, s)
		j = j.concat(sj)
	}
	return stmts, j
}

// parseTry parses try/catch, try/finally and try/catch/finally.
func (p *Parser) parseTry(ctx context) (ast.Statement, jumps) {
	start := p.tok.Span.Start
	p.next()
	body, j := p.parseBlock(ctx)
	var catch *ast.CatchClause
	if p.tok.Type == token.CATCH {
		catchStart := p.tok.Span.Start
		p.next()
		p.expect(token.LPAREN)
		binding := p.parseBindingTarget(ctx)
		p.expect(token.RPAREN)
		catchBody, cj := p.parseBlock(ctx)
		catch = finish(p, catchStart, &ast.CatchClause{Binding: binding, Body: catchBody})
		j = j.concat(cj)
	}
	if p.eat(token.FINALLY) {
		finalizer, fj := p.parseBlock(ctx)
		j = j.concat(fj)
		return finish(p, start, &ast.TryFinallyStatement{Body: body, CatchClause: catch, Finalizer: finalizer}), j
	}
	if catch == nil {
		p.failf(p.tok.Span.Start, errNoCatchOrFinally)
	}
	return finish(p, start, &ast.TryCatchStatement{Body: body, CatchClause: catch}), j
}
