package parser

import (
	"math"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/numfmt"
	"github.com/kolkov/ujs/internal/token"
)

var binaryOperators = map[token.Token]ast.BinaryOperator{
	token.OR:         ast.OpLogicalOr,
	token.AND:        ast.OpLogicalAnd,
	token.BITOR:      ast.OpBitOr,
	token.BITXOR:     ast.OpBitXor,
	token.BITAND:     ast.OpBitAnd,
	token.EQ:         ast.OpEqual,
	token.NE:         ast.OpNotEqual,
	token.SEQ:        ast.OpStrictEqual,
	token.SNE:        ast.OpStrictNotEqual,
	token.LT:         ast.OpLessThan,
	token.LTE:        ast.OpLessOrEqual,
	token.GT:         ast.OpGreaterThan,
	token.GTE:        ast.OpGreaterOrEqual,
	token.IN:         ast.OpIn,
	token.INSTANCEOF: ast.OpInstanceof,
	token.SHL:        ast.OpShl,
	token.SAR:        ast.OpSar,
	token.SHR:        ast.OpShr,
	token.ADD:        ast.OpAdd,
	token.SUB:        ast.OpSub,
	token.MUL:        ast.OpMul,
	token.DIV:        ast.OpDiv,
	token.MOD:        ast.OpRem,
	token.EXP:        ast.OpExp,
}

var compoundOperators = map[token.Token]ast.CompoundAssignmentOperator{
	token.ADD_ASSIGN: ast.OpAssignAdd,
	token.SUB_ASSIGN: ast.OpAssignSub,
	token.MUL_ASSIGN: ast.OpAssignMul,
	token.DIV_ASSIGN: ast.OpAssignDiv,
	token.MOD_ASSIGN: ast.OpAssignRem,
	token.EXP_ASSIGN: ast.OpAssignExp,
	token.SHL_ASSIGN: ast.OpAssignShl,
	token.SAR_ASSIGN: ast.OpAssignSar,
	token.SHR_ASSIGN: ast.OpAssignShr,
	token.OR_ASSIGN:  ast.OpAssignBitOr,
	token.XOR_ASSIGN: ast.OpAssignBitXor,
	token.AND_ASSIGN: ast.OpAssignBitAnd,
}

var unaryOperators = map[token.Token]ast.UnaryOperator{
	token.ADD:    ast.OpPlus,
	token.SUB:    ast.OpMinus,
	token.NOT:    ast.OpNot,
	token.BITNOT: ast.OpBitNot,
	token.TYPEOF: ast.OpTypeof,
	token.VOID:   ast.OpVoid,
	token.DELETE: ast.OpDelete,
}

// -----------------------------------------------------------------------------
// Expression parsing (precedence climbing)
// -----------------------------------------------------------------------------

// parseExpression parses a comma-separated expression sequence.
func (p *Parser) parseExpression(ctx context) ast.Expression {
	start := p.tok.Span.Start
	expr := p.parseAssign(ctx)
	for p.eat(token.COMMA) {
		right := p.parseAssign(ctx)
		expr = finish(p, start, &ast.BinaryExpression{Left: expr, Operator: ast.OpComma, Right: right})
	}
	return expr
}

// parseAssign parses an AssignmentExpression, including arrow functions
// and yield.
func (p *Parser) parseAssign(ctx context) ast.Expression {
	start := p.tok.Span.Start
	if ctx.yield && p.isContextual("yield") {
		return p.parseYield(ctx)
	}
	if p.tok.Type == token.IDENT {
		if next := p.peek(); next.Type == token.ARROW && !next.NewlineBefore {
			param := p.parseBindingIdentifier(ctx)
			params := finish(p, start, &ast.FormalParameters{Items: []ast.Parameter{param}})
			return p.parseArrowBody(ctx, start, false, params)
		}
	}
	switch {
	case p.isContextual("async"):
		next := p.peek()
		if next.NewlineBefore {
			break
		}
		switch next.Type {
		case token.IDENT:
			p.next()
			actx := ctx
			actx.await = true
			param := p.parseBindingIdentifier(actx)
			if p.tok.Type != token.ARROW {
				p.unexpected()
			}
			params := finish(p, p.startOf(param), &ast.FormalParameters{Items: []ast.Parameter{param}})
			return p.parseArrowBody(ctx, start, true, params)
		case token.LPAREN:
			p.next()
			callee := finish(p, start, &ast.IdentifierExpression{Name: "async"})
			inner := ctx
			inner.noIn = false
			argsStart := p.tok.Span.Start
			args := p.parseArguments(inner)
			if p.tok.Type == token.ARROW && !p.tok.NewlineBefore {
				params := finish(p, argsStart, p.argumentsToParams(args, start))
				return p.parseArrowBody(ctx, start, true, params)
			}
			call := finish(p, start, &ast.CallExpression{Callee: callee, Arguments: args})
			return p.continueAssign(ctx, start, call)
		}
	case p.tok.Type == token.LPAREN:
		group, params := p.parseParenthesized(ctx)
		if params != nil {
			return p.parseArrowBody(ctx, start, false, params)
		}
		return p.continueAssign(ctx, start, group)
	}
	return p.parseAssignTail(ctx, start, p.parseConditional(ctx))
}

// continueAssign finishes an AssignmentExpression whose leading primary
// or call expression has already been parsed.
func (p *Parser) continueAssign(ctx context, start token.Position, primary ast.Expression) ast.Expression {
	lhs := p.parseLHSTail(ctx, start, primary, true)
	expr := p.parseConditionalFrom(ctx, start, p.parsePostfix(start, lhs))
	return p.parseAssignTail(ctx, start, expr)
}

// parseAssignTail parses '=' or a compound assignment operator after the
// left-hand side expr, reinterpreting expr as a target.
func (p *Parser) parseAssignTail(ctx context, start token.Position, expr ast.Expression) ast.Expression {
	if p.tok.Type == token.ASSIGN {
		target := p.toTarget(expr, start)
		p.next()
		value := p.parseAssign(ctx)
		return finish(p, start, &ast.AssignmentExpression{Binding: target, Expression: value})
	}
	if op, ok := compoundOperators[p.tok.Type]; ok {
		target := p.toSimpleTarget(expr, start)
		p.next()
		value := p.parseAssign(ctx)
		return finish(p, start, &ast.CompoundAssignmentExpression{Binding: target, Operator: op, Expression: value})
	}
	return expr
}

// parseArrowBody parses '=>' and the body of an arrow function whose
// parameters have been parsed.
func (p *Parser) parseArrowBody(ctx context, start token.Position, isAsync bool, params *ast.FormalParameters) ast.Expression {
	if p.tok.NewlineBefore {
		p.failf(p.tok.Span.Start, errNewlineArrow)
	}
	p.expect(token.ARROW)
	inner := ctx
	inner.yield = false
	inner.await = isAsync
	var body ast.ArrowBody
	if p.tok.Type == token.LBRACE {
		inner.noIn = false
		body = p.parseFunctionBody(inner)
	} else {
		body = p.parseAssign(inner)
	}
	return finish(p, start, &ast.ArrowExpression{IsAsync: isAsync, Params: params, Body: body})
}

// parseYield parses a yield expression inside a generator.
func (p *Parser) parseYield(ctx context) ast.Expression {
	start := p.tok.Span.Start
	p.next()
	if p.tok.NewlineBefore {
		return finish(p, start, &ast.YieldExpression{})
	}
	if p.eat(token.MUL) {
		expr := p.parseAssign(ctx)
		return finish(p, start, &ast.YieldGeneratorExpression{Expression: expr})
	}
	if !p.startsExpression() {
		return finish(p, start, &ast.YieldExpression{})
	}
	expr := p.parseAssign(ctx)
	return finish(p, start, &ast.YieldExpression{Expression: expr})
}

// startsExpression reports whether the current token can begin an
// AssignmentExpression.
func (p *Parser) startsExpression() bool {
	switch p.tok.Type {
	case token.IDENT, token.NUMBER, token.STRING,
		token.LPAREN, token.LBRACK, token.LBRACE,
		token.ADD, token.SUB, token.NOT, token.BITNOT, token.INC, token.DEC,
		token.DIV, token.DIV_ASSIGN,
		token.THIS, token.NULL, token.TRUE, token.FALSE,
		token.FUNCTION, token.CLASS, token.NEW, token.SUPER,
		token.TYPEOF, token.VOID, token.DELETE:
		return true
	case token.TEMPLATE:
		return p.templateStart()
	}
	return false
}

// parseConditional parses a ConditionalExpression.
func (p *Parser) parseConditional(ctx context) ast.Expression {
	start := p.tok.Span.Start
	return p.parseConditionalFrom(ctx, start, p.parseUnary(ctx))
}

// parseConditionalFrom continues a ConditionalExpression whose first
// unary operand has been parsed.
func (p *Parser) parseConditionalFrom(ctx context, start token.Position, operand ast.Expression) ast.Expression {
	test := p.parseBinary(ctx, start, operand, ast.PrecLogicalOr)
	if !p.eat(token.QUESTION) {
		return test
	}
	inner := ctx
	inner.noIn = false
	consequent := p.parseAssign(inner)
	p.expect(token.COLON)
	alternate := p.parseAssign(ctx)
	return finish(p, start, &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate})
}

// binaryOperator returns the binary operator of the current token.
func (p *Parser) binaryOperator(ctx context) (ast.BinaryOperator, bool) {
	if p.tok.Type == token.IN && ctx.noIn {
		return 0, false
	}
	op, ok := binaryOperators[p.tok.Type]
	return op, ok
}

// parseBinary parses binary operators binding at least as tightly as
// minPrec, with left as the first operand.
func (p *Parser) parseBinary(ctx context, start token.Position, left ast.Expression, minPrec ast.Precedence) ast.Expression {
	for {
		op, ok := p.binaryOperator(ctx)
		if !ok || op.Precedence() < minPrec {
			return left
		}
		if op == ast.OpExp && p.isUnaryOperand(left) {
			p.failf(p.tok.Span.Start, errExponentOperand)
		}
		p.next()
		rightStart := p.tok.Span.Start
		right := p.parseUnary(ctx)
		for {
			next, ok := p.binaryOperator(ctx)
			if !ok || next.Precedence() < op.Precedence() ||
				next.Precedence() == op.Precedence() && !next.RightAssociative() {
				break
			}
			right = p.parseBinary(ctx, rightStart, right, next.Precedence())
		}
		left = finish(p, start, &ast.BinaryExpression{Left: left, Operator: op, Right: right})
	}
}

// isUnaryOperand reports whether expr may not be the base of '**'.
func (p *Parser) isUnaryOperand(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return !p.parenthesized[expr]
	}
	return false
}

// parseUnary parses prefix operators, await and update expressions.
func (p *Parser) parseUnary(ctx context) ast.Expression {
	start := p.tok.Span.Start
	if op, ok := unaryOperators[p.tok.Type]; ok {
		p.next()
		operand := p.parseUnary(ctx)
		return finish(p, start, &ast.UnaryExpression{Operator: op, Operand: operand})
	}
	switch {
	case p.match(token.INC, token.DEC):
		op := ast.OpIncrement
		if p.tok.Type == token.DEC {
			op = ast.OpDecrement
		}
		p.next()
		operandStart := p.tok.Span.Start
		target := p.toSimpleTarget(p.parseUnary(ctx), operandStart)
		return finish(p, start, &ast.UpdateExpression{IsPrefix: true, Operator: op, Operand: target})
	case ctx.await && p.isContextual("await"):
		p.next()
		operand := p.parseUnary(ctx)
		return finish(p, start, &ast.AwaitExpression{Expression: operand})
	}
	return p.parsePostfix(start, p.parseLHS(ctx))
}

// parsePostfix parses a postfix ++ or -- after expr. No line terminator
// may precede the operator.
func (p *Parser) parsePostfix(start token.Position, expr ast.Expression) ast.Expression {
	if p.tok.NewlineBefore || !p.match(token.INC, token.DEC) {
		return expr
	}
	op := ast.OpIncrement
	if p.tok.Type == token.DEC {
		op = ast.OpDecrement
	}
	target := p.toSimpleTarget(expr, start)
	p.next()
	return finish(p, start, &ast.UpdateExpression{Operator: op, Operand: target})
}

// -----------------------------------------------------------------------------
// Left-hand side expressions
// -----------------------------------------------------------------------------

// parseLHS parses a LeftHandSideExpression: a primary, super or new
// expression followed by member accesses, calls and tagged templates.
func (p *Parser) parseLHS(ctx context) ast.Expression {
	start := p.tok.Span.Start
	var expr ast.ExpressionSuper
	switch p.tok.Type {
	case token.SUPER:
		expr = p.parseSuper(ctx, true)
	case token.NEW:
		expr = p.parseNew(ctx)
	default:
		expr = p.parsePrimary(ctx)
	}
	return p.parseLHSTail(ctx, start, expr, true)
}

// parseLHSTail parses member accesses, calls (if allowCall) and tagged
// templates applied to expr.
func (p *Parser) parseLHSTail(ctx context, start token.Position, expr ast.ExpressionSuper, allowCall bool) ast.Expression {
	inner := ctx
	inner.noIn = false
	for {
		switch {
		case p.tok.Type == token.DOT:
			p.next()
			name := p.parseIdentifierName()
			expr = finish(p, start, &ast.StaticMemberExpression{Object: expr, Property: name})
		case p.tok.Type == token.LBRACK:
			p.next()
			prop := p.parseExpression(inner)
			p.expect(token.RBRACK)
			expr = finish(p, start, &ast.ComputedMemberExpression{Object: expr, Expression: prop})
		case p.tok.Type == token.LPAREN && allowCall:
			args := p.parseArguments(inner)
			expr = finish(p, start, &ast.CallExpression{Callee: expr, Arguments: args})
		case p.templateStart():
			tag, ok := expr.(ast.Expression)
			if !ok {
				p.failf(start, errUnexpectedSuper)
			}
			expr = p.parseTemplate(inner, start, tag)
		default:
			e, ok := expr.(ast.Expression)
			if !ok {
				p.failf(start, errUnexpectedSuper)
			}
			return e
		}
	}
}

// parseSuper parses 'super', which must be followed by a call (when
// allowCall is set) or a member access.
func (p *Parser) parseSuper(ctx context, allowCall bool) *ast.Super {
	start := p.tok.Span.Start
	p.next()
	switch {
	case p.tok.Type == token.LPAREN && allowCall:
		if !ctx.superCall {
			p.early.Add(start, errSuperCall)
		}
	case p.match(token.DOT, token.LBRACK):
		if !ctx.superProp {
			p.early.Add(start, errSuperProperty)
		}
	default:
		p.failf(start, errUnexpectedSuper)
	}
	return finish(p, start, &ast.Super{})
}

// parseNew parses a new expression or new.target.
func (p *Parser) parseNew(ctx context) ast.Expression {
	start := p.tok.Span.Start
	p.next()
	if p.eat(token.DOT) {
		if !p.isContextual("target") {
			p.unexpected()
		}
		p.next()
		if !ctx.newTarget {
			p.early.Add(start, errNewTarget)
		}
		return finish(p, start, &ast.NewTargetExpression{})
	}
	calleeStart := p.tok.Span.Start
	var callee ast.ExpressionSuper
	switch p.tok.Type {
	case token.NEW:
		callee = p.parseNew(ctx)
	case token.SUPER:
		callee = p.parseSuper(ctx, false)
	default:
		callee = p.parsePrimary(ctx)
	}
	target := p.parseLHSTail(ctx, calleeStart, callee, false)
	var args []ast.SpreadElementExpression
	if p.tok.Type == token.LPAREN {
		inner := ctx
		inner.noIn = false
		args = p.parseArguments(inner)
	}
	return finish(p, start, &ast.NewExpression{Callee: target, Arguments: args})
}

// parseArguments parses a parenthesized argument list. A trailing comma is
// allowed.
func (p *Parser) parseArguments(ctx context) []ast.SpreadElementExpression {
	p.expect(token.LPAREN)
	var args []ast.SpreadElementExpression
	for p.tok.Type != token.RPAREN {
		start := p.tok.Span.Start
		if p.eat(token.ELLIPSIS) {
			expr := p.parseAssign(ctx)
			args = append(args, finish(p, start, &ast.SpreadElement{Expression: expr}))
		} else {
			args = append(args, p.parseAssign(ctx))
		}
		if p.tok.Type != token.RPAREN {
			p.expect(token.COMMA)
		}
	}
	p.next()
	return args
}

// parseIdentifierName parses an IdentifierName, which includes reserved
// words.
func (p *Parser) parseIdentifierName() string {
	if !p.tok.Type.IdentifierName() {
		p.unexpected()
	}
	name := p.tok.Value
	p.next()
	return name
}

// -----------------------------------------------------------------------------
// Primary expressions
// -----------------------------------------------------------------------------

// parsePrimary parses a PrimaryExpression.
func (p *Parser) parsePrimary(ctx context) ast.Expression {
	start := p.tok.Span.Start
	tok := p.tok
	switch tok.Type {
	case token.IDENT:
		if p.isContextual("async") {
			if next := p.peek(); next.Type == token.FUNCTION && !next.NewlineBefore {
				p.next()
				return p.parseFunctionExpression(ctx, start, true)
			}
		}
		if ctx.yield && tok.Value == "yield" || ctx.await && tok.Value == "await" {
			p.unexpected()
		}
		p.next()
		return finish(p, start, &ast.IdentifierExpression{Name: tok.Value})
	case token.THIS:
		p.next()
		return finish(p, start, &ast.ThisExpression{})
	case token.NULL:
		p.next()
		return finish(p, start, &ast.LiteralNullExpression{})
	case token.TRUE, token.FALSE:
		p.next()
		return finish(p, start, &ast.LiteralBooleanExpression{Value: tok.Type == token.TRUE})
	case token.NUMBER:
		p.checkOctal(ctx, tok)
		p.next()
		if math.IsInf(tok.Num, 1) {
			return finish(p, start, &ast.LiteralInfinityExpression{})
		}
		return finish(p, start, &ast.LiteralNumericExpression{Value: tok.Num})
	case token.STRING:
		p.checkOctal(ctx, tok)
		p.next()
		return finish(p, start, &ast.LiteralStringExpression{Value: tok.Value})
	case token.TEMPLATE:
		if p.templateStart() {
			inner := ctx
			inner.noIn = false
			return p.parseTemplate(inner, start, nil)
		}
	case token.DIV, token.DIV_ASSIGN:
		return p.parseRegexp()
	case token.LBRACK:
		return p.parseArrayLiteral(ctx)
	case token.LBRACE:
		return p.parseObjectLiteral(ctx)
	case token.LPAREN:
		expr, params := p.parseParenthesized(ctx)
		if params != nil {
			p.unexpected()
		}
		return expr
	case token.FUNCTION:
		return p.parseFunctionExpression(ctx, start, false)
	case token.CLASS:
		return p.parseClassExpression(ctx)
	}
	p.unexpected()
	return nil
}

// parseRegexp rescans the current '/' or '/=' token as a regular
// expression literal.
func (p *Parser) parseRegexp() ast.Expression {
	start := p.tok.Span.Start
	tok, err := p.lexer.RescanRegexp(p.tok)
	if err != nil {
		panic(bailout{err})
	}
	p.tok = tok
	lit := &ast.LiteralRegExpExpression{Pattern: tok.Value}
	for _, f := range tok.Flags {
		var flag *bool
		switch f {
		case 'g':
			flag = &lit.Global
		case 'i':
			flag = &lit.IgnoreCase
		case 'm':
			flag = &lit.MultiLine
		case 'y':
			flag = &lit.Sticky
		case 'u':
			flag = &lit.Unicode
		default:
			p.earlyf(start, errRegexpFlag, f)
			continue
		}
		if *flag {
			p.earlyf(start, errRegexpDupFlag, f)
		}
		*flag = true
	}
	p.next()
	return finish(p, start, lit)
}

// parseTemplate parses a template literal starting at the current token.
// tag is nil for an untagged template.
func (p *Parser) parseTemplate(ctx context, start token.Position, tag ast.Expression) ast.Expression {
	var elements []ast.TemplatePart
	for {
		tok := p.tok
		if tok.BadEscape && tag == nil {
			p.early.Add(tok.Span.Start, errTemplateEscape)
		}
		p.next()
		elements = append(elements, finish(p, tok.Span.Start, &ast.TemplateElement{RawValue: tok.Raw}))
		if tok.Tail {
			break
		}
		elements = append(elements, p.parseExpression(ctx))
		if p.tok.Type != token.TEMPLATE || p.templateStart() {
			p.unexpected()
		}
	}
	return finish(p, start, &ast.TemplateExpression{Tag: tag, Elements: elements})
}

// parseArrayLiteral parses an array literal. Elisions become nil elements.
func (p *Parser) parseArrayLiteral(ctx context) ast.Expression {
	start := p.tok.Span.Start
	p.next()
	inner := ctx
	inner.noIn = false
	arr := &ast.ArrayExpression{}
	for p.tok.Type != token.RBRACK {
		if p.eat(token.COMMA) {
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		elemStart := p.tok.Span.Start
		var el ast.SpreadElementExpression
		if p.eat(token.ELLIPSIS) {
			expr := p.parseAssign(inner)
			el = finish(p, elemStart, &ast.SpreadElement{Expression: expr})
		} else {
			el = p.parseAssign(inner)
		}
		arr.Elements = append(arr.Elements, el)
		if p.tok.Type != token.RBRACK {
			p.expect(token.COMMA)
			if _, ok := el.(*ast.SpreadElement); ok {
				p.restComma[arr] = true
			}
		}
	}
	p.next()
	return finish(p, start, arr)
}

// parseObjectLiteral parses an object literal.
func (p *Parser) parseObjectLiteral(ctx context) ast.Expression {
	start := p.tok.Span.Start
	p.next()
	inner := ctx
	inner.noIn = false
	obj := &ast.ObjectExpression{}
	for p.tok.Type != token.RBRACE {
		obj.Properties = append(obj.Properties, p.parsePropertyDefinition(inner))
		if p.tok.Type != token.RBRACE {
			p.expect(token.COMMA)
		}
	}
	p.next()
	return finish(p, start, obj)
}

// parsePropertyDefinition parses a member of an object literal. The
// shorthand initializer form {a = 1} is only valid as a pattern; it is
// recorded in coverInits until it is reinterpreted.
func (p *Parser) parsePropertyDefinition(ctx context) ast.ObjectProperty {
	start := p.tok.Span.Start
	m, name, nameTok := p.parseMethodDefinition(ctx, start, methodOptions{})
	if m != nil {
		return m
	}
	switch {
	case p.eat(token.COLON):
		value := p.parseAssign(ctx)
		return finish(p, start, &ast.DataProperty{Name: name, Expression: value})
	case nameTok.Type != token.IDENT:
		p.unexpected()
	case p.tok.Type == token.ASSIGN:
		target := spanned(p, nameTok.Span, &ast.AssignmentTargetIdentifier{Name: nameTok.Value})
		p.next()
		init := p.parseAssign(ctx)
		assign := finish(p, start, &ast.AssignmentExpression{Binding: target, Expression: init})
		prop := finish(p, start, &ast.DataProperty{Name: name, Expression: assign})
		p.coverInits[prop] = start
		return prop
	}
	p.checkIdentifierReference(ctx, nameTok)
	id := spanned(p, nameTok.Span, &ast.IdentifierExpression{Name: nameTok.Value})
	return finish(p, start, &ast.ShorthandProperty{Name: id})
}

// parsePropertyName parses a literal or computed property name and returns
// the token it started with.
func (p *Parser) parsePropertyName(ctx context) (ast.PropertyName, lexer.Token) {
	start := p.tok.Span.Start
	tok := p.tok
	switch {
	case tok.Type == token.STRING:
		p.checkOctal(ctx, tok)
		p.next()
		return finish(p, start, &ast.StaticPropertyName{Value: tok.Value}), tok
	case tok.Type == token.NUMBER:
		p.checkOctal(ctx, tok)
		p.next()
		return finish(p, start, &ast.StaticPropertyName{Value: numfmt.ToString(tok.Num)}), tok
	case tok.Type == token.LBRACK:
		p.next()
		inner := ctx
		inner.noIn = false
		expr := p.parseAssign(inner)
		p.expect(token.RBRACK)
		return finish(p, start, &ast.ComputedPropertyName{Expression: expr}), tok
	case tok.Type.IdentifierName():
		p.next()
		return finish(p, start, &ast.StaticPropertyName{Value: tok.Value}), tok
	}
	p.unexpected()
	return nil, tok
}

// checkIdentifierReference records the early errors of an identifier
// reference given by tok.
func (p *Parser) checkIdentifierReference(ctx context, tok lexer.Token) {
	switch {
	case ctx.yield && tok.Value == "yield":
		p.early = append(p.early, errorf(tok.Span.Start, errUnexpectedToken, "yield"))
	case ctx.await && tok.Value == "await":
		p.early = append(p.early, errorf(tok.Span.Start, errUnexpectedToken, "await"))
	}
}

// spanned records span as the location of n.
func spanned[T ast.Node](p *Parser, span token.Span, n T) T {
	if p.locs != nil {
		p.locs.Set(n, span)
	}
	return n
}

// parseParenthesized parses a parenthesized expression or, when the
// closing parenthesis is followed by '=>', an arrow parameter list.
// Exactly one of the results is non-nil.
func (p *Parser) parseParenthesized(ctx context) (ast.Expression, *ast.FormalParameters) {
	start := p.tok.Span.Start
	p.expect(token.LPAREN)
	inner := ctx
	inner.noIn = false
	var items []ast.Expression
	var rest ast.Binding
	trailing := false
	for p.tok.Type != token.RPAREN {
		if p.eat(token.ELLIPSIS) {
			rest = p.parseBindingTarget(inner)
			if p.tok.Type == token.ASSIGN {
				p.failf(p.tok.Span.Start, errRestInit)
			}
			break
		}
		items = append(items, p.parseAssign(inner))
		if p.tok.Type == token.RPAREN {
			break
		}
		p.expect(token.COMMA)
		trailing = p.tok.Type == token.RPAREN
	}
	p.expect(token.RPAREN)

	if p.tok.Type == token.ARROW {
		if p.tok.NewlineBefore {
			p.failf(p.tok.Span.Start, errNewlineArrow)
		}
		params := &ast.FormalParameters{Rest: rest}
		for _, item := range items {
			params.Items = append(params.Items, p.toParam(item, start))
		}
		return nil, finish(p, start, params)
	}
	if len(items) == 0 || rest != nil || trailing {
		p.fail(expectedError(p.tok.Span.Start, "'=>'", p.tokenDesc()))
	}
	expr := items[0]
	for _, item := range items[1:] {
		expr = finish(p, start, &ast.BinaryExpression{Left: expr, Operator: ast.OpComma, Right: item})
	}
	p.parenthesized[expr] = true
	return expr, nil
}
