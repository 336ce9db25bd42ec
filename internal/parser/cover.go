package parser

import (
	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// -----------------------------------------------------------------------------
// Binding patterns
// -----------------------------------------------------------------------------

// parseBindingIdentifier parses an identifier that introduces a binding.
func (p *Parser) parseBindingIdentifier(ctx context) *ast.BindingIdentifier {
	if p.tok.Type != token.IDENT {
		p.unexpected()
	}
	tok := p.tok
	p.next()
	return p.bindingIdentifier(ctx, tok)
}

// bindingIdentifier makes a BindingIdentifier from an already consumed
// identifier token.
func (p *Parser) bindingIdentifier(ctx context, tok lexer.Token) *ast.BindingIdentifier {
	switch {
	case ctx.yield && tok.Value == "yield":
		p.early.Add(tok.Span.Start, errYieldBinding)
	case ctx.await && tok.Value == "await":
		p.early.Add(tok.Span.Start, errAwaitBinding)
	}
	return spanned(p, tok.Span, &ast.BindingIdentifier{Name: tok.Value})
}

// parseBindingTarget parses an identifier, array or object binding.
func (p *Parser) parseBindingTarget(ctx context) ast.Binding {
	switch p.tok.Type {
	case token.LBRACK:
		return p.parseArrayBinding(ctx)
	case token.LBRACE:
		return p.parseObjectBinding(ctx)
	}
	return p.parseBindingIdentifier(ctx)
}

// parseBindingElement parses a binding target with an optional default.
func (p *Parser) parseBindingElement(ctx context) ast.Parameter {
	start := p.tok.Span.Start
	target := p.parseBindingTarget(ctx)
	if !p.eat(token.ASSIGN) {
		return target
	}
	inner := ctx
	inner.noIn = false
	init := p.parseAssign(inner)
	return finish(p, start, &ast.BindingWithDefault{Binding: target, Init: init})
}

func (p *Parser) parseArrayBinding(ctx context) *ast.ArrayBinding {
	start := p.tok.Span.Start
	p.next()
	b := &ast.ArrayBinding{}
	for p.tok.Type != token.RBRACK {
		if p.eat(token.COMMA) {
			b.Elements = append(b.Elements, nil)
			continue
		}
		if p.eat(token.ELLIPSIS) {
			b.Rest = p.parseBindingTarget(ctx)
			if p.tok.Type != token.RBRACK {
				p.failf(p.tok.Span.Start, errRestLast)
			}
			break
		}
		b.Elements = append(b.Elements, p.parseBindingElement(ctx))
		if p.tok.Type != token.RBRACK {
			p.expect(token.COMMA)
		}
	}
	p.expect(token.RBRACK)
	return finish(p, start, b)
}

func (p *Parser) parseObjectBinding(ctx context) *ast.ObjectBinding {
	start := p.tok.Span.Start
	p.next()
	b := &ast.ObjectBinding{}
	for p.tok.Type != token.RBRACE {
		propStart := p.tok.Span.Start
		name, nameTok := p.parsePropertyName(ctx)
		var prop ast.BindingProperty
		if p.eat(token.COLON) {
			elem := p.parseBindingElement(ctx)
			prop = finish(p, propStart, &ast.BindingPropertyProperty{Name: name, Binding: elem})
		} else {
			if nameTok.Type != token.IDENT {
				p.unexpected()
			}
			id := p.bindingIdentifier(ctx, nameTok)
			var init ast.Expression
			if p.eat(token.ASSIGN) {
				inner := ctx
				inner.noIn = false
				init = p.parseAssign(inner)
			}
			prop = finish(p, propStart, &ast.BindingPropertyIdentifier{Binding: id, Init: init})
		}
		b.Properties = append(b.Properties, prop)
		if p.tok.Type != token.RBRACE {
			p.expect(token.COMMA)
		}
	}
	p.next()
	return finish(p, start, b)
}

// -----------------------------------------------------------------------------
// Cover grammar: reinterpreting expressions
// -----------------------------------------------------------------------------

// toSimpleTarget reinterprets expr as the operand of a compound assignment
// or an update expression. pos is used for error reporting.
func (p *Parser) toSimpleTarget(expr ast.Expression, pos token.Position) ast.SimpleAssignmentTarget {
	switch e := expr.(type) {
	case *ast.IdentifierExpression:
		return relocate(p, e, &ast.AssignmentTargetIdentifier{Name: e.Name})
	case *ast.StaticMemberExpression:
		return relocate(p, e, &ast.StaticMemberAssignmentTarget{Object: e.Object, Property: e.Property})
	case *ast.ComputedMemberExpression:
		return relocate(p, e, &ast.ComputedMemberAssignmentTarget{Object: e.Object, Expression: e.Expression})
	}
	p.failf(pos, errInvalidTarget)
	return nil
}

// toTarget reinterprets expr, parsed as an expression, as the left side of
// '=' or of a for-in/of head.
func (p *Parser) toTarget(expr ast.Expression, pos token.Position) ast.AssignmentTarget {
	switch e := expr.(type) {
	case *ast.IdentifierExpression, *ast.StaticMemberExpression, *ast.ComputedMemberExpression:
		return p.toSimpleTarget(e, pos)
	case *ast.ArrayExpression:
		if p.parenthesized[e] {
			p.failf(pos, errParenPattern)
		}
		t := &ast.ArrayAssignmentTarget{}
		for i, el := range e.Elements {
			switch el := el.(type) {
			case nil:
				t.Elements = append(t.Elements, nil)
			case *ast.SpreadElement:
				if i != len(e.Elements)-1 || p.restComma[e] {
					p.failf(pos, errRestLast)
				}
				t.Rest = p.toTarget(el.Expression, pos)
			case ast.Expression:
				t.Elements = append(t.Elements, p.toTargetElement(el, pos))
			}
		}
		return relocate(p, e, t)
	case *ast.ObjectExpression:
		if p.parenthesized[e] {
			p.failf(pos, errParenPattern)
		}
		t := &ast.ObjectAssignmentTarget{}
		for _, prop := range e.Properties {
			t.Properties = append(t.Properties, p.toTargetProperty(prop, pos))
		}
		return relocate(p, e, t)
	}
	p.failf(pos, errInvalidTarget)
	return nil
}

func (p *Parser) toTargetElement(expr ast.Expression, pos token.Position) ast.AssignmentTargetElement {
	if a, ok := expr.(*ast.AssignmentExpression); ok && !p.parenthesized[a] {
		return relocate(p, a, &ast.AssignmentTargetWithDefault{Binding: a.Binding, Init: a.Expression})
	}
	return p.toTarget(expr, pos)
}

func (p *Parser) toTargetProperty(prop ast.ObjectProperty, pos token.Position) ast.AssignmentTargetProperty {
	switch prop := prop.(type) {
	case *ast.ShorthandProperty:
		id := relocate(p, prop.Name, &ast.AssignmentTargetIdentifier{Name: prop.Name.Name})
		return relocate(p, prop, &ast.AssignmentTargetPropertyIdentifier{Binding: id})
	case *ast.DataProperty:
		if _, ok := p.coverInits[prop]; ok {
			delete(p.coverInits, prop)
			a := prop.Expression.(*ast.AssignmentExpression)
			id := a.Binding.(*ast.AssignmentTargetIdentifier)
			return relocate(p, prop, &ast.AssignmentTargetPropertyIdentifier{Binding: id, Init: a.Expression})
		}
		elem := p.toTargetElement(prop.Expression, pos)
		return relocate(p, prop, &ast.AssignmentTargetPropertyProperty{Name: prop.Name, Binding: elem})
	}
	p.failf(pos, errInvalidTarget)
	return nil
}

// toParam reinterprets an expression as an arrow function parameter.
func (p *Parser) toParam(expr ast.Expression, pos token.Position) ast.Parameter {
	if a, ok := expr.(*ast.AssignmentExpression); ok && !p.parenthesized[a] {
		b := p.targetToBinding(a.Binding, pos)
		return relocate(p, a, &ast.BindingWithDefault{Binding: b, Init: a.Expression})
	}
	return p.toBinding(expr, pos)
}

// toBinding reinterprets an expression as a binding pattern.
func (p *Parser) toBinding(expr ast.Expression, pos token.Position) ast.Binding {
	if p.parenthesized[expr] {
		p.failf(pos, errInvalidArrowParam)
	}
	switch e := expr.(type) {
	case *ast.IdentifierExpression:
		return relocate(p, e, &ast.BindingIdentifier{Name: e.Name})
	case *ast.ArrayExpression:
		b := &ast.ArrayBinding{}
		for i, el := range e.Elements {
			switch el := el.(type) {
			case nil:
				b.Elements = append(b.Elements, nil)
			case *ast.SpreadElement:
				if i != len(e.Elements)-1 || p.restComma[e] {
					p.failf(pos, errRestLast)
				}
				b.Rest = p.toBinding(el.Expression, pos)
			case ast.Expression:
				b.Elements = append(b.Elements, p.toParam(el, pos))
			}
		}
		return relocate(p, e, b)
	case *ast.ObjectExpression:
		b := &ast.ObjectBinding{}
		for _, prop := range e.Properties {
			b.Properties = append(b.Properties, p.toBindingProperty(prop, pos))
		}
		return relocate(p, e, b)
	}
	p.failf(pos, errInvalidArrowParam)
	return nil
}

func (p *Parser) toBindingProperty(prop ast.ObjectProperty, pos token.Position) ast.BindingProperty {
	switch prop := prop.(type) {
	case *ast.ShorthandProperty:
		id := relocate(p, prop.Name, &ast.BindingIdentifier{Name: prop.Name.Name})
		return relocate(p, prop, &ast.BindingPropertyIdentifier{Binding: id})
	case *ast.DataProperty:
		if _, ok := p.coverInits[prop]; ok {
			delete(p.coverInits, prop)
			a := prop.Expression.(*ast.AssignmentExpression)
			t := a.Binding.(*ast.AssignmentTargetIdentifier)
			id := relocate(p, t, &ast.BindingIdentifier{Name: t.Name})
			return relocate(p, prop, &ast.BindingPropertyIdentifier{Binding: id, Init: a.Expression})
		}
		elem := p.toParam(prop.Expression, pos)
		return relocate(p, prop, &ast.BindingPropertyProperty{Name: prop.Name, Binding: elem})
	}
	p.failf(pos, errInvalidArrowParam)
	return nil
}

// targetToBinding converts an assignment pattern, already reinterpreted by
// toTarget, into a binding pattern.
func (p *Parser) targetToBinding(t ast.AssignmentTarget, pos token.Position) ast.Binding {
	if p.parenthesized[t] {
		p.failf(pos, errInvalidArrowParam)
	}
	switch t := t.(type) {
	case *ast.AssignmentTargetIdentifier:
		return relocate(p, t, &ast.BindingIdentifier{Name: t.Name})
	case *ast.ArrayAssignmentTarget:
		b := &ast.ArrayBinding{}
		for _, el := range t.Elements {
			switch el := el.(type) {
			case nil:
				b.Elements = append(b.Elements, nil)
			case *ast.AssignmentTargetWithDefault:
				target := p.targetToBinding(el.Binding, pos)
				b.Elements = append(b.Elements, relocate(p, el, &ast.BindingWithDefault{Binding: target, Init: el.Init}))
			case ast.AssignmentTarget:
				b.Elements = append(b.Elements, p.targetToBinding(el, pos))
			}
		}
		if t.Rest != nil {
			b.Rest = p.targetToBinding(t.Rest, pos)
		}
		return relocate(p, t, b)
	case *ast.ObjectAssignmentTarget:
		b := &ast.ObjectBinding{}
		for _, prop := range t.Properties {
			switch prop := prop.(type) {
			case *ast.AssignmentTargetPropertyIdentifier:
				id := relocate(p, prop.Binding, &ast.BindingIdentifier{Name: prop.Binding.Name})
				b.Properties = append(b.Properties, relocate(p, prop, &ast.BindingPropertyIdentifier{Binding: id, Init: prop.Init}))
			case *ast.AssignmentTargetPropertyProperty:
				var elem ast.Parameter
				if d, ok := prop.Binding.(*ast.AssignmentTargetWithDefault); ok {
					target := p.targetToBinding(d.Binding, pos)
					elem = relocate(p, d, &ast.BindingWithDefault{Binding: target, Init: d.Init})
				} else {
					elem = p.targetToBinding(prop.Binding.(ast.AssignmentTarget), pos)
				}
				b.Properties = append(b.Properties, relocate(p, prop, &ast.BindingPropertyProperty{Name: prop.Name, Binding: elem}))
			}
		}
		return relocate(p, t, b)
	}
	p.failf(pos, errInvalidArrowParam)
	return nil
}

// argumentsToParams reinterprets the arguments of async(...) as the
// parameters of an async arrow function.
func (p *Parser) argumentsToParams(args []ast.SpreadElementExpression, pos token.Position) *ast.FormalParameters {
	params := &ast.FormalParameters{}
	for i, arg := range args {
		if s, ok := arg.(*ast.SpreadElement); ok {
			if i != len(args)-1 {
				p.failf(pos, errRestLast)
			}
			params.Rest = p.toBinding(s.Expression, pos)
			break
		}
		params.Items = append(params.Items, p.toParam(arg.(ast.Expression), pos))
	}
	return params
}
