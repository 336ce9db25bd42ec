package codegen

import (
	"fmt"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/numfmt"
)

// precedence returns the binding strength of e as written. Member
// accesses, calls and tagged templates form chains that take the
// precedence of the call inside them, if any.
func precedence(e ast.Node) ast.Precedence {
	switch e := e.(type) {
	case *ast.ArrowExpression, *ast.AssignmentExpression, *ast.CompoundAssignmentExpression,
		*ast.YieldExpression, *ast.YieldGeneratorExpression:
		return ast.PrecAssignment
	case *ast.ConditionalExpression:
		return ast.PrecConditional
	case *ast.BinaryExpression:
		return e.Operator.Precedence()
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return ast.PrecPrefix
	case *ast.UpdateExpression:
		if e.IsPrefix {
			return ast.PrecPrefix
		}
		return ast.PrecPostfix
	case *ast.CallExpression:
		return ast.PrecCall
	case *ast.NewExpression:
		if len(e.Arguments) == 0 {
			return ast.PrecNew
		}
		return ast.PrecMember
	case *ast.StaticMemberExpression:
		return chainPrecedence(e.Object)
	case *ast.ComputedMemberExpression:
		return chainPrecedence(e.Object)
	case *ast.TemplateExpression:
		if e.Tag != nil {
			return chainPrecedence(e.Tag)
		}
	}
	return ast.PrecPrimary
}

func chainPrecedence(object ast.Node) ast.Precedence {
	if precedence(object) == ast.PrecCall {
		return ast.PrecCall
	}
	return ast.PrecMember
}

// expr returns the rep of e, parenthesized if e binds more loosely than
// atLeast.
func expr(e ast.Expression, atLeast ast.Precedence) *rep {
	r := exprRep(e)
	if precedence(e) < atLeast {
		return paren(r)
	}
	return r
}

// object returns the rep of the object of a member access or the callee
// of a call.
func object(e ast.ExpressionSuper) *rep {
	if _, ok := e.(*ast.Super); ok {
		return t("super")
	}
	return expr(e.(ast.Expression), ast.PrecCall)
}

func isLet(e ast.ExpressionSuper) bool {
	id, ok := e.(*ast.IdentifierExpression)
	return ok && id.Name == "let"
}

func exprRep(e ast.Expression) *rep {
	switch e := e.(type) {
	// Literals
	case *ast.LiteralBooleanExpression:
		if e.Value {
			return t("true")
		}
		return t("false")
	case *ast.LiteralInfinityExpression:
		return number("2e308")
	case *ast.LiteralNullExpression:
		return t("null")
	case *ast.LiteralNumericExpression:
		return number(numfmt.Format(e.Value))
	case *ast.LiteralRegExpExpression:
		return regexp(regExpLiteral(e))
	case *ast.LiteralStringExpression:
		return t(quoteString(e.Value))

	// Primary expressions
	case *ast.IdentifierExpression:
		r := t(e.Name)
		if e.Name == "let" {
			r.flags = startsWithLet
		}
		return r
	case *ast.ThisExpression:
		return t("this")
	case *ast.NewTargetExpression:
		return seq(t("new"), t("."), t("target"))
	case *ast.ArrayExpression:
		items := make([]*rep, len(e.Elements))
		for i, el := range e.Elements {
			if el != nil {
				items[i] = spreadOrExpr(el)
			}
		}
		return bracket(withHoles(items, nil))
	case *ast.ObjectExpression:
		items := make([]*rep, len(e.Properties))
		for i, p := range e.Properties {
			items[i] = property(p)
		}
		return brace(commaSep(items))
	case *ast.TemplateExpression:
		return template(e)
	case *ast.ClassExpression:
		return class(e.Name, e.Super, e.Elements).with(startsWithFunctionOrClass)
	case *ast.FunctionExpression:
		return function(e.IsAsync, e.IsGenerator, e.Name, e.Params, e.Body).with(startsWithFunctionOrClass)
	case *ast.ArrowExpression:
		return arrow(e)

	// Operators
	case *ast.AssignmentExpression:
		return seq(target(e.Binding), space, t("="), space, expr(e.Expression, ast.PrecAssignment))
	case *ast.CompoundAssignmentExpression:
		return seq(target(e.Binding), space, t(e.Operator.String()), space, expr(e.Expression, ast.PrecAssignment))
	case *ast.BinaryExpression:
		return binary(e)
	case *ast.ConditionalExpression:
		return seq(
			expr(e.Test, ast.PrecLogicalOr), space, t("?"), space,
			expr(e.Consequent, ast.PrecAssignment), space, t(":"), space,
			expr(e.Alternate, ast.PrecAssignment),
		)
	case *ast.UnaryExpression:
		return seq(t(e.Operator.String()), expr(e.Operand, ast.PrecPrefix))
	case *ast.UpdateExpression:
		if e.IsPrefix {
			return seq(t(e.Operator.String()), target(e.Operand))
		}
		return seq(target(e.Operand), t(e.Operator.String()))
	case *ast.YieldExpression:
		if e.Expression == nil {
			return t("yield")
		}
		return seq(t("yield"), space, expr(e.Expression, ast.PrecAssignment))
	case *ast.YieldGeneratorExpression:
		return seq(t("yield"), t("*"), space, expr(e.Expression, ast.PrecAssignment))
	case *ast.AwaitExpression:
		return seq(t("await"), space, expr(e.Expression, ast.PrecPrefix))

	// Calls and member access
	case *ast.CallExpression:
		return seq(object(e.Callee), arguments(e.Arguments))
	case *ast.NewExpression:
		least := ast.PrecNew
		if len(e.Arguments) > 0 {
			least = ast.PrecMember
		}
		callee := exprRep(e.Callee)
		if p := precedence(e.Callee); p < least || p == ast.PrecCall {
			callee = paren(callee)
		}
		if len(e.Arguments) == 0 {
			return seq(t("new"), space, callee)
		}
		return seq(t("new"), space, callee, arguments(e.Arguments))
	case *ast.StaticMemberExpression:
		return seq(object(e.Object), t("."), t(e.Property))
	case *ast.ComputedMemberExpression:
		r := seq(object(e.Object), bracket(expr(e.Expression, ast.PrecSequence)))
		if isLet(e.Object) {
			r.flags |= startsWithLetSquareBracket
		}
		return r
	}
	panic(fmt.Sprintf("codegen: unexpected expression %T", e))
}

func binary(e *ast.BinaryExpression) *rep {
	prec := e.Operator.Precedence()
	var left, right *rep
	if e.Operator.RightAssociative() {
		left = expr(e.Left, prec+1)
		switch e.Left.(type) {
		case *ast.UnaryExpression, *ast.AwaitExpression:
			// a unary operand of ** must be parenthesized
			left = paren(left)
		}
		right = expr(e.Right, prec)
	} else {
		left = expr(e.Left, prec)
		right = expr(e.Right, prec+1)
	}
	if e.Operator == ast.OpComma {
		return seq(left, t(","), space, right)
	}
	r := seq(left, space, t(e.Operator.String()), space, right)
	if e.Operator == ast.OpIn {
		return containsIn(r)
	}
	return r
}

func arguments(args []ast.SpreadElementExpression) *rep {
	items := make([]*rep, len(args))
	for i, a := range args {
		items[i] = spreadOrExpr(a)
	}
	return paren(commaSep(items))
}

func spreadOrExpr(e ast.SpreadElementExpression) *rep {
	if s, ok := e.(*ast.SpreadElement); ok {
		return spread(s)
	}
	return expr(e.(ast.Expression), ast.PrecAssignment)
}

func spread(s *ast.SpreadElement) *rep {
	return seq(t("..."), expr(s.Expression, ast.PrecAssignment))
}

// withHoles separates the items of an array literal or pattern by commas.
// A nil item is a hole, and a hole at the end needs one more comma.
func withHoles(items []*rep, rest *rep) *rep {
	if rest != nil {
		items = append(items, rest)
	} else if n := len(items); n > 0 && items[n-1] == nil {
		items = append(items, empty)
	}
	for i, it := range items {
		if it == nil {
			items[i] = empty
		}
	}
	return commaSep(items)
}

func template(e *ast.TemplateExpression) *rep {
	var items []*rep
	if e.Tag != nil {
		items = append(items, expr(e.Tag, ast.PrecCall))
	}
	text := "`"
	for _, part := range e.Elements {
		switch part := part.(type) {
		case *ast.TemplateElement:
			text += part.RawValue
		case ast.Expression:
			items = append(items, t(text+"${"), expr(part, ast.PrecSequence))
			text = "}"
		}
	}
	return seq(append(items, t(text+"`"))...)
}

func arrow(e *ast.ArrowExpression) *rep {
	var ps *rep
	if len(e.Params.Items) == 1 && e.Params.Rest == nil {
		if id, ok := e.Params.Items[0].(*ast.BindingIdentifier); ok {
			ps = t(id.Name)
		}
	}
	if ps == nil {
		ps = params(e.Params)
	}
	var body *rep
	switch b := e.Body.(type) {
	case *ast.FunctionBody:
		body = functionBody(b)
	case ast.Expression:
		body = expr(b, ast.PrecAssignment)
		if body.has(startsWithCurly) {
			body = paren(body)
		}
	}
	r := seq(ps, space, t("=>"), space, body)
	if e.IsAsync {
		return seq(t("async"), space, r)
	}
	return r
}

// function returns the rep shared by function declarations and
// expressions. The name of an anonymous default export is omitted.
func function(async, generator bool, name *ast.BindingIdentifier, ps *ast.FormalParameters, body *ast.FunctionBody) *rep {
	var items []*rep
	if async {
		items = append(items, t("async"))
	}
	items = append(items, t("function"))
	if generator {
		items = append(items, t("*"))
	}
	if name != nil && name.Name != defaultName {
		items = append(items, space, t(name.Name))
	}
	items = append(items, params(ps), space, functionBody(body))
	return seq(items...)
}

func class(name *ast.BindingIdentifier, super ast.Expression, elements []*ast.ClassElement) *rep {
	items := []*rep{t("class")}
	if name != nil && name.Name != defaultName {
		items = append(items, t(name.Name))
	}
	if super != nil {
		items = append(items, t("extends"), space, expr(super, ast.PrecNew))
	}
	members := make([]*rep, len(elements))
	for i, el := range elements {
		members[i] = classElement(el)
	}
	items = append(items, space, block(members))
	return seq(items...)
}

func classElement(el *ast.ClassElement) *rep {
	if el.IsStatic {
		return seq(t("static"), method(el.Method))
	}
	return method(el.Method)
}

func functionBody(b *ast.FunctionBody) *rep {
	return block(body(b.Directives, b.Statements))
}

func params(ps *ast.FormalParameters) *rep {
	items := make([]*rep, 0, len(ps.Items)+1)
	for _, p := range ps.Items {
		items = append(items, parameter(p))
	}
	if ps.Rest != nil {
		items = append(items, seq(t("..."), binding(ps.Rest)))
	}
	return paren(commaSep(items))
}

// Object literals

func property(p ast.ObjectProperty) *rep {
	switch p := p.(type) {
	case *ast.DataProperty:
		return seq(propertyName(p.Name), t(":"), space, expr(p.Expression, ast.PrecAssignment))
	case *ast.ShorthandProperty:
		return t(p.Name.Name)
	case ast.MethodDefinition:
		return method(p)
	}
	panic(fmt.Sprintf("codegen: unexpected property %T", p))
}

func method(m ast.MethodDefinition) *rep {
	switch m := m.(type) {
	case *ast.Method:
		var items []*rep
		if m.IsAsync {
			items = append(items, t("async"))
		}
		if m.IsGenerator {
			items = append(items, t("*"))
		}
		items = append(items, propertyName(m.Name), params(m.Params), space, functionBody(m.Body))
		return seq(items...)
	case *ast.Getter:
		return seq(t("get"), propertyName(m.Name), paren(), space, functionBody(m.Body))
	case *ast.Setter:
		return seq(t("set"), propertyName(m.Name), paren(parameter(m.Param)), space, functionBody(m.Body))
	}
	panic(fmt.Sprintf("codegen: unexpected method %T", m))
}

func propertyName(n ast.PropertyName) *rep {
	switch n := n.(type) {
	case *ast.StaticPropertyName:
		return staticName(n.Value)
	case *ast.ComputedPropertyName:
		return bracket(expr(n.Expression, ast.PrecAssignment))
	}
	panic(fmt.Sprintf("codegen: unexpected property name %T", n))
}

// Bindings and assignment targets

func parameter(p ast.Parameter) *rep {
	if d, ok := p.(*ast.BindingWithDefault); ok {
		return seq(binding(d.Binding), space, t("="), space, expr(d.Init, ast.PrecAssignment))
	}
	return binding(p.(ast.Binding))
}

func binding(b ast.Binding) *rep {
	switch b := b.(type) {
	case *ast.BindingIdentifier:
		return t(b.Name)
	case *ast.ArrayBinding:
		items := make([]*rep, len(b.Elements))
		for i, el := range b.Elements {
			if el != nil {
				items[i] = parameter(el)
			}
		}
		var rest *rep
		if b.Rest != nil {
			rest = seq(t("..."), binding(b.Rest))
		}
		return bracket(withHoles(items, rest))
	case *ast.ObjectBinding:
		items := make([]*rep, len(b.Properties))
		for i, p := range b.Properties {
			items[i] = bindingProperty(p)
		}
		return brace(commaSep(items))
	}
	panic(fmt.Sprintf("codegen: unexpected binding %T", b))
}

func bindingProperty(p ast.BindingProperty) *rep {
	switch p := p.(type) {
	case *ast.BindingPropertyIdentifier:
		if p.Init == nil {
			return t(p.Binding.Name)
		}
		return seq(t(p.Binding.Name), space, t("="), space, expr(p.Init, ast.PrecAssignment))
	case *ast.BindingPropertyProperty:
		return seq(propertyName(p.Name), t(":"), space, parameter(p.Binding))
	}
	panic(fmt.Sprintf("codegen: unexpected binding property %T", p))
}

func target(tg ast.AssignmentTarget) *rep {
	switch tg := tg.(type) {
	case *ast.AssignmentTargetIdentifier:
		r := t(tg.Name)
		if tg.Name == "let" {
			r.flags = startsWithLet
		}
		return r
	case *ast.StaticMemberAssignmentTarget:
		return seq(object(tg.Object), t("."), t(tg.Property))
	case *ast.ComputedMemberAssignmentTarget:
		r := seq(object(tg.Object), bracket(expr(tg.Expression, ast.PrecSequence)))
		if isLet(tg.Object) {
			r.flags |= startsWithLetSquareBracket
		}
		return r
	case *ast.ArrayAssignmentTarget:
		items := make([]*rep, len(tg.Elements))
		for i, el := range tg.Elements {
			if el != nil {
				items[i] = targetElement(el)
			}
		}
		var rest *rep
		if tg.Rest != nil {
			rest = seq(t("..."), target(tg.Rest))
		}
		return bracket(withHoles(items, rest))
	case *ast.ObjectAssignmentTarget:
		items := make([]*rep, len(tg.Properties))
		for i, p := range tg.Properties {
			items[i] = targetProperty(p)
		}
		return brace(commaSep(items))
	}
	panic(fmt.Sprintf("codegen: unexpected assignment target %T", tg))
}

func targetElement(el ast.AssignmentTargetElement) *rep {
	if d, ok := el.(*ast.AssignmentTargetWithDefault); ok {
		return seq(target(d.Binding), space, t("="), space, expr(d.Init, ast.PrecAssignment))
	}
	return target(el.(ast.AssignmentTarget))
}

func targetProperty(p ast.AssignmentTargetProperty) *rep {
	switch p := p.(type) {
	case *ast.AssignmentTargetPropertyIdentifier:
		if p.Init == nil {
			return t(p.Binding.Name)
		}
		return seq(t(p.Binding.Name), space, t("="), space, expr(p.Init, ast.PrecAssignment))
	case *ast.AssignmentTargetPropertyProperty:
		return seq(propertyName(p.Name), t(":"), space, targetElement(p.Binding))
	}
	panic(fmt.Sprintf("codegen: unexpected assignment target property %T", p))
}
