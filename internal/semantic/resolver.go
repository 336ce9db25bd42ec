package semantic

import (
	"github.com/kolkov/ujs/internal/ast"
)

// defaultName is the binding name the parser gives an anonymous function
// or class declaration after 'export default'.
const defaultName = "*default*"

// -----------------------------------------------------------------------------
// Programs
// -----------------------------------------------------------------------------

func (c *checker) checkScript(s *ast.Script) {
	ctx := context{strict: ast.HasStrictDirective(s.Directives)}
	c.scope = NewScope(nil, ScopeProgram)
	c.checkDirectives(s.Directives)
	c.visitStatements(s.Statements, ctx, true)
}

// checkModule checks a module. Functions at the top level of a module are
// lexical declarations; local exports are resolved once every top-level
// declaration is known.
func (c *checker) checkModule(m *ast.Module) {
	ctx := context{strict: true, module: true}
	c.scope = NewScope(nil, ScopeProgram)
	c.exports = make(map[string]bool)
	c.checkDirectives(m.Directives)

	var locals []*ast.ExportLocalSpecifier
	for _, item := range m.Items {
		switch item := item.(type) {
		case *ast.Import:
			if item.DefaultBinding != nil {
				c.declareImport(item.DefaultBinding, ctx)
			}
			for _, spec := range item.NamedImports {
				if spec.Name != "" && !isIdentifierName(spec.Name) {
					c.errorf(spec, errInvalidProperty, spec.Name)
				}
				c.declareImport(spec.Binding, ctx)
			}
		case *ast.ImportNamespace:
			if item.DefaultBinding != nil {
				c.declareImport(item.DefaultBinding, ctx)
			}
			c.declareImport(item.NamespaceBinding, ctx)
		case *ast.ExportAllFrom:
		case *ast.ExportFrom:
			for _, spec := range item.NamedExports {
				if !isIdentifierName(spec.Name) {
					c.errorf(spec, errInvalidProperty, spec.Name)
				}
				c.export(spec, exportedName(spec.Name, spec.ExportedName))
			}
		case *ast.ExportLocals:
			for _, spec := range item.NamedExports {
				c.visit(spec.Name, ctx)
				c.export(spec, exportedName(spec.Name.Name, spec.ExportedName))
				locals = append(locals, spec)
			}
		case *ast.Export:
			c.visitExport(item, ctx)
		case *ast.ExportDefault:
			c.export(item, "default")
			c.visitExportDefault(item.Body, ctx)
		case ast.Statement:
			c.visitStatements([]ast.Statement{item}, ctx, false)
		}
	}

	for _, spec := range locals {
		if _, ok := c.scope.Lookup(spec.Name.Name); !ok {
			c.errorf(spec, errUnresolvedExport, spec.Name.Name)
		}
	}
}

func exportedName(local, exported string) string {
	if exported != "" {
		return exported
	}
	return local
}

// export records an exported name.
func (c *checker) export(n ast.Node, name string) {
	if name != "default" && !isIdentifierName(name) {
		c.errorf(n, errInvalidProperty, name)
	}
	if c.exports[name] {
		c.errorf(n, errDuplicateExport, name)
	}
	c.exports[name] = true
}

func (c *checker) declareImport(id *ast.BindingIdentifier, ctx context) {
	c.visit(id, ctx)
	c.report(id, c.scope.DeclareLexical(id.Name, DeclImport, true))
}

func (c *checker) visitExport(e *ast.Export, ctx context) {
	switch d := e.Declaration.(type) {
	case *ast.FunctionDeclaration:
		c.declareFunction(d, ctx, false)
		c.export(d.Name, d.Name.Name)
		c.visit(d, ctx)
	case *ast.ClassDeclaration:
		c.report(d.Name, c.scope.DeclareLexical(d.Name.Name, DeclClass, true))
		c.export(d.Name, d.Name.Name)
		c.visit(d, ctx)
	case *ast.VariableDeclaration:
		c.visitDeclaration(d, ctx, false)
		for _, decl := range d.Declarators {
			for _, id := range boundNames(decl.Binding, nil) {
				c.export(id, id.Name)
			}
		}
	}
}

// visitExportDefault checks the body of 'export default'. Declarations
// named defaultName bind no local name.
func (c *checker) visitExportDefault(body ast.ExportDefaultBody, ctx context) {
	switch d := body.(type) {
	case *ast.FunctionDeclaration:
		info := declarationInfo(d)
		if d.Name.Name == defaultName {
			info.anonymous = true
		} else {
			c.declareFunction(d, ctx, false)
		}
		c.visitFunction(info, ctx)
	case *ast.ClassDeclaration:
		anonymous := d.Name.Name == defaultName
		if !anonymous {
			c.report(d.Name, c.scope.DeclareLexical(d.Name.Name, DeclClass, true))
		}
		c.visitClass(d.Name, d.Super, d.Elements, ctx, anonymous)
	case ast.Expression:
		c.visit(d, ctx)
	}
}

func (c *checker) checkDirectives(dirs []*ast.Directive) {
	for _, d := range dirs {
		if !validDirective(d.RawValue) {
			c.errorf(d, errDirective, d.RawValue)
		}
	}
}

// -----------------------------------------------------------------------------
// Statements and declarations
// -----------------------------------------------------------------------------

// visitStatements checks a statement list, declaring the functions and
// classes it contains in the current scope. varFunctions is set at the
// top level of a script or function, where functions are var-scoped.
func (c *checker) visitStatements(list []ast.Statement, ctx context, varFunctions bool) {
	for _, s := range list {
		switch s := s.(type) {
		case *ast.FunctionDeclaration:
			c.declareFunction(s, ctx, varFunctions)
		case *ast.ClassDeclaration:
			c.report(s.Name, c.scope.DeclareLexical(s.Name.Name, DeclClass, ctx.strict))
		}
		c.visit(s, ctx)
	}
}

func (c *checker) declareFunction(fn *ast.FunctionDeclaration, ctx context, varScoped bool) {
	if varScoped {
		c.report(fn.Name, c.scope.DeclareFunction(fn.Name.Name))
		return
	}
	c.report(fn.Name, c.scope.DeclareLexical(fn.Name.Name, DeclFunction, ctx.strict))
}

func (c *checker) visitBlock(b *ast.Block, ctx context) {
	saved := c.scope
	c.scope = NewScope(saved, ScopeBlock)
	c.visitStatements(b.Statements, ctx, false)
	c.scope = saved
}

// visitDeclaration declares and checks a variable declaration. In the
// head of a for-in or for-of statement the initializer is not required.
func (c *checker) visitDeclaration(d *ast.VariableDeclaration, ctx context, head bool) {
	for _, decl := range d.Declarators {
		for _, id := range boundNames(decl.Binding, nil) {
			switch d.Kind {
			case ast.Var:
				c.report(id, c.scope.DeclareVar(id.Name))
			case ast.Let, ast.Const:
				if id.Name == "let" {
					c.errorf(id, errLetName, id.Name)
				}
				kind := DeclLet
				if d.Kind == ast.Const {
					kind = DeclConst
				}
				c.report(id, c.scope.DeclareLexical(id.Name, kind, ctx.strict))
			}
		}
		if decl.Init == nil && !head {
			if d.Kind == ast.Const {
				c.errorf(decl, errConstInit)
			} else if _, ok := decl.Binding.(*ast.BindingIdentifier); !ok {
				c.errorf(decl, errPatternInit)
			}
		}
		c.visit(decl.Binding, ctx)
		if decl.Init != nil {
			c.visit(decl.Init, ctx)
		}
	}
}

// visitFor checks a for statement. A lexical declaration in the head gets
// a scope of its own around the loop.
func (c *checker) visitFor(n *ast.ForStatement, ctx context) {
	saved := c.scope
	switch init := n.Init.(type) {
	case *ast.VariableDeclaration:
		if init.Kind != ast.Var {
			c.scope = NewScope(saved, ScopeBlock)
		}
		c.visitDeclaration(init, ctx, false)
	case nil:
	default:
		c.visit(init, ctx)
	}
	if n.Test != nil {
		c.visit(n.Test, ctx)
	}
	if n.Update != nil {
		c.visit(n.Update, ctx)
	}
	c.visitBody(n.Body, ctx.loop(), false)
	c.scope = saved
}

// visitForInOf checks a for-in or for-of statement. A declaration in the
// head binds exactly one name and has no initializer, except for the
// sloppy-mode for (var x = init in o) form.
func (c *checker) visitForInOf(keyword string, left ast.ForHead, right ast.Expression, body ast.Statement, ctx context) {
	saved := c.scope
	switch left := left.(type) {
	case *ast.VariableDeclaration:
		if len(left.Declarators) != 1 {
			c.errorf(left, errForInOfBinding, keyword)
		} else if d := left.Declarators[0]; d.Init != nil {
			_, simple := d.Binding.(*ast.BindingIdentifier)
			if keyword != "for-in" || left.Kind != ast.Var || !simple || ctx.strict {
				c.errorf(d, errForInOfInit, keyword)
			}
		}
		if left.Kind != ast.Var {
			c.scope = NewScope(saved, ScopeBlock)
		}
		c.visitDeclaration(left, ctx, true)
	default:
		c.visit(left, ctx)
	}
	c.visit(right, ctx)
	c.visitBody(body, ctx.loop(), false)
	c.scope = saved
}

// visitCases checks the clauses of a switch statement, which share one
// block scope.
func (c *checker) visitCases(pre []*ast.SwitchCase, def *ast.SwitchDefault, post []*ast.SwitchCase, ctx context) {
	saved := c.scope
	c.scope = NewScope(saved, ScopeBlock)
	ctx.breakable = true
	for _, sc := range pre {
		c.visit(sc.Test, ctx)
		c.visitStatements(sc.Consequent, ctx, false)
	}
	if def != nil {
		c.visitStatements(def.Consequent, ctx, false)
	}
	for _, sc := range post {
		c.visit(sc.Test, ctx)
		c.visitStatements(sc.Consequent, ctx, false)
	}
	c.scope = saved
}

// visitCatch checks a catch clause. The parameter and the body share a
// scope, so the body may not redeclare a parameter lexically.
func (c *checker) visitCatch(n *ast.CatchClause, ctx context) {
	saved := c.scope
	c.scope = NewScope(saved, ScopeBlock)
	ids := boundNames(n.Binding, nil)
	seen := make(map[string]bool, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id.Name] {
			c.errorf(id, errDuplicateLexical, id.Name)
		}
		seen[id.Name] = true
		names = append(names, id.Name)
	}
	_, simple := n.Binding.(*ast.BindingIdentifier)
	c.scope.DeclareCatch(names, !simple)
	c.visit(n.Binding, ctx)
	c.visitStatements(n.Body.Statements, ctx, false)
	c.scope = saved
}

// boundNames appends the identifiers bound by a binding pattern to out.
func boundNames(n ast.Node, out []*ast.BindingIdentifier) []*ast.BindingIdentifier {
	switch n := n.(type) {
	case *ast.BindingIdentifier:
		if n != nil {
			out = append(out, n)
		}
	case *ast.BindingWithDefault:
		out = boundNames(n.Binding, out)
	case *ast.ArrayBinding:
		for _, el := range n.Elements {
			out = boundNames(el, out)
		}
		out = boundNames(n.Rest, out)
	case *ast.ObjectBinding:
		for _, prop := range n.Properties {
			switch prop := prop.(type) {
			case *ast.BindingPropertyIdentifier:
				out = boundNames(prop.Binding, out)
			case *ast.BindingPropertyProperty:
				out = boundNames(prop.Binding, out)
			}
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Functions and classes
// -----------------------------------------------------------------------------

// funcInfo is the common shape of the function-like nodes.
type funcInfo struct {
	node      ast.Node
	name      *ast.BindingIdentifier
	params    []ast.Parameter
	rest      ast.Binding
	body      *ast.FunctionBody
	expr      ast.Expression // concise arrow body
	isAsync   bool
	generator bool

	arrow      bool
	method     bool
	expression bool // the name is bound inside the function
	anonymous  bool // the name is defaultName
	superCall  bool
}

func declarationInfo(n *ast.FunctionDeclaration) funcInfo {
	return funcInfo{
		node:      n,
		name:      n.Name,
		params:    n.Params.Items,
		rest:      n.Params.Rest,
		body:      n.Body,
		isAsync:   n.IsAsync,
		generator: n.IsGenerator,
	}
}

func expressionInfo(n *ast.FunctionExpression) funcInfo {
	return funcInfo{
		node:       n,
		name:       n.Name,
		params:     n.Params.Items,
		rest:       n.Params.Rest,
		body:       n.Body,
		isAsync:    n.IsAsync,
		generator:  n.IsGenerator,
		expression: true,
	}
}

func arrowInfo(n *ast.ArrowExpression) funcInfo {
	info := funcInfo{
		node:    n,
		params:  n.Params.Items,
		rest:    n.Params.Rest,
		isAsync: n.IsAsync,
		arrow:   true,
	}
	switch body := n.Body.(type) {
	case *ast.FunctionBody:
		info.body = body
	case ast.Expression:
		info.expr = body
	}
	return info
}

// simple reports whether the parameter list is a plain list of names.
func (f *funcInfo) simple() bool {
	if f.rest != nil {
		return false
	}
	for _, p := range f.params {
		if _, ok := p.(*ast.BindingIdentifier); !ok {
			return false
		}
	}
	return true
}

// visitFunction checks a function: its name, its parameters and its body
// in a new function scope.
func (c *checker) visitFunction(f funcInfo, outer context) {
	ctx := outer
	ctx.params = false
	ctx.function = true
	ctx.labels = nil
	ctx.iteration = false
	ctx.breakable = false
	if f.arrow {
		ctx.generator = false
		ctx.async = f.isAsync
	} else {
		ctx.generator = f.generator
		ctx.async = f.isAsync
		ctx.newTarget = true
		ctx.superProp = f.method
		ctx.superCall = f.superCall
	}
	if f.body != nil {
		for _, d := range f.body.Directives {
			if d.RawValue == "use strict" {
				ctx.strict = true
				if !f.simple() {
					c.errorf(d, errStrictParams)
				}
				break
			}
		}
	}

	if f.name != nil && !f.anonymous {
		nameCtx := outer
		nameCtx.strict = ctx.strict
		if f.expression {
			nameCtx.generator = ctx.generator
			nameCtx.async = ctx.async
		}
		c.visit(f.name, nameCtx)
	}

	// Arrow parameters belong to the enclosing function.
	pctx := ctx
	if f.arrow {
		pctx = outer
		pctx.strict = ctx.strict
		pctx.async = outer.async || f.isAsync
	}
	pctx.params = true
	var ids []*ast.BindingIdentifier
	for _, p := range f.params {
		c.visit(p, pctx)
		ids = boundNames(p, ids)
	}
	if f.rest != nil {
		c.visit(f.rest, pctx)
		ids = boundNames(f.rest, ids)
	}

	unique := ctx.strict || f.arrow || f.method || !f.simple()
	seen := make(map[string]bool, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id.Name] && unique {
			c.errorf(id, errDuplicateParam, id.Name)
		}
		seen[id.Name] = true
		names = append(names, id.Name)
	}

	saved := c.scope
	c.scope = NewScope(saved, ScopeFunction)
	c.scope.DeclareParams(names)
	switch {
	case f.body != nil:
		c.checkDirectives(f.body.Directives)
		c.visitStatements(f.body.Statements, ctx, true)
	case f.expr != nil:
		c.visit(f.expr, ctx)
	}
	c.scope = saved
}

// visitMethod checks a method, getter or setter of an object literal or a
// class. superCall is set for the constructor of a derived class.
func (c *checker) visitMethod(m ast.MethodDefinition, ctx context, superCall bool) {
	c.visit(ast.MethodName(m), ctx)
	switch m := m.(type) {
	case *ast.Method:
		c.visitFunction(funcInfo{
			node:      m,
			params:    m.Params.Items,
			rest:      m.Params.Rest,
			body:      m.Body,
			isAsync:   m.IsAsync,
			generator: m.IsGenerator,
			method:    true,
			superCall: superCall,
		}, ctx)
	case *ast.Getter:
		c.visitFunction(funcInfo{node: m, body: m.Body, method: true}, ctx)
	case *ast.Setter:
		c.visitFunction(funcInfo{node: m, params: []ast.Parameter{m.Param}, body: m.Body, method: true}, ctx)
	}
}

// visitClass checks a class. Class code is strict; the class name is
// declared by the caller.
func (c *checker) visitClass(name *ast.BindingIdentifier, super ast.Expression, elements []*ast.ClassElement, ctx context, anonymous bool) {
	ctx.strict = true
	if name != nil && !anonymous {
		c.visit(name, ctx)
	}
	if super != nil {
		c.visit(super, ctx)
	}
	ctors := 0
	for _, el := range elements {
		key, static := staticName(ast.MethodName(el.Method))
		switch {
		case static && el.IsStatic && key == "prototype":
			c.errorf(el, errStaticPrototype)
		case static && !el.IsStatic && key == "constructor":
			switch m := el.Method.(type) {
			case *ast.Method:
				switch {
				case m.IsGenerator:
					c.errorf(el, errSpecialCtor, "a generator")
				case m.IsAsync:
					c.errorf(el, errSpecialCtor, "async")
				default:
					if ctors++; ctors > 1 {
						c.errorf(el, errDuplicateCtor)
					}
				}
			default:
				c.errorf(el, errSpecialCtor, "an accessor")
			}
		}
		derivedCtor := super != nil && !el.IsStatic && static && key == "constructor"
		c.visitMethod(el.Method, ctx, derivedCtor)
	}
}

// staticName returns the value of a non-computed property name.
func staticName(name ast.PropertyName) (string, bool) {
	if s, ok := name.(*ast.StaticPropertyName); ok {
		return s.Value, true
	}
	return "", false
}
