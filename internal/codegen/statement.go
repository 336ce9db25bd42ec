package codegen

import (
	"fmt"

	"github.com/kolkov/ujs/internal/ast"
)

// defaultName is the binding name the parser gives an anonymous default
// export.
const defaultName = "*default*"

// body returns the reps of a directive prologue and the statements that
// follow it.
func body(dirs []*ast.Directive, stmts []ast.Statement) []*rep {
	reps := make([]*rep, 0, len(dirs)+len(stmts))
	for _, d := range dirs {
		reps = append(reps, directive(d))
	}
	for i, s := range stmts {
		reps = append(reps, prologueStatement(s, i == 0))
	}
	return reps
}

// prologueStatement returns the rep of s. A string literal statement
// directly after the directives is parenthesized so that it does not
// read back as one more directive.
func prologueStatement(s ast.Statement, first bool) *rep {
	if es, ok := s.(*ast.ExpressionStatement); ok && first {
		if _, ok := es.Expression.(*ast.LiteralStringExpression); ok {
			return seq(paren(exprRep(es.Expression)), semiOp)
		}
	}
	return statement(s)
}

func directive(d *ast.Directive) *rep {
	return seq(t(quoteDirective(d.RawValue)), semiOp)
}

func statement(s ast.Statement) *rep {
	switch s := s.(type) {
	case *ast.BlockStatement:
		return blockOf(s.Block)
	case *ast.BreakStatement:
		return seq(t("break"), label(s.Label), semiOp)
	case *ast.ContinueStatement:
		return seq(t("continue"), label(s.Label), semiOp)
	case *ast.DebuggerStatement:
		return seq(t("debugger"), semiOp)
	case *ast.EmptyStatement:
		return semi
	case *ast.ExpressionStatement:
		r := expr(s.Expression, ast.PrecSequence)
		if r.has(startsWithCurly | startsWithFunctionOrClass | startsWithLetSquareBracket) {
			r = paren(r)
		}
		return seq(r, semiOp)
	case *ast.IfStatement:
		head := seq(t("if"), space, paren(expr(s.Test, ast.PrecSequence)), space)
		cons := statement(s.Consequent)
		if s.Alternate == nil {
			return seq(head, cons).with(endsWithMissingElse)
		}
		if cons.has(endsWithMissingElse) {
			cons = block([]*rep{cons})
		}
		return seq(head, cons, space, t("else"), space, statement(s.Alternate))
	case *ast.LabeledStatement:
		return seq(t(s.Label), t(":"), space, statement(s.Body))
	case *ast.ReturnStatement:
		if s.Expression == nil {
			return seq(t("return"), semiOp)
		}
		return seq(t("return"), space, expr(s.Expression, ast.PrecSequence), semiOp)
	case *ast.ThrowStatement:
		return seq(t("throw"), space, expr(s.Expression, ast.PrecSequence), semiOp)
	case *ast.WithStatement:
		return seq(t("with"), space, paren(expr(s.Object, ast.PrecSequence)), space, statement(s.Body))
	case *ast.VariableDeclarationStatement:
		return seq(declaration(s.Declaration), semiOp)
	case *ast.FunctionDeclaration:
		return function(s.IsAsync, s.IsGenerator, s.Name, s.Params, s.Body)
	case *ast.ClassDeclaration:
		return class(s.Name, s.Super, s.Elements)

	// Iteration
	case *ast.DoWhileStatement:
		return seq(
			t("do"), space, statement(s.Body), space,
			t("while"), space, paren(expr(s.Test, ast.PrecSequence)), semiOp,
		)
	case *ast.WhileStatement:
		return seq(t("while"), space, paren(expr(s.Test, ast.PrecSequence)), space, statement(s.Body))
	case *ast.ForStatement:
		return forStatement(s)
	case *ast.ForInStatement:
		head := seq(noIn(forHead(s.Left)), t("in"), space, expr(s.Right, ast.PrecSequence))
		return seq(t("for"), space, paren(head), space, statement(s.Body))
	case *ast.ForOfStatement:
		head := seq(forHead(s.Left), t("of"), space, expr(s.Right, ast.PrecAssignment))
		return seq(t("for"), space, paren(head), space, statement(s.Body))

	// Switch and try
	case *ast.SwitchStatement:
		cases := make([]*rep, len(s.Cases))
		for i, c := range s.Cases {
			cases[i] = switchCase(c)
		}
		return seq(t("switch"), space, paren(expr(s.Discriminant, ast.PrecSequence)), space, block(cases))
	case *ast.SwitchStatementWithDefault:
		cases := make([]*rep, 0, len(s.PreDefaultCases)+1+len(s.PostDefaultCases))
		for _, c := range s.PreDefaultCases {
			cases = append(cases, switchCase(c))
		}
		cases = append(cases, switchDefault(s.DefaultCase))
		for _, c := range s.PostDefaultCases {
			cases = append(cases, switchCase(c))
		}
		return seq(t("switch"), space, paren(expr(s.Discriminant, ast.PrecSequence)), space, block(cases))
	case *ast.TryCatchStatement:
		return seq(t("try"), space, blockOf(s.Body), space, catchClause(s.CatchClause))
	case *ast.TryFinallyStatement:
		items := []*rep{t("try"), space, blockOf(s.Body)}
		if s.CatchClause != nil {
			items = append(items, space, catchClause(s.CatchClause))
		}
		items = append(items, space, t("finally"), space, blockOf(s.Finalizer))
		return seq(items...)
	}
	panic(fmt.Sprintf("codegen: unexpected statement %T", s))
}

func label(name string) *rep {
	if name == "" {
		return empty
	}
	return t(name)
}

func blockOf(b *ast.Block) *rep {
	stmts := make([]*rep, len(b.Statements))
	for i, s := range b.Statements {
		stmts[i] = statement(s)
	}
	return block(stmts)
}

func declaration(d *ast.VariableDeclaration) *rep {
	items := make([]*rep, len(d.Declarators))
	for i, decl := range d.Declarators {
		items[i] = declarator(decl)
	}
	return seq(t(d.Kind.String()), space, commaSep(items))
}

func declarator(d *ast.VariableDeclarator) *rep {
	if d.Init == nil {
		return binding(d.Binding)
	}
	return seq(binding(d.Binding), space, t("="), space, expr(d.Init, ast.PrecAssignment))
}

func forStatement(s *ast.ForStatement) *rep {
	items := make([]*rep, 0, 7)
	switch init := s.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		items = append(items, noIn(declaration(init)))
	case ast.Expression:
		r := expr(init, ast.PrecSequence)
		if r.has(startsWithLet) {
			r = paren(r)
		}
		items = append(items, noIn(r))
	}
	items = append(items, t(";"))
	if s.Test != nil {
		items = append(items, space, expr(s.Test, ast.PrecSequence))
	}
	items = append(items, t(";"))
	if s.Update != nil {
		items = append(items, space, expr(s.Update, ast.PrecSequence))
	}
	return seq(t("for"), space, paren(seq(items...)), space, statement(s.Body))
}

// forHead returns the left side of a for-in or for-of statement followed
// by a space. A target starting with let is parenthesized so that it does
// not read as a declaration.
func forHead(h ast.ForHead) *rep {
	var r *rep
	switch h := h.(type) {
	case *ast.VariableDeclaration:
		r = declaration(h)
	case ast.AssignmentTarget:
		r = target(h)
		if r.has(startsWithLet) {
			r = paren(r)
		}
	default:
		panic(fmt.Sprintf("codegen: unexpected for head %T", h))
	}
	return seq(r, space)
}

func switchCase(c *ast.SwitchCase) *rep {
	return seq(t("case"), space, expr(c.Test, ast.PrecSequence), t(":"), indent(statements(c.Consequent)))
}

func switchDefault(d *ast.SwitchDefault) *rep {
	return seq(t("default"), t(":"), indent(statements(d.Consequent)))
}

func statements(list []ast.Statement) []*rep {
	reps := make([]*rep, len(list))
	for i, s := range list {
		reps[i] = statement(s)
	}
	return reps
}

func catchClause(c *ast.CatchClause) *rep {
	return seq(t("catch"), space, paren(binding(c.Binding)), space, blockOf(c.Body))
}

// Modules

func moduleItem(it ast.ModuleItem) *rep {
	switch it := it.(type) {
	case *ast.Import:
		items := []*rep{t("import"), space}
		if it.DefaultBinding != nil {
			items = append(items, t(it.DefaultBinding.Name))
			if len(it.NamedImports) > 0 {
				items = append(items, t(","), space)
			}
		}
		if len(it.NamedImports) > 0 {
			specs := make([]*rep, len(it.NamedImports))
			for i, s := range it.NamedImports {
				specs[i] = importSpecifier(s)
			}
			items = append(items, brace(commaSep(specs)))
		}
		if it.DefaultBinding != nil || len(it.NamedImports) > 0 {
			items = append(items, space, t("from"), space)
		}
		return seq(append(items, t(quoteString(it.ModuleSpecifier)), semiOp)...)
	case *ast.ImportNamespace:
		items := []*rep{t("import"), space}
		if it.DefaultBinding != nil {
			items = append(items, t(it.DefaultBinding.Name), t(","), space)
		}
		items = append(items,
			t("*"), space, t("as"), t(it.NamespaceBinding.Name), space,
			t("from"), space, t(quoteString(it.ModuleSpecifier)), semiOp,
		)
		return seq(items...)
	case *ast.ExportAllFrom:
		return seq(t("export"), space, t("*"), space, t("from"), space, t(quoteString(it.ModuleSpecifier)), semiOp)
	case *ast.ExportFrom:
		specs := make([]*rep, len(it.NamedExports))
		for i, s := range it.NamedExports {
			specs[i] = exportSpecifier(s.Name, s.ExportedName)
		}
		return seq(
			t("export"), space, brace(commaSep(specs)), space,
			t("from"), space, t(quoteString(it.ModuleSpecifier)), semiOp,
		)
	case *ast.ExportLocals:
		specs := make([]*rep, len(it.NamedExports))
		for i, s := range it.NamedExports {
			specs[i] = exportSpecifier(s.Name.Name, s.ExportedName)
		}
		return seq(t("export"), space, brace(commaSep(specs)), semiOp)
	case *ast.Export:
		switch d := it.Declaration.(type) {
		case *ast.VariableDeclaration:
			return seq(t("export"), space, declaration(d), semiOp)
		case ast.Statement:
			return seq(t("export"), space, statement(d))
		}
	case *ast.ExportDefault:
		switch b := it.Body.(type) {
		case *ast.FunctionDeclaration, *ast.ClassDeclaration:
			return seq(t("export"), space, t("default"), space, statement(b.(ast.Statement)))
		case ast.Expression:
			r := expr(b, ast.PrecAssignment)
			if r.has(startsWithFunctionOrClass) {
				r = paren(r)
			}
			return seq(t("export"), space, t("default"), space, r, semiOp)
		}
	case ast.Statement:
		return statement(it)
	}
	panic(fmt.Sprintf("codegen: unexpected module item %T", it))
}

func importSpecifier(s *ast.ImportSpecifier) *rep {
	if s.Name == "" {
		return t(s.Binding.Name)
	}
	return seq(t(s.Name), t("as"), t(s.Binding.Name))
}

func exportSpecifier(name, exported string) *rep {
	if exported == "" {
		return t(name)
	}
	return seq(t(name), t("as"), t(exported))
}
