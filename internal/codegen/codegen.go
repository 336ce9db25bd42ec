// Package codegen turns an AST back into ECMAScript source text.
//
// Generation has two stages. The tree is first folded into a rep, a
// token tree with explicit grouping whose nodes carry a few flags about
// how their text starts and ends; parents use the flags to decide where
// parentheses and braces are needed. The rep is then written out by an
// emitter that inserts spaces only where adjacent tokens would merge and
// omits semicolons that automatic insertion supplies anyway.
//
// For any tree the parser produces, parsing the generated text yields an
// equal tree.
package codegen

import (
	"fmt"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/numfmt"
)

// Generate returns the source text of n, which is normally a Program but
// may be any statement, expression or other node. In pretty mode every
// statement starts a new line, blocks are indented by two spaces and
// operators are surrounded by spaces.
//
// Generate panics if the tree contains a node kind it does not know,
// which only happens for trees built outside this module.
func Generate(n ast.Node, pretty bool) string {
	if n == nil {
		return ""
	}
	e := &emitter{pretty: pretty}
	e.emit(node(n))
	return e.String()
}

// FormatNumber returns the shortest source text for a numeric literal
// with value v.
func FormatNumber(v float64) string {
	return numfmt.Format(v)
}

// node returns the rep of any node.
func node(n ast.Node) *rep {
	switch n := n.(type) {
	case *ast.Script:
		return lines(body(n.Directives, n.Statements))
	case *ast.Module:
		var reps []*rep
		for _, d := range n.Directives {
			reps = append(reps, directive(d))
		}
		for i, it := range n.Items {
			if s, ok := it.(ast.Statement); ok {
				reps = append(reps, prologueStatement(s, i == 0))
				continue
			}
			reps = append(reps, moduleItem(it))
		}
		return lines(reps)
	case ast.Statement:
		return statement(n)
	case ast.Expression:
		return expr(n, ast.PrecSequence)
	case ast.ImportDeclaration, ast.ExportDeclaration:
		return moduleItem(n.(ast.ModuleItem))
	case ast.Binding:
		return binding(n)
	case ast.AssignmentTarget:
		return target(n)
	case ast.PropertyName:
		return propertyName(n)
	case ast.ObjectProperty:
		return property(n)
	case *ast.Directive:
		return directive(n)
	case *ast.FunctionBody:
		return functionBody(n)
	case *ast.FormalParameters:
		return params(n)
	case *ast.Block:
		return blockOf(n)
	case *ast.VariableDeclaration:
		return declaration(n)
	case *ast.VariableDeclarator:
		return declarator(n)
	case *ast.CatchClause:
		return catchClause(n)
	case *ast.SwitchCase:
		return switchCase(n)
	case *ast.SwitchDefault:
		return switchDefault(n)
	case *ast.ClassElement:
		return classElement(n)
	case *ast.SpreadElement:
		return spread(n)
	case *ast.Super:
		return t("super")
	case *ast.BindingWithDefault:
		return parameter(n)
	case *ast.AssignmentTargetWithDefault:
		return targetElement(n)
	case *ast.TemplateElement:
		return t(n.RawValue)
	case *ast.ImportSpecifier:
		return importSpecifier(n)
	case *ast.ExportFromSpecifier:
		return exportSpecifier(n.Name, n.ExportedName)
	case *ast.ExportLocalSpecifier:
		return exportSpecifier(n.Name.Name, n.ExportedName)
	case ast.BindingProperty:
		return bindingProperty(n)
	case ast.AssignmentTargetProperty:
		return targetProperty(n)
	}
	panic(fmt.Sprintf("codegen: unexpected node %T", n))
}
