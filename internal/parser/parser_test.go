package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/parser"
)

func id(name string) *ast.IdentifierExpression { return &ast.IdentifierExpression{Name: name} }

func num(v float64) *ast.LiteralNumericExpression { return &ast.LiteralNumericExpression{Value: v} }

func bin(l ast.Expression, op ast.BinaryOperator, r ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: l, Operator: op, Right: r}
}

func target(name string) *ast.AssignmentTargetIdentifier {
	return &ast.AssignmentTargetIdentifier{Name: name}
}

func mustParseScript(t *testing.T, src string) *ast.Script {
	t.Helper()
	script, err := parser.ParseScript(src)
	if err != nil {
		t.Fatalf("ParseScript(%q) error = %v", src, err)
	}
	return script
}

// TestParseEmpty tests parsing an empty program.
func TestParseEmpty(t *testing.T) {
	script := mustParseScript(t, "")
	if len(script.Directives) != 0 {
		t.Errorf("Directives = %d, want 0", len(script.Directives))
	}
	if len(script.Statements) != 0 {
		t.Errorf("Statements = %d, want 0", len(script.Statements))
	}
}

// TestParseExpr tests the shape of parsed expressions.
func TestParseExpr(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.Expression
	}{
		{"precedence", "1 + 2 * 3", bin(num(1), ast.OpAdd, bin(num(2), ast.OpMul, num(3)))},
		{"left assoc", "a - b - c", bin(bin(id("a"), ast.OpSub, id("b")), ast.OpSub, id("c"))},
		{"exponent right assoc", "a ** b ** c", bin(id("a"), ast.OpExp, bin(id("b"), ast.OpExp, id("c")))},
		{"parenthesized unary base", "(-a) ** b", bin(&ast.UnaryExpression{Operator: ast.OpMinus, Operand: id("a")}, ast.OpExp, id("b"))},
		{"comma", "a, b", bin(id("a"), ast.OpComma, id("b"))},
		{"division", "a / b / c", bin(bin(id("a"), ast.OpDiv, id("b")), ast.OpDiv, id("c"))},
		{
			name: "assignment chain",
			src:  "a = b = c",
			want: &ast.AssignmentExpression{
				Binding:    target("a"),
				Expression: &ast.AssignmentExpression{Binding: target("b"), Expression: id("c")},
			},
		},
		{
			name: "compound assignment",
			src:  "a.b += 1",
			want: &ast.CompoundAssignmentExpression{
				Binding:    &ast.StaticMemberAssignmentTarget{Object: id("a"), Property: "b"},
				Operator:   ast.OpAssignAdd,
				Expression: num(1),
			},
		},
		{
			name: "conditional",
			src:  "a ? b : c",
			want: &ast.ConditionalExpression{Test: id("a"), Consequent: id("b"), Alternate: id("c")},
		},
		{
			name: "postfix",
			src:  "a++",
			want: &ast.UpdateExpression{Operator: ast.OpIncrement, Operand: target("a")},
		},
		{
			name: "prefix",
			src:  "--a[0]",
			want: &ast.UpdateExpression{
				IsPrefix: true,
				Operator: ast.OpDecrement,
				Operand:  &ast.ComputedMemberAssignmentTarget{Object: id("a"), Expression: num(0)},
			},
		},
		{
			name: "regexp",
			src:  "x = /re/g",
			want: &ast.AssignmentExpression{
				Binding:    target("x"),
				Expression: &ast.LiteralRegExpExpression{Pattern: "re", Global: true},
			},
		},
		{
			name: "new without arguments",
			src:  "new a.b",
			want: &ast.NewExpression{Callee: &ast.StaticMemberExpression{Object: id("a"), Property: "b"}},
		},
		{
			name: "new with call",
			src:  "new a().b()",
			want: &ast.CallExpression{
				Callee: &ast.StaticMemberExpression{Object: &ast.NewExpression{Callee: id("a")}, Property: "b"},
			},
		},
		{
			name: "spread arguments",
			src:  "f(a, ...b,)",
			want: &ast.CallExpression{
				Callee:    id("f"),
				Arguments: []ast.SpreadElementExpression{id("a"), &ast.SpreadElement{Expression: id("b")}},
			},
		},
		{
			name: "array holes",
			src:  "[, a, , ]",
			want: &ast.ArrayExpression{Elements: []ast.SpreadElementExpression{nil, id("a"), nil}},
		},
		{
			name: "async call",
			src:  "async(a)",
			want: &ast.CallExpression{Callee: id("async"), Arguments: []ast.SpreadElementExpression{id("a")}},
		},
		{
			name: "arrow",
			src:  "x => x",
			want: &ast.ArrowExpression{
				Params: &ast.FormalParameters{Items: []ast.Parameter{&ast.BindingIdentifier{Name: "x"}}},
				Body:   id("x"),
			},
		},
		{
			name: "async arrow",
			src:  "async (a, ...b) => {}",
			want: &ast.ArrowExpression{
				IsAsync: true,
				Params: &ast.FormalParameters{
					Items: []ast.Parameter{&ast.BindingIdentifier{Name: "a"}},
					Rest:  &ast.BindingIdentifier{Name: "b"},
				},
				Body: &ast.FunctionBody{},
			},
		},
		{
			name: "arrow default",
			src:  "(a = 1) => a",
			want: &ast.ArrowExpression{
				Params: &ast.FormalParameters{Items: []ast.Parameter{
					&ast.BindingWithDefault{Binding: &ast.BindingIdentifier{Name: "a"}, Init: num(1)},
				}},
				Body: id("a"),
			},
		},
		{
			name: "arrow object pattern with initializer",
			src:  "({a = 1}) => a",
			want: &ast.ArrowExpression{
				Params: &ast.FormalParameters{Items: []ast.Parameter{
					&ast.ObjectBinding{Properties: []ast.BindingProperty{
						&ast.BindingPropertyIdentifier{Binding: &ast.BindingIdentifier{Name: "a"}, Init: num(1)},
					}},
				}},
				Body: id("a"),
			},
		},
		{
			name: "object assignment pattern",
			src:  "({a = 1, b: c} = d)",
			want: &ast.AssignmentExpression{
				Binding: &ast.ObjectAssignmentTarget{Properties: []ast.AssignmentTargetProperty{
					&ast.AssignmentTargetPropertyIdentifier{Binding: target("a"), Init: num(1)},
					&ast.AssignmentTargetPropertyProperty{Name: &ast.StaticPropertyName{Value: "b"}, Binding: target("c")},
				}},
				Expression: id("d"),
			},
		},
		{
			name: "array assignment pattern",
			src:  "[a = 1, ...b] = c",
			want: &ast.AssignmentExpression{
				Binding: &ast.ArrayAssignmentTarget{
					Elements: []ast.AssignmentTargetElement{
						&ast.AssignmentTargetWithDefault{Binding: target("a"), Init: num(1)},
					},
					Rest: target("b"),
				},
				Expression: id("c"),
			},
		},
		{
			name: "parenthesized target",
			src:  "(a) = 1",
			want: &ast.AssignmentExpression{Binding: target("a"), Expression: num(1)},
		},
		{
			name: "template",
			src:  "`a${b}c`",
			want: &ast.TemplateExpression{Elements: []ast.TemplatePart{
				&ast.TemplateElement{RawValue: "a"}, id("b"), &ast.TemplateElement{RawValue: "c"},
			}},
		},
		{
			name: "tagged template",
			src:  "tag`x`",
			want: &ast.TemplateExpression{Tag: id("tag"), Elements: []ast.TemplatePart{&ast.TemplateElement{RawValue: "x"}}},
		},
		{
			name: "numeric property name",
			src:  "({0x10: a})",
			want: &ast.ObjectExpression{Properties: []ast.ObjectProperty{
				&ast.DataProperty{Name: &ast.StaticPropertyName{Value: "16"}, Expression: id("a")},
			}},
		},
		{
			name: "shorthand and method",
			src:  "({a, get b() {}, c() {}})",
			want: &ast.ObjectExpression{Properties: []ast.ObjectProperty{
				&ast.ShorthandProperty{Name: id("a")},
				&ast.Getter{Name: &ast.StaticPropertyName{Value: "b"}, Body: &ast.FunctionBody{}},
				&ast.Method{Name: &ast.StaticPropertyName{Value: "c"}, Params: &ast.FormalParameters{}, Body: &ast.FunctionBody{}},
			}},
		},
		{
			name: "property named get",
			src:  "({get: 1})",
			want: &ast.ObjectExpression{Properties: []ast.ObjectProperty{
				&ast.DataProperty{Name: &ast.StaticPropertyName{Value: "get"}, Expression: num(1)},
			}},
		},
		{"infinity", "1e400", &ast.LiteralInfinityExpression{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.src, err)
			}
			if !ast.Equal(got, tt.want) {
				t.Errorf("ParseExpr(%q) =\n%s\nwant:\n%s", tt.src, ast.String(got), ast.String(tt.want))
			}
		})
	}
}

// TestParseStatements tests statement kinds and automatic semicolon
// insertion.
func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []ast.Kind
	}{
		{"asi newline", "a\nb", []ast.Kind{ast.KindExpressionStatement, ast.KindExpressionStatement}},
		{"asi before update", "a\n++b", []ast.Kind{ast.KindExpressionStatement, ast.KindExpressionStatement}},
		{"call across newline", "a\n(b)", []ast.Kind{ast.KindExpressionStatement}},
		{"asi before brace", "{ a }", []ast.Kind{ast.KindBlockStatement}},
		{"regexp after paren", "if (x) /re/.test(y)", []ast.Kind{ast.KindIfStatement}},
		{"var", "var a = 1, b", []ast.Kind{ast.KindVariableDeclarationStatement}},
		{"let declaration", "let [a] = b", []ast.Kind{ast.KindVariableDeclarationStatement}},
		{"let identifier", "let = 1", []ast.Kind{ast.KindExpressionStatement}},
		{"function and class", "function f() {} class C {}", []ast.Kind{ast.KindFunctionDeclaration, ast.KindClassDeclaration}},
		{"async function", "async function f() { await x }", []ast.Kind{ast.KindFunctionDeclaration}},
		{"for", "for (var i = 0; i < n; i++) ;", []ast.Kind{ast.KindForStatement}},
		{"for empty head", "for (;;) break", []ast.Kind{ast.KindForStatement}},
		{"for in", "for (x in o) ;", []ast.Kind{ast.KindForInStatement}},
		{"for of pattern", "for ([a, b] of c) ;", []ast.Kind{ast.KindForOfStatement}},
		{"for let of", "for (let [a] of b) ;", []ast.Kind{ast.KindForOfStatement}},
		{"for in with expression", "for (a.b in c) ;", []ast.Kind{ast.KindForInStatement}},
		{"do while without semicolon", "do x; while (y) z", []ast.Kind{ast.KindDoWhileStatement, ast.KindExpressionStatement}},
		{"try catch", "try {} catch (e) {}", []ast.Kind{ast.KindTryCatchStatement}},
		{"try finally", "try {} catch ({a}) {} finally {}", []ast.Kind{ast.KindTryFinallyStatement}},
		{"switch", "switch (x) { case 1: }", []ast.Kind{ast.KindSwitchStatement}},
		{"labeled", "a: for (;;) continue a", []ast.Kind{ast.KindLabeledStatement}},
		{"sloppy if function", "if (a) function f() {}", []ast.Kind{ast.KindIfStatement}},
		{"with", "with (a) b", []ast.Kind{ast.KindWithStatement}},
		{"misc", "debugger; ; throw a", []ast.Kind{ast.KindDebuggerStatement, ast.KindEmptyStatement, ast.KindThrowStatement}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := mustParseScript(t, tt.src)
			var got []ast.Kind
			for _, s := range script.Statements {
				got = append(got, s.Type())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("statements = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("statement %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestParseReturnNewline tests that a line terminator after return,
// break or continue ends the statement.
func TestParseReturnNewline(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []ast.Kind
	}{
		{"return then expression", "return\nx", []ast.Kind{ast.KindReturnStatement, ast.KindExpressionStatement}},
		{"return then semicolon", "return\n;", []ast.Kind{ast.KindReturnStatement, ast.KindEmptyStatement}},
		{"return value then semicolon", "return x\n;", []ast.Kind{ast.KindReturnStatement}},
		{"return semicolon", "return;", []ast.Kind{ast.KindReturnStatement}},
		{"break then semicolon", "while (1) { break\n; }", []ast.Kind{ast.KindWhileStatement}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := mustParseScript(t, "function f() { "+tt.src+" }")
			body := script.Statements[0].(*ast.FunctionDeclaration).Body
			if len(body.Statements) != len(tt.kinds) {
				t.Fatalf("body statements = %d, want %d", len(body.Statements), len(tt.kinds))
			}
			for i, k := range tt.kinds {
				if got := body.Statements[i].Type(); got != k {
					t.Errorf("statement %d = %s, want %s", i, got, k)
				}
			}
			if ret, ok := body.Statements[0].(*ast.ReturnStatement); ok && len(tt.kinds) == 2 && ret.Expression != nil {
				t.Errorf("return expression = %s, want nil", ast.String(ret.Expression))
			}
		})
	}

	script := mustParseScript(t, "while (1) { continue\n; }")
	loop := script.Statements[0].(*ast.WhileStatement).Body.(*ast.BlockStatement)
	if n := len(loop.Block.Statements); n != 2 {
		t.Errorf("loop statements = %d, want 2 (continue, empty)", n)
	}
}

// TestParseDirectives tests directive prologues.
func TestParseDirectives(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantDirs  []string
		wantStmts int
	}{
		{"use strict", `"use strict"; a`, []string{"use strict"}, 1},
		{"several", "'a'\n\"b\"; c", []string{"a", "b"}, 1},
		{"raw escapes", `"use\x20strict"`, []string{`use\x20strict`}, 0},
		{"not a directive", `"a" + b`, nil, 1},
		{"after statement", `a; "b"`, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := mustParseScript(t, tt.src)
			if len(script.Directives) != len(tt.wantDirs) {
				t.Fatalf("directives = %d, want %d", len(script.Directives), len(tt.wantDirs))
			}
			for i, d := range script.Directives {
				if d.RawValue != tt.wantDirs[i] {
					t.Errorf("directive %d = %q, want %q", i, d.RawValue, tt.wantDirs[i])
				}
			}
			if len(script.Statements) != tt.wantStmts {
				t.Errorf("statements = %d, want %d", len(script.Statements), tt.wantStmts)
			}
		})
	}
}

// TestParseSwitchDefault tests that the default clause splits the cases.
func TestParseSwitchDefault(t *testing.T) {
	script := mustParseScript(t, "switch (x) { case 1: a; default: b; case 2: c; case 3: }")
	sw, ok := script.Statements[0].(*ast.SwitchStatementWithDefault)
	if !ok {
		t.Fatalf("statement = %T, want *ast.SwitchStatementWithDefault", script.Statements[0])
	}
	if len(sw.PreDefaultCases) != 1 || len(sw.PostDefaultCases) != 2 {
		t.Errorf("cases = %d/%d, want 1/2", len(sw.PreDefaultCases), len(sw.PostDefaultCases))
	}
	if len(sw.DefaultCase.Consequent) != 1 {
		t.Errorf("default consequent = %d, want 1", len(sw.DefaultCase.Consequent))
	}
}

// TestParseClass tests class bodies.
func TestParseClass(t *testing.T) {
	script := mustParseScript(t, `class A extends B {
  constructor() { super(); }
  static m() { super.m(); }
  get x() { return 1 }
  set x(v) {}
  ;
  static() {}
  *gen() { yield 1 }
  async am() { await 1 }
}`)
	class := script.Statements[0].(*ast.ClassDeclaration)
	if class.Name.Name != "A" {
		t.Errorf("name = %q, want A", class.Name.Name)
	}
	if _, ok := class.Super.(*ast.IdentifierExpression); !ok {
		t.Errorf("super = %T, want *ast.IdentifierExpression", class.Super)
	}
	wantStatic := []bool{false, true, false, false, false, false, false}
	if len(class.Elements) != len(wantStatic) {
		t.Fatalf("elements = %d, want %d", len(class.Elements), len(wantStatic))
	}
	for i, el := range class.Elements {
		if el.IsStatic != wantStatic[i] {
			t.Errorf("element %d static = %v, want %v", i, el.IsStatic, wantStatic[i])
		}
	}
	if m := class.Elements[5].Method.(*ast.Method); !m.IsGenerator {
		t.Error("gen is not a generator")
	}
	if m := class.Elements[6].Method.(*ast.Method); !m.IsAsync {
		t.Error("am is not async")
	}
}

// TestParseModule tests import and export forms.
func TestParseModule(t *testing.T) {
	src := `import a from "a";
import * as ns from "b";
import {x, y as z} from "c";
import "d";
export var v = 1;
export {v as w};
export * from "e";
export {q as default} from "f";
export class K {}
export default function () {}`
	mod, err := parser.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule() error = %v", err)
	}
	want := []ast.Kind{
		ast.KindImport, ast.KindImportNamespace, ast.KindImport, ast.KindImport,
		ast.KindExport, ast.KindExportLocals, ast.KindExportAllFrom, ast.KindExportFrom,
		ast.KindExport, ast.KindExportDefault,
	}
	if len(mod.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(mod.Items), len(want))
	}
	for i, item := range mod.Items {
		if item.Type() != want[i] {
			t.Errorf("item %d = %v, want %v", i, item.Type(), want[i])
		}
	}

	named := mod.Items[2].(*ast.Import).NamedImports
	if len(named) != 2 || named[0].Name != "" || named[1].Name != "y" || named[1].Binding.Name != "z" {
		t.Errorf("named imports = %+v", named)
	}
	from := mod.Items[7].(*ast.ExportFrom).NamedExports[0]
	if from.Name != "q" || from.ExportedName != "default" {
		t.Errorf("export from = %+v", from)
	}
	fn := mod.Items[9].(*ast.ExportDefault).Body.(*ast.FunctionDeclaration)
	if fn.Name.Name != "*default*" {
		t.Errorf("default export name = %q, want *default*", fn.Name.Name)
	}
}

// TestParseErrors tests that syntax errors abort the parse.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed brace", "{"},
		{"unclosed paren", "f(1"},
		{"missing operand", "a +"},
		{"invalid target", "a + 1 = 2"},
		{"invalid update", "a++ ++"},
		{"parenthesized pattern", "({a}) = 1"},
		{"rest not last", "[...a, b] = c"},
		{"rest trailing comma", "[...a,] = c"},
		{"parenthesized arrow param", "((a)) => 1"},
		{"empty parens", "()"},
		{"trailing comma group", "(a,)"},
		{"arrow after newline", "a\n=> 1"},
		{"unary before exponent", "-a ** b"},
		{"throw newline", "throw\na"},
		{"second default", "switch (x) { default: default: }"},
		{"try alone", "try {}"},
		{"lexical in statement position", "if (a) let b = 1"},
		{"class in statement position", "while (a) class C {}"},
		{"function in loop body", "while (a) function f() {}"},
		{"strict if function", "'use strict'; if (a) function f() {}"},
		{"destructuring without init", "var [a];"},
		{"async generator", "async function* f() {}"},
		{"import in script", "import a from 'b'"},
		{"lexer error", "'abc"},
		{"for let of", "for (let of x) ;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src, 0)
			if err == nil {
				t.Errorf("Parse(%q) expected error, got none", tt.src)
			}
		})
	}
}

// TestEarlyErrors tests errors that the parser collects without aborting.
func TestEarlyErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring of the first early error, "" for none
	}{
		{"break outside loop", "break", "illegal break"},
		{"continue outside loop", "continue", "illegal continue"},
		{"return outside function", "return", "illegal return"},
		{"break in function", "while (1) { function f() { break } }", "illegal break"},
		{"undefined label", "while (1) break a", `undefined label "a"`},
		{"continue to block label", "a: { continue a }", "does not denote an iteration"},
		{"continue to nested block label", "a: { while (1) continue a }", "does not denote an iteration"},
		{"continue to sibling label", "a: { } while (1) continue a", `undefined label "a"`},
		{"continue to earlier labeled block", "a: { } a: while (1) { b: { } continue b }", `undefined label "b"`},
		{"duplicate label", "a: a: ;", `label "a" has already been declared`},
		{"nested duplicate label", "a: { b: { a: ; } }", `label "a" has already been declared`},
		{"strict octal", "'use strict'; 010", "octal literals"},
		{"strict octal escape", "'use strict'; '\\01'", "octal escape"},
		{"octal directive before use strict", "'\\01'; 'use strict'", "octal escape"},
		{"regexp flag", "/a/x", "invalid regular expression flag"},
		{"duplicate regexp flag", "/a/gg", "duplicate regular expression flag"},
		{"template escape", "`\\u`", "invalid escape"},
		{"cover initializer", "({a = 1})", "shorthand property initializer"},
		{"new target", "new.target", "new.target"},
		{"super call", "class A { constructor() { super() } }", "super()"},
		{"super property", "function f() { super.x }", "super property"},
		{"yield binding", "function* g() { var yield }", "yield"},
		{"await binding", "async function f() { var await }", "await"},

		{"labeled loop", "a: while (1) { continue a }", ""},
		{"labeled block", "a: { break a }", ""},
		{"nested labeled loop", "a: b: while (1) continue a", ""},
		{"sibling labels", "a: ; a: ;", ""},
		{"switch break", "switch (x) { case 1: break }", ""},
		{"return in function", "function f() { return 1 }", ""},
		{"sloppy octal", "010", ""},
		{"tagged template escape", "tag`\\u`", ""},
		{"new target in function", "function f() { new.target }", ""},
		{"super in method", "({ m() { return super.x } })", ""},
		{"super call in derived", "class A extends B { constructor() { super() } }", ""},
		{"yield outside generator", "var yield", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Parse(tt.src, 0)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if tt.want == "" {
				if len(res.EarlyErrors) != 0 {
					t.Errorf("Parse(%q) early errors = %v, want none", tt.src, res.EarlyErrors)
				}
				return
			}
			if len(res.EarlyErrors) == 0 {
				t.Fatalf("Parse(%q) early errors = none, want %q", tt.src, tt.want)
			}
			if msg := res.EarlyErrors[0].Message; !strings.Contains(msg, tt.want) {
				t.Errorf("Parse(%q) early error = %q, want %q", tt.src, msg, tt.want)
			}
		})
	}
}

// TestParseScriptEarlyErrors tests that ParseScript reports early errors
// as its error.
func TestParseScriptEarlyErrors(t *testing.T) {
	_, err := parser.ParseScript("break; continue")
	var list parser.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("ParseScript() error = %v, want ErrorList", err)
	}
	if len(list) != 2 {
		t.Errorf("errors = %d, want 2", len(list))
	}
	if list[0].Pos.Offset > list[1].Pos.Offset {
		t.Errorf("errors not sorted: %v", list)
	}
}

// TestParseErrorPosition tests that error positions are correct.
func TestParseErrorPosition(t *testing.T) {
	_, err := parser.Parse("a +\n  ;", 0)
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Pos.Line != 2 || pe.Pos.Column != 3 {
		t.Errorf("position = %d:%d, want 2:3", pe.Pos.Line, pe.Pos.Column)
	}

	_, err = parser.Parse("a = 'b", 0)
	var le *lexer.Error
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *lexer.Error", err)
	}
}

// TestParseLocations tests node spans.
func TestParseLocations(t *testing.T) {
	res, err := parser.Parse("x;\na + bc", parser.Locations)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	script := res.Program.(*ast.Script)
	stmt := script.Statements[1].(*ast.ExpressionStatement)
	b := stmt.Expression.(*ast.BinaryExpression)

	tests := []struct {
		name       string
		node       ast.Node
		start, end int
	}{
		{"script", script, 0, 9},
		{"statement", stmt, 3, 9},
		{"binary", b, 3, 9},
		{"right", b.Right, 7, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := res.Locations.Get(tt.node)
			if !ok {
				t.Fatal("no location")
			}
			if span.Start.Offset != tt.start || span.End.Offset != tt.end {
				t.Errorf("span = %d..%d, want %d..%d", span.Start.Offset, span.End.Offset, tt.start, tt.end)
			}
		})
	}
	if span, _ := res.Locations.Get(b.Right); span.Start.Line != 2 || span.Start.Column != 5 {
		t.Errorf("right start = %d:%d, want 2:5", span.Start.Line, span.Start.Column)
	}
}

// TestParseLocationsFieldlessNodes tests that nodes without fields of their
// own keep separate spans.
func TestParseLocationsFieldlessNodes(t *testing.T) {
	res, err := parser.Parse("this;\n;\nthis; debugger; debugger", parser.Locations)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	stmts := res.Program.(*ast.Script).Statements
	first := stmts[0].(*ast.ExpressionStatement).Expression
	second := stmts[2].(*ast.ExpressionStatement).Expression
	if first == second {
		t.Fatal("two this expressions share one node")
	}

	tests := []struct {
		name         string
		node         ast.Node
		line, column int
	}{
		{"first this", first, 1, 1},
		{"empty statement", stmts[1], 2, 1},
		{"second this", second, 3, 1},
		{"first debugger", stmts[3], 3, 7},
		{"second debugger", stmts[4], 3, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := res.Locations.Get(tt.node)
			if !ok {
				t.Fatal("no location")
			}
			if span.Start.Line != tt.line || span.Start.Column != tt.column {
				t.Errorf("start = %d:%d, want %d:%d", span.Start.Line, span.Start.Column, tt.line, tt.column)
			}
		})
	}
}

// TestParseComments tests that comments are collected.
func TestParseComments(t *testing.T) {
	res, err := parser.Parse("a // one\n/* two */ b", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(res.Comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(res.Comments))
	}
	if res.Comments[1].Text != "/* two */" {
		t.Errorf("comment = %q, want %q", res.Comments[1].Text, "/* two */")
	}
	if res.Locations != nil {
		t.Error("Locations set without the Locations mode")
	}
}
