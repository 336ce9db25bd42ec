package codegen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/codegen"
	"github.com/kolkov/ujs/internal/parser"
)

func parseScript(t testing.TB, src string) *ast.Script {
	t.Helper()
	script, err := parser.ParseScript(src)
	require.NoError(t, err, "ParseScript(%q)", src)
	return script
}

func parseModule(t testing.TB, src string) *ast.Module {
	t.Helper()
	module, err := parser.ParseModule(src)
	require.NoError(t, err, "ParseModule(%q)", src)
	return module
}

func TestGenerateCompact(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// precedence
		{"a + b * c", "a+b*c"},
		{"(a + b) * c", "(a+b)*c"},
		{"a - (b - c)", "a-(b-c)"},
		{"(a - b) - c", "a-b-c"},
		{"a ** b ** c", "a**b**c"},
		{"(a ** b) ** c", "(a**b)**c"},
		{"(-a) ** b", "(-a)**b"},
		{"a = b, c", "a=b,c"},
		{"a ? b : c ? d : e", "a?b:c?d:e"},
		{"(a ? b : c) ? d : e", "(a?b:c)?d:e"},
		{"(a, b) => a", "(a,b)=>a"},
		{"x => ({})", "x=>({})"},
		{"(x => x)()", "(x=>x)()"},
		{"a()()", "a()()"},
		{"a.b().c", "a.b().c"},
		{"new (a())()", "new(a())"},
		{"new (a().b)", "new(a().b)"},
		{"new new a()()", "new new a"},
		{"(new a).b", "(new a).b"},
		{"new a(1).b", "new a(1).b"},
		{"-(-a)", "- -a"},
		{"-(a ** b)", "-(a**b)"},
		{"typeof a", "typeof a"},

		// token separation
		{"a + +b", "a+ +b"},
		{"a - --b", "a- --b"},
		{"a++ + b", "a++ +b"},
		{"1..toString()", "1 .toString()"},
		{"1.5.toString()", "1.5.toString()"},
		{"a / /b/g", "a/ /b/g"},
		{"/a/ in b", "/a/ in b"},
		{"a < !--b", "a< !--b"},
		{"a in b", "a in b"},

		// statement starts
		{"x = function(){}", "x=function(){}"},
		{"(function(){})()", "(function(){}())"},
		{"(class {})", "(class{})"},
		{"({a: 1})", "({a:1})"},
		{"({}).x", "({}.x)"},
		{"({a} = b)", "({a}=b)"},

		// statements
		{"a; b", "a;b"},
		{"{ a }", "{a}"},
		{"if (a) { if (b) c; } else d;", "if(a){if(b)c}else d"},
		{"if (a) b; else if (c) d; else e", "if(a)b;else if(c)d;else e"},
		{"do a; while (b)", "do a;while(b)"},
		{"label: for (;;) break label;", "label:for(;;)break label"},
		{"for (a in b);", "for(a in b);"},
		{"for (var a of b) c", "for(var a of b)c"},
		{"for (var a = (b in c);;);", "for(var a=(b in c);;);"},
		{"for (var i = 0; i < n; i++) {}", "for(var i=0;i<n;i++){}"},
		{"switch (a) { case 1: b; default: c }", "switch(a){case 1:b;default:c}"},
		{"try { a } catch (e) { b } finally { c }", "try{a}catch(e){b}finally{c}"},
		{"function f(){ return\n; }", "function f(){return;;}"},
		{"var [, a, ,] = b;", "var[,a,,]=b"},
		{"var {a, b: [c] = d} = e", "var{a,b:[c]=d}=e"},
		{"[a, , ...b] = c", "[a,,...b]=c"},

		// functions and classes
		{"async function f() { await a; }", "async function f(){await a}"},
		{"function* g() { yield* a; yield; }", "function*g(){yield*a;yield}"},
		{"class A extends B { static m() {} get x() {} set x(v) {} }", "class A extends B{static m(){}get x(){}set x(v){}}"},
		{"function f(a = 1, ...b) {}", "function f(a=1,...b){}"},

		// literals
		{"x = 'it\\'s'", `x="it's"`},
		{`x = 'a"b'`, `x='a"b'`},
		{"x = '\\u2028'", `x="\u2028"`},
		{"x = 'a\\nb'", `x="a\nb"`},
		{"x = 0.5", "x=.5"},
		{"x = 1000000", "x=1e6"},
		{"x = 2e308", "x=2e308"},
		{"({'a b': 1, 2: 3, 'c': 4, '01': 5})", `({"a b":1,2:3,c:4,"01":5})`},
		{"`a${b}c`", "`a${b}c`"},
		{"a`x${y}`", "a`x${y}`"},
		{"x = /a/gi", "x=/a/gi"},

		// directives
		{"'use strict'; ('a');", `"use strict";("a")`},
		{`'a"b'`, `'a"b'`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := codegen.Generate(parseScript(t, tt.src), false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateModule(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"import a, {b as c} from 'm';", `import a,{b as c}from"m"`},
		{"import * as ns from 'm';", `import*as ns from"m"`},
		{"import 'm';", `import"m"`},
		{"export * from 'm';", `export*from"m"`},
		{"export {a as b} from 'm';", `export{a as b}from"m"`},
		{"var a; export {a as b};", "var a;export{a as b}"},
		{"export default function(){}", "export default function(){}"},
		{"export default (function(){});", "export default(function(){})"},
		{"export default a + b;", "export default a+b"},
		{"export const a = 1;", "export const a=1"},
		{"export class A {}", "export class A{}"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := codegen.Generate(parseModule(t, tt.src), false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratePretty(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a; b", "a;\nb;"},
		{"var a = {x: 1, y}", "var a = {x: 1, y};"},
		{"if (a) { b(); } else c;", "if (a) {\n  b();\n} else c;"},
		{"function f(a, b) { return a + b; }", "function f(a, b) {\n  return a + b;\n}"},
		{"switch (a) { case 1: b; default: }", "switch (a) {\n  case 1:\n    b;\n  default:\n}"},
		{"for (;;) {}", "for (;;) {}"},
		{"while (a) { if (b) { c } }", "while (a) {\n  if (b) {\n    c;\n  }\n}"},
		{"x = a ? b : c", "x = a ? b : c;"},
		{"f(a, b)", "f(a, b);"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := codegen.Generate(parseScript(t, tt.src), true)
			assert.Equal(t, tt.want, got)
		})
	}
}

// roundTripSources are programs whose generated text must parse back to
// an equal tree in both output modes.
var roundTripSources = []string{
	"a + b * c - (d - e) / f % g",
	"a = b ? c : d, e",
	"x = a || b && c | d ^ e & f == g < h << i + j * k ** l",
	"a[b](c).d`e${f}g`",
	"new a.b[c](d)",
	"new (a())",
	"(new a)()",
	"delete a[b], void 0, typeof c",
	"!function(){}()",
	"(async function(){ await (a, b); })",
	"(async (a) => { await a; })",
	"f(...a, b, ...c)",
	"[...a, , b, ,]",
	"({a, b: c, [d]: e, f() {}, get g() { return 1; }, set g(v) {}, *h() {}, async i() {}})",
	"var {a = 1, b: {c}} = e",
	"let [a, [b] = [], ...c] = d",
	"({a, b: [c = 1]} = d)",
	"for (let [a, b] of c) for (const d in e) ;",
	"for (var a = b ? c : (d in e); a; a--) ;",
	"outer: while (a) { inner: do continue outer; while (b); }",
	"try { throw a } catch ({message}) { }",
	"switch (a) { case b: case c: d(); break; default: e(); case f: }",
	"if (a) if (b) c; else d;",
	"if (a) for (;;) if (b) c; else d; else e;",
	"with (a) b",
	"class A extends (B, C) { constructor() { super(); } static [a]() { super.b; } }",
	"(class extends A {})",
	"function f() { 'use strict'; return new.target; }",
	"function* g() { yield a, yield* b; }",
	"x = `a${`b${c}`}`",
	"x = 0xFFFFFFFFFFFF + 1e-7 + 1.5e300 + 5e-324",
	"x = '\\0\\x01\\u00ff\\uD800\\t'",
	"a = /[/]\\//g.test(b)",
	"a\n++b",
	"debugger; ;",
	"x = y => z => ({w})",
	"x = async y => y",
	"a = b ** -c",
	"(-1) ** 2",
	"'use strict'; 'second'; third",
	"{'\x80'}",
	"x = '\xed\xa0\x80' + `\x80${a}`",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTripSources {
		for _, pretty := range []bool{false, true} {
			t.Run(src, func(t *testing.T) {
				orig := parseScript(t, src)
				out := codegen.Generate(orig, pretty)
				again, err := parser.ParseScript(out)
				require.NoError(t, err, "generated %q", out)
				assert.True(t, ast.Equal(orig, again), "generated %q parses to a different tree", out)
				assert.Equal(t, out, codegen.Generate(again, pretty), "output is not a fixed point")
			})
		}
	}
}

func TestGenerateHandBuilt(t *testing.T) {
	id := func(name string) *ast.IdentifierExpression { return &ast.IdentifierExpression{Name: name} }
	num := func(v float64) *ast.LiteralNumericExpression { return &ast.LiteralNumericExpression{Value: v} }
	exprStmt := func(e ast.Expression) *ast.ExpressionStatement { return &ast.ExpressionStatement{Expression: e} }

	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "grouped sum",
			node: &ast.BinaryExpression{
				Left:     &ast.BinaryExpression{Left: num(1), Operator: ast.OpAdd, Right: num(2)},
				Operator: ast.OpMul,
				Right:    num(3),
			},
			want: "(1+2)*3",
		},
		{
			name: "dangling else",
			node: &ast.IfStatement{
				Test:       id("a"),
				Consequent: &ast.IfStatement{Test: id("b"), Consequent: exprStmt(id("c"))},
				Alternate:  exprStmt(id("d")),
			},
			want: "if(a){if(b)c}else d",
		},
		{
			name: "let bracket",
			node: exprStmt(&ast.AssignmentExpression{
				Binding:    &ast.ComputedMemberAssignmentTarget{Object: id("let"), Expression: id("a")},
				Expression: num(1),
			}),
			want: "(let[a]=1)",
		},
		{
			name: "let in for-of head",
			node: &ast.ForOfStatement{
				Left:  &ast.AssignmentTargetIdentifier{Name: "let"},
				Right: id("a"),
				Body:  &ast.EmptyStatement{},
			},
			want: "for((let)of a);",
		},
		{
			name: "in inside for init",
			node: &ast.ForStatement{
				Init: &ast.BinaryExpression{Left: id("a"), Operator: ast.OpIn, Right: id("b")},
				Body: &ast.EmptyStatement{},
			},
			want: "for((a in b);;);",
		},
		{
			name: "hole at end",
			node: &ast.ArrayExpression{Elements: []ast.SpreadElementExpression{id("a"), nil}},
			want: "[a,,]",
		},
		{
			name: "non-identifier property",
			node: &ast.StaticMemberExpression{Object: id("a"), Property: "b"},
			want: "a.b",
		},
		{
			name: "infinity",
			node: &ast.LiteralInfinityExpression{},
			want: "2e308",
		},
		{
			name: "default export name",
			node: &ast.FunctionDeclaration{
				Name:   &ast.BindingIdentifier{Name: "*default*"},
				Params: &ast.FormalParameters{},
				Body:   &ast.FunctionBody{},
			},
			want: "function(){}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codegen.Generate(tt.node, false))
		})
	}
}

type bogus struct{}

func (bogus) Type() ast.Kind { return ast.KindInvalid }

func TestGenerateUnknownNode(t *testing.T) {
	assert.Equal(t, "", codegen.Generate(nil, false))
	assert.Panics(t, func() { codegen.Generate(bogus{}, false) })
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, ".5"},
		{1000, "1e3"},
		{123, "123"},
		{math.Inf(1), "2e308"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codegen.FormatNumber(tt.v), "FormatNumber(%v)", tt.v)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, src := range roundTripSources {
		f.Add(src)
	}
	f.Fuzz(func(t *testing.T, src string) {
		orig, err := parser.ParseScript(src)
		if err != nil {
			return
		}
		for _, pretty := range []bool{false, true} {
			out := codegen.Generate(orig, pretty)
			again, err := parser.ParseScript(out)
			if err != nil {
				t.Fatalf("Generate(%q) = %q, which does not parse: %v", src, out, err)
			}
			if !ast.Equal(orig, again) {
				t.Fatalf("Generate(%q) = %q, which parses to a different tree", src, out)
			}
		}
	})
}
