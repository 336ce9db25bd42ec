package parser_test

import (
	"testing"

	"github.com/kolkov/ujs/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		";",
		"{}",
		"a",

		// Declarations
		"var a = 1, b",
		"let [a, , ...b] = c",
		"const {a, b: [c] = d} = e",
		"function f(a, b = 1, ...c) { return a + b }",
		"function* g() { yield; yield* x }",
		"async function f() { await x }",
		"class A extends B { constructor() { super() } static m() {} get x() {} set x(v) {} }",

		// Statements
		"if (a) b; else c",
		"for (var i = 0; i < 10; i++) {}",
		"for (x in o) ;",
		"for (let [a, b] of c) ;",
		"while (a) { break }",
		"do a; while (b)",
		"l: for (;;) continue l",
		"switch (x) { case 1: a; default: b; case 2: c }",
		"try {} catch (e) {} finally {}",
		"with (a) b",
		"throw a",
		"debugger",

		// Expressions
		"a = b ? c : d",
		"a ** b ** c",
		"(-a) ** b",
		"a, b, c",
		"x => x * 2",
		"async (a, b) => { await a }",
		"({a = 1} = b)",
		"[a, ...b] = c",
		"new a.b(c)",
		"new.target",
		"a?.b",
		"`a${b}c${d}`",
		"tag`x\\u`",
		"/re/gimuy.test(s)",
		"a / b / c",
		"0x10 + 0o7 + 0b1 + 010 + 1e3",
		"'use strict'; 010",
		"({get a() {}, set a(v) {}, *g() {}, async m() {}, [k]: v})",
		"a\n++b",
		"return",
	}

	for _, src := range seeds {
		f.Add(src)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		for _, mode := range []parser.Mode{0, parser.ModuleGoal | parser.Locations} {
			res, err := parser.Parse(src, mode)
			if err == nil && res.Program == nil {
				t.Fatalf("Parse(%q) returned nil program without error", src)
			}
		}
	})
}

// FuzzParseExpr tests expression parsing with random inputs.
func FuzzParseExpr(f *testing.F) {
	exprs := []string{
		"a + b * c",
		"a ? b : c",
		"(a, b) => a",
		"[...a]",
		"{a, b: c}",
		"f(...a)",
		"a++",
		"--a",
		"typeof a",
		"x = /a/",
	}

	for _, expr := range exprs {
		f.Add(expr)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		_, _ = parser.ParseExpr(src)
	})
}
