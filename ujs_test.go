package ujs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kolkov/ujs"
	"github.com/kolkov/ujs/internal/ast"
)

func TestCodeGen(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		config *ujs.Config
		want   string
	}{
		{
			name: "grouping kept",
			src:  "(1 + 2) * 3",
			want: "(1+2)*3",
		},
		{
			name: "no redundant parens",
			src:  "1 + 2 * 3",
			want: "1+2*3",
		},
		{
			name: "declaration",
			src:  "var a = (1 + 2) * 3;",
			want: "var a=(1+2)*3",
		},
		{
			name: "return then empty statement",
			src:  "function f(){ return\n; }",
			want: "function f(){return;;}",
		},
		{
			name: "regexp after if",
			src:  "if (1) /x/.test(a)",
			want: "if(1)/x/.test(a)",
		},
		{
			name:   "module",
			src:    "import a from 'm'; export default a;",
			config: &ujs.Config{Goal: ujs.Module},
			want:   `import a from"m";export default a`,
		},
		{
			name:   "pretty",
			src:    "if (a) { b(); } else c;",
			config: &ujs.Config{Pretty: true},
			want:   "if (a) {\n  b();\n} else c;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := ujs.Parse(tt.src, tt.config)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := ujs.Generate(prog, tt.config); got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeGenRoundTrip(t *testing.T) {
	sources := []string{
		"a / b",
		"x = a ? b : c, y = d ** -e",
		"for (let [a, b] of c) { if (a) break; }",
		"L: { break L; }",
		"class A extends (B, C) { static *m() { yield super.m(); } }",
		"new (a.b().c)",
		"async () => { await x; }",
		"`a${b}${`c${d}`}`",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			prog := ujs.MustParseScript(src)
			for _, gen := range []func(*ujs.Program) string{ujs.CodeGen, ujs.PrettyCodeGen} {
				out := gen(prog)
				back, err := ujs.ParseScript(out)
				if err != nil {
					t.Fatalf("reparse %q: %v", out, err)
				}
				if !ast.Equal(prog.Tree(), back.Tree()) {
					t.Errorf("tree of %q differs from original", out)
				}
				if again := gen(back); again != out {
					t.Errorf("not a fixed point: %q then %q", out, again)
				}
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		goal   ujs.Goal
		line   int
		column int
		msg    string
	}{
		{"second default", "switch(x){default:;default:;}", ujs.Script, 1, 20, "default"},
		{"unterminated string", "var a;\n'abc", ujs.Script, 2, 1, "unterminated string"},
		{"import in script", "import a from 'm';", ujs.Script, 1, 1, "module"},
		{"missing paren", "if (a { }", ujs.Script, 1, 7, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ujs.Parse(tt.src, &ujs.Config{Goal: tt.goal})
			var jsErr *ujs.JsError
			if !errors.As(err, &jsErr) {
				t.Fatalf("error = %v (%T), want *JsError", err, err)
			}
			if jsErr.Line != tt.line || jsErr.Column != tt.column {
				t.Errorf("position = %d:%d, want %d:%d", jsErr.Line, jsErr.Column, tt.line, tt.column)
			}
			if !strings.Contains(jsErr.Message, tt.msg) {
				t.Errorf("message = %q, want it to contain %q", jsErr.Message, tt.msg)
			}
		})
	}
}

func TestParseEarlyErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		goal  ujs.Goal
		count int
	}{
		{"free break", "break L;", ujs.Script, 1},
		{"parser and checker", "'use strict'; 010; let a; let a;", ujs.Script, 2},
		{"strict module", "with (a) b; delete c;", ujs.Module, 2},
		{"unresolved export", "export { x };", ujs.Module, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ujs.Parse(tt.src, &ujs.Config{Goal: tt.goal})
			var early ujs.EarlyErrors
			if !errors.As(err, &early) {
				t.Fatalf("error = %v (%T), want EarlyErrors", err, err)
			}
			if len(early) != tt.count {
				t.Fatalf("got %d early errors, want %d: %v", len(early), tt.count, early)
			}
			for i := 1; i < len(early); i++ {
				if early[i-1].Offset > early[i].Offset {
					t.Errorf("errors not ordered by offset: %v", early)
				}
			}
			for _, e := range early {
				if e.Line == 0 {
					t.Errorf("error %q has no position", e.Message)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("labelled break", func(t *testing.T) {
		if errs := ujs.Validate(ujs.MustParseScript("L: { break L; }")); len(errs) != 0 {
			t.Errorf("Validate() = %v, want no errors", errs)
		}
	})

	t.Run("free break", func(t *testing.T) {
		prog := ujs.NewProgram(&ast.Script{
			Statements: []ast.Statement{&ast.BreakStatement{Label: "L"}},
		})
		errs := ujs.Validate(prog)
		if len(errs) != 1 {
			t.Fatalf("Validate() = %v, want 1 error", errs)
		}
		if _, ok := errs[0].Node.(*ast.BreakStatement); !ok {
			t.Errorf("node = %T, want *ast.BreakStatement", errs[0].Node)
		}
	})

	t.Run("hand-built identifier", func(t *testing.T) {
		prog := ujs.NewProgram(&ast.Script{
			Statements: []ast.Statement{
				&ast.ExpressionStatement{Expression: &ast.IdentifierExpression{Name: "a b"}},
			},
		})
		if errs := ujs.Validate(prog); len(errs) != 1 {
			t.Errorf("Validate() = %v, want 1 error", errs)
		}
	})

	t.Run("positions", func(t *testing.T) {
		prog, err := ujs.ParseScriptWithLocation("function f() {}\nlet a = 1;")
		if err != nil {
			t.Fatal(err)
		}
		if errs := ujs.Validate(prog); errs != nil {
			t.Errorf("Validate() = %v, want nil", errs)
		}
	})
}

func TestLocations(t *testing.T) {
	prog, err := ujs.ParseModuleWithLocation("export var a;\n  a = 1;")
	if err != nil {
		t.Fatal(err)
	}
	mod := prog.Tree().(*ast.Module)
	span, ok := prog.Location(mod.Items[1])
	if !ok {
		t.Fatal("no location for second item")
	}
	if span.Start.Line != 2 || span.Start.Column != 3 {
		t.Errorf("start = %v, want 2:3", span.Start)
	}

	this, err := ujs.ParseScriptWithLocation("this;\n;\nthis")
	if err != nil {
		t.Fatal(err)
	}
	stmts := this.Tree().(*ast.Script).Statements
	for i, want := range map[int]int{0: 1, 2: 3} {
		span, _ := this.Location(stmts[i].(*ast.ExpressionStatement).Expression)
		if span.Start.Line != want || span.Start.Column != 1 {
			t.Errorf("this in statement %d starts at %v, want %d:1", i, span.Start, want)
		}
	}

	plain := ujs.MustParseScript("a")
	if _, ok := plain.Location(plain.Tree()); ok {
		t.Error("program parsed without locations reports a location")
	}
}

func TestProgramAccessors(t *testing.T) {
	src := "// lead\na; /* mid */ b"
	prog := ujs.MustParseScript(src)
	if prog.Source() != src {
		t.Errorf("Source() = %q", prog.Source())
	}
	if prog.Goal() != ujs.Script {
		t.Errorf("Goal() = %v, want script", prog.Goal())
	}
	if n := len(prog.Comments()); n != 2 {
		t.Errorf("got %d comments, want 2", n)
	}
	if prog.String() != "a;b" {
		t.Errorf("String() = %q, want %q", prog.String(), "a;b")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	prog := ujs.MustParseScript("var x = [1, , 'a'], y = {b: null};")
	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := ujs.DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if !ast.Equal(prog.Tree(), back.Tree()) {
		t.Errorf("decoded tree differs: %s", data)
	}
	if got := ujs.CodeGen(back); got != `var x=[1,,"a"],y={b:null}` {
		t.Errorf("CodeGen() = %q", got)
	}
}

func TestGoalText(t *testing.T) {
	var g ujs.Goal
	if err := g.UnmarshalText([]byte("Module")); err != nil || g != ujs.Module {
		t.Errorf("UnmarshalText(Module) = %v, %v", g, err)
	}
	if err := g.UnmarshalText([]byte("json")); err == nil {
		t.Error("UnmarshalText(json) succeeded")
	}
	if text, _ := ujs.Script.MarshalText(); string(text) != "script" {
		t.Errorf("MarshalText() = %q", text)
	}
}

func TestMustParseScript(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseScript did not panic on invalid source")
		}
	}()
	ujs.MustParseScript("var = ;")
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		0.5:     ".5",
		1000:    "1e3",
		123.456: "123.456",
	}
	for v, want := range tests {
		if got := ujs.FormatNumber(v); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", v, got, want)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat("function f(a, b) { return a * (b + 1); }\n", 100)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		if _, err := ujs.ParseScript(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodeGen(b *testing.B) {
	prog := ujs.MustParseScript(strings.Repeat("for (var i = 0; i < n; i++) { x += a[i] ** 2; }\n", 100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ujs.CodeGen(prog)
	}
}

func ExampleCodeGen() {
	prog := ujs.MustParseScript("var a = (1 + 2) * 3;")
	fmt.Println(ujs.CodeGen(prog))
	// Output: var a=(1+2)*3
}

func ExampleParse() {
	_, err := ujs.Parse("let a; let a;", nil)
	fmt.Println(err)
	// Output: early error at 1:12: duplicate declaration of "a"
}
