package astjson_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/astjson"
	"github.com/kolkov/ujs/internal/parser"
)

func TestEncodeExpression(t *testing.T) {
	expr, err := parser.ParseExpr("a + 1")
	require.NoError(t, err)

	got, err := astjson.Encode(expr)
	require.NoError(t, err)
	want := `{"type":"BinaryExpression",` +
		`"left":{"type":"IdentifierExpression","name":"a"},` +
		`"operator":"+",` +
		`"right":{"type":"LiteralNumericExpression","value":1}}`
	assert.Equal(t, want, string(got))
}

func TestEncodeAbsentAndHoles(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "hole",
			node: &ast.ArrayExpression{Elements: []ast.SpreadElementExpression{nil, &ast.ThisExpression{}}},
			want: `{"type":"ArrayExpression","elements":[null,{"type":"ThisExpression"}]}`,
		},
		{
			name: "absent label",
			node: &ast.BreakStatement{},
			want: `{"type":"BreakStatement","label":null}`,
		},
		{
			name: "nan",
			node: &ast.LiteralNumericExpression{Value: math.NaN()},
			want: `{"type":"LiteralNumericExpression","value":"NaN"}`,
		},
		{
			name: "declaration kind",
			node: &ast.VariableDeclaration{Kind: ast.Const},
			want: `{"type":"VariableDeclaration","kind":"const","declarators":[]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := astjson.Encode(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"var a = 1, b = 'two', [c, , ...d] = e;",
		"function* f(a = 1, {b, c: [d]}, ...e) { 'use strict'; yield* a; }",
		"class A extends B { static get x() { return super.x; } }",
		"for (let x of y) { if (x) continue; else break; }",
		"switch (a) { case 1: default: case 2: }",
		"function f() { x = a ? b`t${c}` : /re/gi, y **= -z, new.target }",
		"label: try { throw new Error(1e21) } catch (e) {} finally {}",
		"x = async (a, b) => await a + b",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			script, err := parser.ParseScript(src)
			require.NoError(t, err)
			data, err := astjson.Encode(script)
			require.NoError(t, err)
			back, err := astjson.DecodeProgram(data)
			require.NoError(t, err)
			assert.True(t, ast.Equal(script, back), "decoded tree differs for %s", data)
		})
	}
}

func TestRoundTripModule(t *testing.T) {
	module, err := parser.ParseModule(`import a, {b as c} from "m"; export {a as d}; export default class {}`)
	require.NoError(t, err)
	data, err := astjson.Encode(module)
	require.NoError(t, err)
	back, err := astjson.Decode(data)
	require.NoError(t, err)
	assert.True(t, ast.Equal(module, back))
}

func TestEncodeLocations(t *testing.T) {
	res, err := parser.Parse("a;", parser.Locations)
	require.NoError(t, err)
	data, err := astjson.EncodeWith(res.Program, astjson.Options{Locations: res.Locations})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"loc":{"start":{"line":1,"column":1,"offset":0}`)

	// locations are ignored when decoding
	back, err := astjson.Decode(data)
	require.NoError(t, err)
	assert.True(t, ast.Equal(res.Program, back))
}

func TestEncodeIndent(t *testing.T) {
	script, err := parser.ParseScript("a; b; c;")
	require.NoError(t, err)
	data, err := astjson.EncodeWith(script, astjson.Options{Indent: true})
	require.NoError(t, err)
	assert.Greater(t, strings.Count(string(data), "\n"), 3)
	back, err := astjson.Decode(data)
	require.NoError(t, err)
	assert.True(t, ast.Equal(script, back))
}

func TestDecodeNumbers(t *testing.T) {
	for _, tt := range []struct {
		json string
		want float64
	}{
		{`{"type":"LiteralNumericExpression","value":0.1}`, 0.1},
		{`{"type":"LiteralNumericExpression","value":"Infinity"}`, math.Inf(1)},
		{`{"type":"LiteralNumericExpression","value":5e-324}`, 5e-324},
	} {
		n, err := astjson.Decode([]byte(tt.json))
		require.NoError(t, err, tt.json)
		assert.Equal(t, tt.want, n.(*ast.LiteralNumericExpression).Value)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{"type":`, "invalid JSON"},
		{"not an object", `[1]`, "expected a node"},
		{"missing type", `{"name":"a"}`, `missing "type"`},
		{"unknown type", `{"type":"Frobnicate"}`, `unknown node type "Frobnicate"`},
		{"missing scalar", `{"type":"IdentifierExpression"}`, "name: missing field"},
		{"wrong scalar", `{"type":"IdentifierExpression","name":1}`, "expected a string"},
		{"bad operator", `{"type":"UnaryExpression","operator":"~~","operand":{"type":"ThisExpression"}}`, "operator"},
		{"missing child", `{"type":"ThrowStatement","expression":null}`, "expression: missing required node"},
		{"wrong child kind", `{"type":"ThrowStatement","expression":{"type":"EmptyStatement"}}`, "EmptyStatement is not allowed here"},
		{"null in list", `{"type":"Block","statements":[null]}`, "statements[0]: null is not allowed here"},
		{"not a list", `{"type":"Block","statements":{}}`, "expected an array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := astjson.Decode([]byte(tt.json))
			require.Error(t, err)
			var derr *astjson.Error
			assert.True(t, errors.As(err, &derr))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeProgramRejectsOtherNodes(t *testing.T) {
	_, err := astjson.DecodeProgram([]byte(`{"type":"ThisExpression"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ThisExpression is not a program")
}
