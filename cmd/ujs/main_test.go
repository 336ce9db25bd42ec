package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testState struct {
	*globalState
	stdout, stderr *bytes.Buffer
}

func newTestState(t *testing.T, stdin string, files map[string]string) *testState {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	return &testState{
		globalState: &globalState{
			fs:     fs,
			stdin:  strings.NewReader(stdin),
			stdout: stdout,
			stderr: stderr,
			logger: &logrus.Logger{
				Out:       stderr,
				Formatter: &logrus.TextFormatter{DisableColors: true},
				Hooks:     make(logrus.LevelHooks),
				Level:     logrus.InfoLevel,
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func (ts *testState) run(args ...string) int {
	return run(context.Background(), ts.globalState, append([]string{"--no-color"}, args...))
}

func TestGen(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		files map[string]string
		want  string
	}{
		{
			name:  "stdin",
			args:  []string{"gen"},
			stdin: "var a = (1 + 2) * 3;",
			want:  "var a=(1+2)*3\n",
		},
		{
			name:  "file",
			args:  []string{"gen", "a.js"},
			files: map[string]string{"a.js": "if (a) { b(); }"},
			want:  "if(a){b()}\n",
		},
		{
			name:  "pretty",
			args:  []string{"gen", "--pretty", "a.js"},
			files: map[string]string{"a.js": "if (a) { b(); }"},
			want:  "if (a) {\n  b();\n}\n",
		},
		{
			name:  "module goal",
			args:  []string{"gen", "--goal", "module", "-"},
			stdin: "export default 1 + 1;",
			want:  "export default 1+1\n",
		},
		{
			name: "argument order kept",
			args: []string{"gen", "-j", "2", "c.js", "a.js", "b.js"},
			files: map[string]string{
				"a.js": "a = 1",
				"b.js": "b = 2",
				"c.js": "c = 3",
			},
			want: "c=3\na=1\nb=2\n",
		},
		{
			name:  "json input",
			args:  []string{"gen", "--json"},
			stdin: `{"type":"Script","directives":[],"statements":[{"type":"DebuggerStatement"}]}`,
			want:  "debugger\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestState(t, tt.stdin, tt.files)
			assert.Equal(t, 0, ts.run(tt.args...), ts.stderr.String())
			assert.Equal(t, tt.want, ts.stdout.String())
		})
	}
}

func TestParse(t *testing.T) {
	ts := newTestState(t, "x;", nil)
	require.Equal(t, 0, ts.run("parse"), ts.stderr.String())
	assert.Equal(t,
		`{"type":"Script","directives":[],"statements":[{"type":"ExpressionStatement","expression":{"type":"IdentifierExpression","name":"x"}}]}`+"\n",
		ts.stdout.String())

	ts = newTestState(t, "x;", nil)
	require.Equal(t, 0, ts.run("parse", "--indent", "--locations"), ts.stderr.String())
	out := ts.stdout.String()
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, `"loc"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestParseThenGenJSON(t *testing.T) {
	ts := newTestState(t, "for (let i of xs) f(i);", nil)
	require.Equal(t, 0, ts.run("parse"))
	tree := ts.stdout.String()

	ts = newTestState(t, tree, nil)
	require.Equal(t, 0, ts.run("gen", "--json"), ts.stderr.String())
	assert.Equal(t, "for(let i of xs)f(i)\n", ts.stdout.String())
}

func TestValidate(t *testing.T) {
	files := map[string]string{
		"ok.js":     "L: { break L; }",
		"early.js":  "let a;\nlet a;\nbreak M;",
		"syntax.js": "var = 1;",
	}
	ts := newTestState(t, "", files)
	assert.Equal(t, 1, ts.run("validate", "ok.js", "early.js", "syntax.js", "missing.js"))
	assert.Equal(t, "ok.js: ok\n", ts.stdout.String())

	stderr := ts.stderr.String()
	assert.Contains(t, stderr, `early.js:2:5: duplicate declaration of "a"`)
	assert.Contains(t, stderr, `early.js:3:1: undefined label "M"`)
	assert.Contains(t, stderr, "syntax.js:1:5: ")
	assert.Contains(t, stderr, "missing.js: reading input")
	assert.NotContains(t, stderr, "ujs:")
}

func TestValidateJSON(t *testing.T) {
	tree := `{"type":"Script","directives":[],"statements":[{"type":"BreakStatement","label":"L"}]}`
	ts := newTestState(t, tree, nil)
	assert.Equal(t, 1, ts.run("validate", "--json"))
	assert.Contains(t, ts.stderr.String(), "-: BreakStatement: ")

	ts = newTestState(t, `{"type":"Script"}`, nil)
	assert.Equal(t, 1, ts.run("validate", "--json"))
	assert.Contains(t, ts.stderr.String(), "-: astjson: directives: expected an array")
}

func TestCheck(t *testing.T) {
	files := map[string]string{
		"a.js": "x = a ? (b, c) : d => ({}); if (a) { if (b) c; } else d;",
		"b.js": "class A extends B { static *[k]() { yield super[k]; } }",
	}
	ts := newTestState(t, "", files)
	assert.Equal(t, 0, ts.run("check", "a.js", "b.js"), ts.stderr.String())
	assert.Equal(t, "a.js: ok\nb.js: ok\n", ts.stdout.String())
}

func TestLineDiff(t *testing.T) {
	got := lineDiff("a\nb\nc\n", "a\nx\nc\n")
	assert.Equal(t, "  a\n- b\n+ x\n  c\n", got)
}

func TestConfigFile(t *testing.T) {
	files := map[string]string{
		".ujs.yaml": "goal: module\npretty: true\n",
		"m.js":      "import a from 'm'; export { a };",
	}

	ts := newTestState(t, "", files)
	require.Equal(t, 0, ts.run("gen", "m.js"), ts.stderr.String())
	assert.Equal(t, "import a from \"m\";\nexport {a};\n", ts.stdout.String())

	// flags win over the file
	ts = newTestState(t, "", files)
	assert.Equal(t, 1, ts.run("gen", "--goal", "script", "m.js"))
	assert.Contains(t, ts.stderr.String(), "m.js:1:1: ")
}

func TestConfigErrors(t *testing.T) {
	ts := newTestState(t, "", map[string]string{"bad.yaml": "goal: [1"})
	assert.Equal(t, 1, ts.run("-c", "bad.yaml", "gen"))
	assert.Contains(t, ts.stderr.String(), "ujs: parsing config bad.yaml")

	ts = newTestState(t, "", nil)
	assert.Equal(t, 1, ts.run("-c", "none.yaml", "gen"))
	assert.Contains(t, ts.stderr.String(), "ujs: reading config")

	ts = newTestState(t, "", nil)
	assert.Equal(t, 1, ts.run("--goal", "json", "gen"))
	assert.Contains(t, ts.stderr.String(), `unknown goal "json"`)
}

func TestVerboseLogging(t *testing.T) {
	ts := newTestState(t, "", map[string]string{"a.js": "a"})
	require.Equal(t, 0, ts.run("-v", "gen", "a.js"))
	logs := ts.stderr.String()
	assert.Contains(t, logs, "file=a.js")
	assert.Contains(t, logs, "bytes=1")
	assert.Contains(t, logs, "goal=script")
}

func TestVersion(t *testing.T) {
	ts := newTestState(t, "", nil)
	require.Equal(t, 0, ts.run("--version"))
	assert.Contains(t, ts.stdout.String(), "ujs version dev")
}
