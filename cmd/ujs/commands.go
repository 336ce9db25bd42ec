package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/kolkov/ujs"
	"github.com/kolkov/ujs/internal/ast"
)

func (c *rootCommand) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file ...]",
		Short: "Print the syntax tree as JSON",
		Example: `
  # Print the tree of a module, one JSON document per line.
  ujs parse --goal module app.js

  # Indented output with source locations.
  ujs parse --indent --locations < app.js`[1:],
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.process(cmd.Context(), args, func(src source) (string, error) {
				prog, err := ujs.Parse(src.text, c.config)
				if err != nil {
					return "", err
				}
				data, err := prog.JSON(c.opts.Indent)
				if err != nil {
					return "", err
				}
				return strings.TrimSuffix(string(data), "\n") + "\n", nil
			})
		},
	}
	cmd.Flags().BoolVar(&c.opts.Indent, "indent", false, "indent the JSON output")
	cmd.Flags().BoolVar(&c.opts.Locations, "locations", false, `add a "loc" member to every node`)
	return cmd
}

func (c *rootCommand) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [file ...]",
		Short: "Print programs back as source",
		Long: `Print programs back as source. The compact form is the shortest text
that parses back to the same tree; --pretty prints one statement per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.process(cmd.Context(), args, func(src source) (string, error) {
				prog, err := c.load(src)
				if err != nil {
					return "", err
				}
				return ujs.Generate(prog, c.config) + "\n", nil
			})
		},
	}
	cmd.Flags().BoolVarP(&c.opts.Pretty, "pretty", "p", false, "indent the output")
	cmd.Flags().BoolVar(&c.fromJSON, "json", false, "read the JSON tree format instead of source")
	return cmd
}

func (c *rootCommand) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file ...]",
		Short: "Report every syntax and early error",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.process(cmd.Context(), args, func(src source) (string, error) {
				if _, err := c.load(src); err != nil {
					return "", err
				}
				return c.okColor.Sprintf("%s: ok", src.name) + "\n", nil
			})
		},
	}
	cmd.Flags().BoolVar(&c.fromJSON, "json", false, "read the JSON tree format instead of source")
	return cmd
}

func (c *rootCommand) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file ...]",
		Short: "Check that printed programs parse back to the same tree",
		Long: `Check that the compact and the pretty output of every program parse
back to a tree equal to the original, and that printing again gives the
same text. A failure is shown as a diff.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.process(cmd.Context(), args, c.roundTrip)
		},
	}
}

// load reads a program from source, or from the JSON tree format if
// --json was given. Decoded trees are validated like parsed ones.
func (c *rootCommand) load(src source) (*ujs.Program, error) {
	if !c.fromJSON {
		return ujs.Parse(src.text, c.config)
	}
	prog, err := ujs.DecodeJSON([]byte(src.text))
	if err != nil {
		return nil, err
	}
	if errs := ujs.Validate(prog); errs != nil {
		return nil, ujs.EarlyErrors(errs)
	}
	return prog, nil
}

// mismatchError is a failed round trip.
type mismatchError struct {
	what string
	diff string
}

func (e *mismatchError) Error() string {
	return e.what
}

func (c *rootCommand) roundTrip(src source) (string, error) {
	prog, err := ujs.Parse(src.text, c.config)
	if err != nil {
		return "", err
	}
	reparse := &ujs.Config{Goal: c.config.Goal}
	for _, pretty := range []bool{false, true} {
		mode := "compact"
		if pretty {
			mode = "pretty"
		}
		out := prog.Generate(pretty)
		back, err := ujs.Parse(out, reparse)
		if err != nil {
			return "", errors.Errorf("%s output does not parse: %v", mode, err)
		}
		if !ast.Equal(prog.Tree(), back.Tree()) {
			return "", &mismatchError{
				what: mode + " output parses to a different tree",
				diff: lineDiff(ast.String(prog.Tree()), ast.String(back.Tree())),
			}
		}
		if again := back.Generate(pretty); again != out {
			return "", &mismatchError{
				what: mode + " output changes when printed again",
				diff: lineDiff(out, again),
			}
		}
	}
	return c.okColor.Sprintf("%s: ok", src.name) + "\n", nil
}

// lineDiff renders a line-by-line diff of a and b with "-" and "+"
// markers.
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		marker := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+ "
		case diffmatchpatch.DiffDelete:
			marker = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(marker)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
