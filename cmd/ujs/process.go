package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/ujs"
)

// stdinName names standard input in arguments and messages.
const stdinName = "-"

type source struct {
	name string
	text string
}

type result struct {
	out string
	err error
}

// failedError is returned when some inputs failed. Each failure has
// already been reported.
type failedError struct {
	failed, total int
}

func (e *failedError) Error() string {
	return fmt.Sprintf("%d of %d inputs failed", e.failed, e.total)
}

// process applies fn to every named input, or to stdin if there are
// none. Inputs are handled concurrently, at most workers at a time, and
// the outputs are written in argument order. A failing input is
// reported and does not stop the others.
func (c *rootCommand) process(ctx context.Context, names []string, fn func(source) (string, error)) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}
	var stdin string
	for _, name := range names {
		if name == stdinName {
			data, err := io.ReadAll(c.gs.stdin)
			if err != nil {
				return errors.Wrap(err, "reading stdin")
			}
			stdin = string(data)
			break
		}
	}

	results := make([]result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers())
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := source{name: name, text: stdin}
			if name != stdinName {
				data, err := c.readFile(name)
				if err != nil {
					results[i].err = err
					return nil
				}
				src.text = data
			}
			start := time.Now()
			out, err := fn(src)
			c.gs.logger.WithFields(logrus.Fields{
				"file":     name,
				"goal":     c.config.Goal,
				"bytes":    len(src.text),
				"duration": time.Since(start),
			}).Debug("processed")
			results[i] = result{out: out, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			c.report(names[i], r.err)
			continue
		}
		if _, err := io.WriteString(c.gs.stdout, r.out); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	if failed > 0 {
		return &failedError{failed: failed, total: len(names)}
	}
	return nil
}

func (c *rootCommand) readFile(name string) (string, error) {
	data, err := afero.ReadFile(c.gs.fs, name)
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return string(data), nil
}

// report writes the errors of one input to stderr, one per line, each
// prefixed with the input name and the source position if known. A
// round-trip mismatch is followed by its diff.
func (c *rootCommand) report(name string, err error) {
	for _, line := range errorLines(err) {
		c.errColor.Fprintf(c.gs.stderr, "%s:%s\n", name, line)
	}
	var mismatch *mismatchError
	if errors.As(err, &mismatch) {
		io.WriteString(c.gs.stderr, mismatch.diff)
	}
}

func errorLines(err error) []string {
	var jsErr *ujs.JsError
	if errors.As(err, &jsErr) {
		return []string{fmt.Sprintf("%d:%d: %s", jsErr.Line, jsErr.Column, jsErr.Message)}
	}
	var early ujs.EarlyErrors
	if errors.As(err, &early) {
		return validationLines(early)
	}
	return []string{" " + err.Error()}
}

func validationLines(errs []*ujs.ValidationError) []string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		if e.Line > 0 {
			lines[i] = fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
		} else {
			lines[i] = " " + e.Error()
		}
	}
	return lines
}
