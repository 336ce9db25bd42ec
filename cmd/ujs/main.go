// ujs - ECMAScript parser, checker and code generator
//
// Reads scripts or modules from files or stdin and prints their syntax
// tree as JSON, prints them back as compact or indented source, reports
// their early errors, or checks that printing round-trips.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalState is everything a command touches outside its own flags, so
// that tests can swap in memory-backed files and buffers.
type globalState struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *logrus.Logger
}

func newGlobalState(stdout io.Writer) *globalState {
	return &globalState{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: os.Stderr,
		logger: &logrus.Logger{
			Out:       os.Stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	code := run(context.Background(), newGlobalState(stdout), os.Args[1:])
	stdout.Flush()
	os.Exit(code)
}

// run executes the command line args and returns the exit status.
func run(ctx context.Context, gs *globalState, args []string) int {
	c := newRootCommand(gs)
	c.cmd.SetArgs(args)
	if err := c.cmd.ExecuteContext(ctx); err != nil {
		var failed *failedError
		if !errors.As(err, &failed) {
			fmt.Fprintf(gs.stderr, "ujs: %v\n", err)
		}
		return 1
	}
	return 0
}
