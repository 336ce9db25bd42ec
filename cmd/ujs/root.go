package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kolkov/ujs"
)

// rootCommand holds the state shared by all subcommands.
type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command

	configPath string
	opts       options
	config     *ujs.Config
	verbose    bool
	noColor    bool
	fromJSON   bool

	errColor *color.Color
	okColor  *color.Color
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{
		gs:       gs,
		errColor: color.New(color.FgRed),
		okColor:  color.New(color.FgGreen),
	}
	c.cmd = &cobra.Command{
		Use:               "ujs",
		Short:             "parse, check and print ECMAScript programs",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetVersionTemplate(fmt.Sprintf("ujs version {{.Version}}\n  commit: %s\n  built:  %s\n", commit, date))
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootFlagSet())
	c.cmd.AddCommand(
		c.parseCmd(),
		c.genCmd(),
		c.validateCmd(),
		c.checkCmd(),
	)
	return c
}

func (c *rootCommand) rootFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringVarP(&c.configPath, "config", "c", defaultConfigFile, "YAML config file")
	flags.StringVarP(&c.opts.Goal, "goal", "g", "script", "grammar goal: script or module")
	flags.IntVarP(&c.opts.Workers, "workers", "j", 0, "files processed in parallel (default: number of CPUs)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log every processed file")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.gs.logger.SetLevel(logrus.DebugLevel)
	}
	if c.noColor {
		c.errColor.DisableColor()
		c.okColor.DisableColor()
	}

	file, err := loadOptions(c.gs.fs, c.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	c.merge(cmd.Flags(), file)
	if c.config, err = c.opts.config(); err != nil {
		return err
	}
	c.gs.logger.WithFields(logrus.Fields{
		"version": version,
		"goal":    c.config.Goal,
		"workers": c.workers(),
	}).Debug("ujs starting")
	return nil
}

// merge fills in the options whose flags were not given from the config
// file.
func (c *rootCommand) merge(flags *pflag.FlagSet, file options) {
	if !flags.Changed("goal") && file.Goal != "" {
		c.opts.Goal = file.Goal
	}
	if !flags.Changed("workers") && file.Workers > 0 {
		c.opts.Workers = file.Workers
	}
	if !flags.Changed("pretty") && file.Pretty {
		c.opts.Pretty = true
	}
	if !flags.Changed("indent") && file.Indent {
		c.opts.Indent = true
	}
	if !flags.Changed("locations") && file.Locations {
		c.opts.Locations = true
	}
}

func (c *rootCommand) workers() int {
	if c.opts.Workers > 0 {
		return c.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}
