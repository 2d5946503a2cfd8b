// The globbench command times glob engines against a table of patterns
// under a search path, printing one line per case:
//
//	engine,case,pattern,count,millis
//
// Example:
//
//	$ globbench --engine dirglob --engine stdlib ~/src/swift
//	dirglob,basic,stdlib/public/*/*.swift,1342,9.871
//	dirglob,intermediate,lib/SILOptimizer/*/*.cpp,412,2.310
//	dirglob,advanced,lib/*/[A-Z]*.cpp,1720,11.002
//	stdlib,basic,stdlib/public/*/*.swift,1342,10.458
//	...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/DrJosh9000/dirglob/internal/bench"
	"github.com/DrJosh9000/dirglob/internal/console"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type benchOptions struct {
	casesFile string
	engines   []string
	sort      bool
	hidden    bool
	noFollow  bool
	repeat    int
	traceFile string
	noColor   bool
	logLevel  string
	verbose   bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "globbench [flags] <search_path>",
		Short: "Time glob engines against a table of patterns",
		Long: `globbench runs each benchmark case against each selected engine, with the
patterns taken relative to search_path, and prints one line per case:

	engine,case,pattern,count,millis

Cases that fail are reported on stderr; the remaining cases still run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts, args[0], stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.casesFile, "cases", "", "YAML `file` with the case table (default: built-in cases)")
	f.StringArrayVar(&opts.engines, "engine", []string{bench.EngineDirglob}, "engine to run (repeatable): dirglob, doublestar, gobwas, stdlib")
	f.BoolVar(&opts.sort, "sort", false, "sort matches")
	f.BoolVar(&opts.hidden, "hidden", false, "let wildcards match names starting with a period")
	f.BoolVar(&opts.noFollow, "no-follow", false, "don't descend into symlinked directories")
	f.IntVar(&opts.repeat, "repeat", 1, "run each case `n` times and report the fastest")
	f.StringVar(&opts.traceFile, "trace", "", "write dirglob trace logs to `file`")
	f.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	f.StringVar(&opts.logLevel, "log-level", "info", "minimum `level` of messages on stderr: debug, info, warn, error")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log each run (same as --log-level debug)")

	return cmd
}

// overrideOptions applies the policy flags given on the command line over
// those from the case table.
func overrideOptions(flags *pflag.FlagSet, opts benchOptions, o *bench.Options) {
	if flags.Changed("sort") {
		o.Sort = opts.sort
	}
	if flags.Changed("hidden") {
		o.MatchHidden = opts.hidden
	}
	if flags.Changed("no-follow") {
		o.FollowSymlinks = !opts.noFollow
	}
}

func runBench(cmd *cobra.Command, opts benchOptions, base string, stdout, stderr io.Writer) error {
	if opts.noColor {
		color.NoColor = true
	}
	level := console.ParseLevel(opts.logLevel)
	if opts.verbose {
		level = console.LevelDebug
	}
	log := console.New(stderr, level)
	if opts.noColor {
		log.SetColor(false)
	}

	cfg, err := bench.LoadConfig(opts.casesFile)
	if err != nil {
		return err
	}
	if opts.casesFile != "" {
		log.Infof("loaded %d cases from %s", len(cfg.Cases), opts.casesFile)
	}

	overrideOptions(cmd.Flags(), opts, &cfg.Options)

	var trace io.Writer
	if opts.traceFile != "" {
		tf, err := os.Create(opts.traceFile)
		if err != nil {
			return errors.Wrap(err, "create trace file")
		}
		defer tf.Close()
		trace = tf
	}

	engines := make([]bench.Engine, 0, len(opts.engines))
	for _, name := range opts.engines {
		e, err := bench.NewEngine(name, cfg.Options, trace)
		if err != nil {
			return err
		}
		engines = append(engines, e)
	}

	if _, err := os.Stat(base); err != nil {
		log.Warnf("search path: %v", err)
	}

	r := &bench.Runner{
		Engines: engines,
		Cases:   cfg.Cases,
		Repeat:  opts.repeat,
		Out:     stdout,
		Log:     log,
	}
	return r.Run(cmd.Context(), base)
}
