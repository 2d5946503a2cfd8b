// The dirglob command searches for files with paths matching a pattern.
//
// Example:
//
//	$ dirglob '**/*_test.go'
//	cmd/globbench/main_test.go
//	glob_test.go
//	internal/bench/bench_test.go
//	match_test.go
//	...
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/DrJosh9000/dirglob"
	"github.com/DrJosh9000/dirglob/internal/console"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
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

type globOptions struct {
	root            string
	sort            bool
	hidden          bool
	noFollow        bool
	caseInsensitive bool
	check           string
	excludes        []string
	logLevel        string
	trace           bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts globOptions

	cmd := &cobra.Command{
		Use:           "dirglob [flags] PATTERN",
		Short:         "List paths matching a glob pattern",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlob(cmd.Context(), opts, args[0], stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.root, "root", ".", "directory to search from")
	f.BoolVar(&opts.sort, "sort", false, "print matches in sorted order")
	f.BoolVar(&opts.hidden, "hidden", false, "let wildcards match names starting with a period")
	f.BoolVar(&opts.noFollow, "no-follow", false, "don't descend into symlinked directories")
	f.BoolVarP(&opts.caseInsensitive, "ignore-case", "i", false, "match case-insensitively")
	f.StringVar(&opts.check, "check", "", "match `path` against the pattern without touching the filesystem")
	f.StringArrayVar(&opts.excludes, "exclude", nil, "skip paths matching `pattern`, and everything under them (repeatable)")
	f.StringVar(&opts.logLevel, "log-level", "info", "minimum `level` of messages on stderr: debug, info, warn, error")
	f.BoolVar(&opts.trace, "trace", false, "log how the tree is walked (implies --log-level debug)")

	return cmd
}

func runGlob(ctx context.Context, opts globOptions, pattern string, stdout, stderr io.Writer) error {
	level := console.ParseLevel(opts.logLevel)
	if opts.trace {
		level = console.LevelDebug
	}
	log := console.New(stderr, level)

	var parseOpts []dirglob.ParseOption
	if opts.caseInsensitive {
		parseOpts = append(parseOpts, dirglob.CaseInsensitive(true))
	}
	p, err := dirglob.Compile(pattern, parseOpts...)
	if err != nil {
		return err
	}

	if opts.check != "" {
		fmt.Fprintln(stdout, p.Match(opts.check, opts.hidden))
		return nil
	}

	excludes := make([]*dirglob.Pattern, 0, len(opts.excludes))
	for _, x := range opts.excludes {
		xp, err := dirglob.Compile(x, parseOpts...)
		if err != nil {
			return errors.Wrap(err, "exclude")
		}
		excludes = append(excludes, xp)
	}

	globOpts := []dirglob.GlobOption{
		dirglob.Sort(opts.sort),
		dirglob.MatchHidden(opts.hidden),
		dirglob.FollowSymlinks(!opts.noFollow),
		dirglob.Exclude(excludes...),
	}
	if opts.trace {
		globOpts = append(globOpts, dirglob.WithTraceLogs(log.Trace()))
	}
	if !opts.sort {
		// Print matches as they are found.
		globOpts = append(globOpts, dirglob.WithWalkDirFunc(func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warnf("%v", err)
				return nil
			}
			fmt.Fprintln(stdout, path)
			return nil
		}))
	}

	res, err := p.Glob(ctx, opts.root, globOpts...)
	if err != nil {
		return err
	}
	if opts.sort {
		for _, err := range res.Errors {
			log.Warnf("%v", err)
		}
		for _, path := range res.Full() {
			fmt.Fprintln(stdout, path)
		}
	}
	if res.Status == dirglob.StatusFatal {
		return errors.Errorf("nothing searched: %v", res.Err())
	}
	return nil
}
