package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/DrJosh9000/dirglob/internal/console"
	"github.com/pkg/errors"
)

// Line is one benchmark measurement.
type Line struct {
	Engine  string
	Case    string
	Pattern string
	Count   int
	Elapsed time.Duration
}

// String formats the line as engine,case,pattern,count,millis with the
// elapsed time in milliseconds to three decimal places. Downstream tooling
// parses this format.
func (l Line) String() string {
	return fmt.Sprintf("%s,%s,%s,%d,%.3f", l.Engine, l.Case, l.Pattern, l.Count, float64(l.Elapsed.Nanoseconds())/1e6)
}

// ErrCasesFailed is returned by Run when at least one case could not be run.
var ErrCasesFailed = errors.New("some cases failed")

// Runner runs every case against every engine.
type Runner struct {
	Engines []Engine
	Cases   []Case

	// Repeat is how many times each case is run; the fastest run is
	// reported. Values below 1 mean 1.
	Repeat int

	// Out receives the result lines.
	Out io.Writer

	// Log receives problems and failures. It may be nil.
	Log *console.Reporter
}

// Run benchmarks every case under base. A case whose pattern is rejected is
// reported and skipped; the others still run, and Run then returns
// ErrCasesFailed. Cancellation stops the run immediately.
func (r *Runner) Run(ctx context.Context, base string) error {
	failed := 0
	for _, e := range r.Engines {
		for _, c := range r.Cases {
			line, err := r.runCase(ctx, e, base, c)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				r.Log.Errorf("%s: case %s (%s): %v", e.Name(), c.Name, c.Pattern, err)
				failed++
				continue
			}
			if _, err := fmt.Fprintln(r.Out, line); err != nil {
				return errors.Wrap(err, "write result")
			}
		}
	}
	if failed > 0 {
		return errors.Wrapf(ErrCasesFailed, "%d of %d", failed, len(r.Engines)*len(r.Cases))
	}
	return nil
}

func (r *Runner) runCase(ctx context.Context, e Engine, base string, c Case) (Line, error) {
	repeat := max(r.Repeat, 1)
	line := Line{
		Engine:  e.Name(),
		Case:    c.Name,
		Pattern: c.Pattern,
	}
	for i := 0; i < repeat; i++ {
		start := time.Now()
		out, err := e.Count(ctx, base, c.Pattern)
		elapsed := time.Since(start)
		if err != nil {
			return Line{}, err
		}

		if i == 0 {
			for _, p := range out.Problems {
				r.Log.Warnf("%s: case %s: %v", e.Name(), c.Name, p)
			}
		}
		if i == 0 || elapsed < line.Elapsed {
			line.Elapsed = elapsed
		}
		line.Count = out.Count
		r.Log.Debugf("%s: case %s run %d: %d matches in %v", e.Name(), c.Name, i+1, out.Count, elapsed)
	}
	return line, nil
}
