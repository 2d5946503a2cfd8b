package bench

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/DrJosh9000/dirglob"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Outcome is the result of globbing one case.
type Outcome struct {
	// Count is the number of matches.
	Count int

	// Problems are errors that did not stop the engine, such as unreadable
	// subtrees or a missing search path.
	Problems []error
}

// Engine is a glob implementation under test.
type Engine interface {
	// Name is used as the first field of each output line.
	Name() string

	// Count globs pattern relative to base. The error is non-nil only if
	// the pattern is invalid or the engine could not run at all.
	Count(ctx context.Context, base, pattern string) (Outcome, error)
}

// Engine names.
const (
	EngineDirglob    = "dirglob"
	EngineDoublestar = "doublestar"
	EngineGobwas     = "gobwas"
	EngineStdlib     = "stdlib"
)

// EngineNames lists the available engines.
func EngineNames() []string {
	return []string{EngineDirglob, EngineDoublestar, EngineGobwas, EngineStdlib}
}

// NewEngine returns the named engine configured with opts. trace, if not
// nil, receives the dirglob engine's trace logs.
func NewEngine(name string, opts Options, trace io.Writer) (Engine, error) {
	switch name {
	case EngineDirglob:
		cache, err := dirglob.NewCache(64)
		if err != nil {
			return nil, err
		}
		return &dirglobEngine{cache: cache, opts: opts, trace: trace}, nil
	case EngineDoublestar:
		return doublestarEngine{opts: opts}, nil
	case EngineGobwas:
		return gobwasEngine{opts: opts}, nil
	case EngineStdlib:
		return stdlibEngine{}, nil
	}
	return nil, errors.Errorf("unknown engine %q (want one of %s)", name, strings.Join(EngineNames(), ", "))
}

type dirglobEngine struct {
	cache *dirglob.Cache
	opts  Options
	trace io.Writer
}

func (e *dirglobEngine) Name() string { return EngineDirglob }

func (e *dirglobEngine) Count(ctx context.Context, base, pattern string) (Outcome, error) {
	p, err := e.cache.Compile(pattern)
	if err != nil {
		return Outcome{}, err
	}
	res, err := p.Glob(ctx, base,
		dirglob.Sort(e.opts.Sort),
		dirglob.MatchHidden(e.opts.MatchHidden),
		dirglob.FollowSymlinks(e.opts.FollowSymlinks),
		dirglob.WithTraceLogs(e.trace),
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Count: len(res.Paths), Problems: res.Errors}, nil
}

// doublestarEngine globs with github.com/bmatcuk/doublestar. It has no
// hidden-file policy of its own, so wildcards always match dot names.
type doublestarEngine struct {
	opts Options
}

func (doublestarEngine) Name() string { return EngineDoublestar }

func (e doublestarEngine) Count(ctx context.Context, base, pattern string) (Outcome, error) {
	if !doublestar.ValidatePattern(pattern) {
		return Outcome{}, errors.Wrapf(doublestar.ErrBadPattern, "pattern %q", pattern)
	}
	var opts []doublestar.GlobOption
	if !e.opts.FollowSymlinks {
		opts = append(opts, doublestar.WithNoFollow())
	}

	var (
		matches []string
		err     error
	)
	if path.IsAbs(pattern) {
		matches, err = doublestar.FilepathGlob(pattern, opts...)
	} else {
		matches, err = doublestar.Glob(os.DirFS(base), pattern, opts...)
	}
	if err != nil {
		return Outcome{}, err
	}
	if e.opts.Sort {
		slices.Sort(matches)
	}
	return Outcome{Count: len(matches)}, nil
}

// gobwasEngine compiles the pattern with github.com/gobwas/glob and tests
// every path under base against it. It cannot prune, so it walks the whole
// tree, and it does not follow symlinks.
type gobwasEngine struct {
	opts Options
}

func (gobwasEngine) Name() string { return EngineGobwas }

func (e gobwasEngine) Count(ctx context.Context, base, pattern string) (Outcome, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "pattern %q", pattern)
	}

	var out Outcome
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == base {
				return err
			}
			out.Problems = append(out.Problems, err)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == base {
			return nil
		}
		if !e.opts.MatchHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		if g.Match(filepath.ToSlash(rel)) {
			out.Count++
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return out, err
		}
		out.Problems = append(out.Problems, err)
	}
	return out, nil
}

// stdlibEngine uses path/filepath.Glob, as a baseline.
type stdlibEngine struct{}

func (stdlibEngine) Name() string { return EngineStdlib }

func (stdlibEngine) Count(ctx context.Context, base, pattern string) (Outcome, error) {
	full := pattern
	if !filepath.IsAbs(pattern) {
		full = filepath.Join(base, pattern)
	}
	matches, err := filepath.Glob(full)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "pattern %q", pattern)
	}
	return Outcome{Count: len(matches)}, nil
}
