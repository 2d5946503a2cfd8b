package dirglob

import (
	"io"
	"io/fs"
)

// GlobOption functions optionally alter how Glob operates.
type GlobOption = func(*globConfig)

type globConfig struct {
	followSymlinks bool
	sort           bool
	matchHidden    bool
	traceLogger    io.Writer
	callback       fs.WalkDirFunc
	goroutines     int
	parseOpts      []ParseOption
	excludes       []*Pattern
}

func newGlobConfig(opts []GlobOption) *globConfig {
	cfg := &globConfig{
		followSymlinks: true,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	return cfg
}

// FollowSymlinks enables or disables descending into symlinked directories
// during globbing. Symlinks are still matched as entries either way. It is
// enabled by default.
func FollowSymlinks(follow bool) GlobOption {
	return func(cfg *globConfig) {
		cfg.followSymlinks = follow
	}
}

// Sort enables or disables sorting the matches. When disabled (the default),
// matches are returned in the order they were found.
func Sort(enable bool) GlobOption {
	return func(cfg *globConfig) {
		cfg.sort = enable
	}
}

// MatchHidden allows wildcards, ? and char classes to match names starting
// with a period. Disabled by default, in which case only pattern segments that
// begin with a literal period match such names.
func MatchHidden(enable bool) GlobOption {
	return func(cfg *globConfig) {
		cfg.matchHidden = enable
	}
}

// WithTraceLogs logs debugging information for debugging Glob itself to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) GlobOption {
	return func(cfg *globConfig) {
		cfg.traceLogger = out
	}
}

// WithWalkDirFunc streams the traversal to f: it is called with a nil error
// for every match as it is found, and with a non-nil error for every subtree
// that cannot be read. If f returns fs.SkipAll, the traversal stops early
// without error; fs.SkipDir is ignored; any other error stops the traversal
// and is returned by Glob.
func WithWalkDirFunc(f fs.WalkDirFunc) GlobOption {
	return func(cfg *globConfig) {
		cfg.callback = f
	}
}

// GoroutineLimit limits the number of patterns MultiGlob walks at once. The
// default (0) means runtime.GOMAXPROCS(0).
func GoroutineLimit(n int) GlobOption {
	return func(cfg *globConfig) {
		cfg.goroutines = n
	}
}

// WithParseOptions passes parse options through to the package-level Glob,
// which compiles its pattern.
func WithParseOptions(opts ...ParseOption) GlobOption {
	return func(cfg *globConfig) {
		cfg.parseOpts = append(cfg.parseOpts, opts...)
	}
}

// Exclude prunes every entry whose path relative to the root matches one of
// the patterns (as reported by Pattern.Match, with a trailing / for
// directories): it is not matched, and if it is a directory nothing beneath
// it is read.
func Exclude(patterns ...*Pattern) GlobOption {
	return func(cfg *globConfig) {
		cfg.excludes = append(cfg.excludes, patterns...)
	}
}
