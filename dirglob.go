// Package dirglob compiles glob patterns into per-segment matchers and walks
// directory trees with them.
//
// A pattern such as "lib/*/[A-Z]*.cpp" is split on / into segments. Each
// segment matches exactly one path component, except ** which matches zero
// or more whole components. Traversal reads only the directories the pattern
// can still match in, and checks for literal names directly instead of
// reading the directory where possible.
package dirglob

import "context"

// Glob compiles pattern and walks root with it. Parse options are passed via
// WithParseOptions. If the pattern is invalid, Glob returns a nil result and
// an *InvalidPatternError.
func Glob(ctx context.Context, root, pattern string, opts ...GlobOption) (*Result, error) {
	cfg := newGlobConfig(opts)
	p, err := Compile(pattern, cfg.parseOpts...)
	if err != nil {
		return nil, err
	}
	return p.glob(ctx, root, cfg)
}
