package dirglob

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MultiGlob is like [Pattern.Glob], but globs multiple patterns under the
// same root simultaneously. Each pattern gets its own independent traversal;
// the results are in the same order as patterns. At most GoroutineLimit
// traversals run at once (by default, runtime.GOMAXPROCS(0)).
//
// If any traversal returns an error (cancellation, or an error from the
// WithWalkDirFunc callback), the others are cancelled and the first error
// is returned alongside whatever results were produced. You should make sure
// that the callback is safe to call concurrently from multiple goroutines, or
// set GoroutineLimit to 1.
func MultiGlob(ctx context.Context, root string, patterns []*Pattern, opts ...GlobOption) ([]*Result, error) {
	for i, p := range patterns {
		if p == nil {
			return nil, errors.Errorf("nil pattern at index %d in arg to MultiGlob", i)
		}
	}

	cfg := newGlobConfig(opts)
	limit := cfg.goroutines
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range patterns {
		i, p := i, p
		g.Go(func() error {
			res, err := p.glob(gctx, root, cfg)
			results[i] = res
			if err != nil {
				return errors.Wrapf(err, "glob %q", p)
			}
			return nil
		})
	}
	return results, g.Wait()
}
