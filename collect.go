package dirglob

import (
	stderrors "errors"
	"path/filepath"
	"slices"
)

// Status summarises how a traversal went.
type Status int

// Traversal statuses.
const (
	// StatusOK means every directory the pattern needed was read.
	StatusOK Status = iota

	// StatusPartialError means some subtree could not be read. Matches from
	// the readable parts are still returned.
	StatusPartialError

	// StatusFatal means the starting directory could not be read; there are
	// no matches.
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPartialError:
		return "partial-error"
	case StatusFatal:
		return "fatal"
	}
	return "unknown"
}

// Result is the outcome of a traversal. It belongs to the caller.
type Result struct {
	// Root is the directory the traversal started from.
	Root string

	// Paths are the matches, relative to Root (or absolute, for absolute
	// patterns). They are in discovery order unless sorting was requested.
	Paths []string

	// Status is the overall outcome.
	Status Status

	// Errors holds the errors for each subtree that could not be read (or
	// for the root, if Status is StatusFatal).
	Errors []error
}

// Err joins all the errors in the result, or returns nil if there are none.
func (r *Result) Err() error { return stderrors.Join(r.Errors...) }

// Full returns the matched paths joined onto Root.
func (r *Result) Full() []string {
	out := make([]string, len(r.Paths))
	for i, p := range r.Paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(r.Root, p)
	}
	return out
}

// collector accumulates matches for one traversal.
type collector struct {
	root    string
	absRoot string
	seen    map[string]struct{}
	paths   []string
	errs    []error
	status  Status
	frozen  bool
}

func newCollector(root string) *collector {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = filepath.Clean(root)
	}
	return &collector{
		root:    root,
		absRoot: absRoot,
		seen:    make(map[string]struct{}),
	}
}

// key identifies a path regardless of how it was spelled.
func (c *collector) key(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.absRoot, path)
}

// Collect records a match. It reports false if the path was already
// collected or the collector has been finalized.
func (c *collector) Collect(path string) bool {
	if c.frozen {
		return false
	}
	k := c.key(path)
	if _, dup := c.seen[k]; dup {
		return false
	}
	c.seen[k] = struct{}{}
	c.paths = append(c.paths, path)
	return true
}

// Fail records an unreadable subtree.
func (c *collector) Fail(err error) {
	if c.frozen {
		return
	}
	c.errs = append(c.errs, err)
	if c.status < StatusPartialError {
		c.status = StatusPartialError
	}
}

// Fatal records that the traversal could not start. Any matches are
// discarded.
func (c *collector) Fatal(err error) {
	if c.frozen {
		return
	}
	c.errs = append(c.errs, err)
	c.status = StatusFatal
	c.paths = nil
	clear(c.seen)
}

// Finalize freezes the collector and returns the result. Calling it again
// returns an equal result; results never share slices with each other.
func (c *collector) Finalize(sort bool) *Result {
	c.frozen = true
	paths := slices.Clone(c.paths)
	if paths == nil {
		paths = []string{}
	}
	if sort {
		slices.Sort(paths)
	}
	return &Result{
		Root:   c.root,
		Paths:  paths,
		Status: c.status,
		Errors: slices.Clone(c.errs),
	}
}
