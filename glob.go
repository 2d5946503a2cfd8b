package dirglob

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
)

// Glob walks the directory tree under root, matching entries against the
// pattern one segment per directory level, and returns the matches.
// Absolute patterns ignore root and start at the filesystem root. An empty
// root means the current directory.
//
// Subtrees that cannot be read are skipped and reported in the result. The
// returned error is non-nil only if ctx was cancelled or a WithWalkDirFunc
// callback returned an error; the result is still valid in that case.
func (p *Pattern) Glob(ctx context.Context, root string, opts ...GlobOption) (*Result, error) {
	return p.glob(ctx, root, newGlobConfig(opts))
}

func (p *Pattern) glob(ctx context.Context, root string, cfg *globConfig) (*Result, error) {
	start := root
	switch {
	case p.Absolute:
		start = string(filepath.Separator)
	case start == "":
		start = "."
	}

	w := &walker{
		p:    p,
		cfg:  cfg,
		root: start,
		col:  newCollector(start),
	}
	err := w.walk(ctx)
	return w.col.Finalize(cfg.sort), err
}

// walker holds the state of one traversal.
type walker struct {
	p     *Pattern
	cfg   *globConfig
	root  string
	col   *collector
	stack []*frame
}

func (w *walker) logf(format string, args ...any) {
	if w.cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(w.cfg.traceLogger, format, args...)
}

func (w *walker) walk(ctx context.Context) error {
	defer w.closeAll()

	if err := ctx.Err(); err != nil {
		return err
	}

	rel := ""
	if w.p.Absolute {
		rel = w.root
	}
	root, err := w.openRoot(rel)
	if err != nil {
		w.logf("cannot start at %q: %v\n", w.root, err)
		w.col.Fatal(err)
		if w.cfg.callback == nil {
			return nil
		}
		return stopErr(w.cfg.callback(w.root, nil, err))
	}
	if err := w.push(root); err != nil {
		return stopErr(err)
	}
	return w.run(ctx)
}

// run visits entries from the top of the stack until the stack is empty.
func (w *walker) run(ctx context.Context) error {
	for len(w.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := w.stack[len(w.stack)-1]
		d, err := top.next()
		if err == io.EOF {
			w.pop()
			continue
		}
		if err != nil {
			w.pop()
			if err := w.fail(top.rel, errors.Wrap(err, "scan directory")); err != nil {
				return stopErr(err)
			}
			continue
		}

		if err := w.visit(top, d); err != nil {
			return stopErr(err)
		}
	}
	return nil
}

// openRoot opens the starting directory. Failure here is fatal.
func (w *walker) openRoot(rel string) (*frame, error) {
	f, err := os.Open(w.root)
	if err != nil {
		return nil, errors.Wrap(err, "open root")
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat root")
	}
	if !fi.IsDir() {
		f.Close()
		return nil, errors.Errorf("root %q is not a directory", w.root)
	}
	return &frame{
		dir:    w.root,
		rel:    rel,
		active: w.p.closure([]int{0}),
		f:      f,
	}, nil
}

// visit matches one directory entry against the frame's active segments,
// collecting it and descending into it as needed.
func (w *walker) visit(fr *frame, d fs.DirEntry) error {
	name := d.Name()
	rel := filepath.Join(fr.rel, name)
	path := filepath.Join(fr.dir, name)
	last := len(w.p.Segments) - 1

	matched := false
	var next []int
	for _, i := range fr.active {
		seg := &w.p.Segments[i]
		if !seg.Match(name, w.cfg.matchHidden) {
			continue
		}
		switch {
		case seg.Recursive():
			// ** stays active below this entry.
			matched = matched || i == last
			next = append(next, i)
		case i == last:
			matched = true
		default:
			next = append(next, i+1)
		}
	}
	if !matched && len(next) == 0 {
		return nil
	}

	isDir, isLink := w.entryType(path, d)
	if w.excluded(rel, isDir) {
		w.logf("excluding %q\n", rel)
		return nil
	}

	if matched && (isDir || !w.p.DirOnly) && w.col.Collect(rel) {
		w.logf("matched %q\n", rel)
		if w.cfg.callback != nil {
			if err := w.cfg.callback(path, d, nil); err != nil && !errors.Is(err, fs.SkipDir) {
				return err
			}
		}
	}

	if len(next) == 0 || !isDir {
		return nil
	}
	if isLink {
		cyclic, err := w.cycle(path)
		if err != nil {
			return w.fail(rel, err)
		}
		if cyclic {
			w.logf("not following %q: it leads back to a directory being walked\n", rel)
			return nil
		}
	}
	return w.descend(path, rel, w.p.closure(next))
}

// entryType reports whether the entry is (or, when following symlinks,
// leads to) a directory, and whether it is a symlink.
func (w *walker) entryType(path string, d fs.DirEntry) (isDir, isLink bool) {
	t := d.Type()
	if t&fs.ModeSymlink == 0 {
		return t.IsDir(), false
	}
	if !w.cfg.followSymlinks {
		return false, true
	}
	fi, err := os.Stat(path)
	if err != nil {
		// Dangling symlink.
		return false, true
	}
	return fi.IsDir(), true
}

// excluded reports whether rel matches an Exclude pattern.
func (w *walker) excluded(rel string, isDir bool) bool {
	if len(w.cfg.excludes) == 0 {
		return false
	}
	path := filepath.ToSlash(rel)
	if isDir {
		path += "/"
	}
	for _, x := range w.cfg.excludes {
		if x != nil && x.Match(path, w.cfg.matchHidden) {
			return true
		}
	}
	return false
}

// cycle reports whether the directory at path is already on the stack.
func (w *walker) cycle(path string) (bool, error) {
	id, err := statID(path)
	if err != nil {
		return false, err
	}
	for _, fr := range w.stack {
		fid, err := fr.ident()
		if err != nil {
			continue
		}
		if fid.same(id) {
			return true, nil
		}
	}
	return false, nil
}

// descend pushes a frame for a subdirectory.
func (w *walker) descend(dir, rel string, active []int) error {
	fr := &frame{
		dir:    dir,
		rel:    rel,
		active: active,
	}
	if !w.canProbe(active) {
		f, err := os.Open(dir)
		if err != nil {
			return w.fail(rel, errors.Wrap(err, "open directory"))
		}
		fr.f = f
	}
	return w.push(fr)
}

// push adds the frame to the stack. Frames whose segments are all literals
// skip reading the directory and check for each literal name instead.
func (w *walker) push(fr *frame) error {
	w.stack = append(w.stack, fr)
	if !w.canProbe(fr.active) {
		w.logf("scanning %q for segments %v\n", fr.dir, fr.active)
		return nil
	}

	// The root frame arrives with its directory open; probing doesn't need it.
	fr.close()
	w.logf("probing %q for segments %v\n", fr.dir, fr.active)
	for _, name := range w.literals(fr.active) {
		fi, err := os.Lstat(filepath.Join(fr.dir, name))
		switch {
		case err == nil:
			fr.buf = append(fr.buf, probedEntry{name, fs.FileInfoToDirEntry(fi)})
		case errors.Is(err, fs.ErrNotExist):
			// Nothing to see here.
		default:
			if err := w.fail(filepath.Join(fr.rel, name), errors.Wrap(err, "probe")); err != nil {
				return err
			}
		}
	}
	return nil
}

// probedEntry reports the name that was probed for, which differs from the
// name Lstat reports for "..".
type probedEntry struct {
	name string
	fs.DirEntry
}

func (e probedEntry) Name() string { return e.name }

// canProbe reports whether all the active segments are case-sensitive
// literals.
func (w *walker) canProbe(active []int) bool {
	if len(active) == 0 {
		return false
	}
	for _, i := range active {
		seg := &w.p.Segments[i]
		if seg.Recursive() || seg.fold || !seg.IsLiteral() {
			return false
		}
	}
	return true
}

// literals returns the distinct literal names of the active segments.
func (w *walker) literals(active []int) []string {
	names := make([]string, 0, len(active))
	for _, i := range active {
		names = append(names, w.p.Segments[i].Literal())
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// fail records an unreadable subtree and reports it to the callback.
func (w *walker) fail(rel string, err error) error {
	w.logf("skipping %q: %v\n", rel, err)
	w.col.Fail(err)
	if w.cfg.callback == nil {
		return nil
	}
	if err := w.cfg.callback(filepath.Join(w.root, rel), nil, err); err != nil && !errors.Is(err, fs.SkipDir) {
		return err
	}
	return nil
}

func (w *walker) pop() {
	top := w.stack[len(w.stack)-1]
	if err := top.close(); err != nil {
		w.logf("closing %q: %v\n", top.dir, err)
	}
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *walker) closeAll() {
	for len(w.stack) > 0 {
		w.pop()
	}
}

// stopErr converts fs.SkipAll into a clean stop.
func stopErr(err error) error {
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}
