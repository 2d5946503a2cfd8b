package dirglob

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeEntry is a regular file.
type fakeEntry string

func (e fakeEntry) Name() string               { return string(e) }
func (fakeEntry) IsDir() bool                  { return false }
func (fakeEntry) Type() fs.FileMode            { return 0 }
func (e fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo(e), nil }

type fakeInfo string

func (i fakeInfo) Name() string     { return string(i) }
func (fakeInfo) Size() int64        { return 0 }
func (fakeInfo) Mode() fs.FileMode  { return 0 }
func (fakeInfo) ModTime() time.Time { return time.Time{} }
func (fakeInfo) IsDir() bool        { return false }
func (fakeInfo) Sys() any           { return nil }

type fakeBatch struct {
	names []string
	err   error
}

// fakeDir returns each batch in turn, then io.EOF.
type fakeDir struct {
	batches []fakeBatch
	closed  bool
}

func (d *fakeDir) ReadDir(int) ([]fs.DirEntry, error) {
	if len(d.batches) == 0 {
		return nil, io.EOF
	}
	b := d.batches[0]
	d.batches = d.batches[1:]
	var ents []fs.DirEntry
	for _, n := range b.names {
		ents = append(ents, fakeEntry(n))
	}
	return ents, b.err
}

func (d *fakeDir) Close() error {
	d.closed = true
	return nil
}

// drain reads the frame until it returns an error.
func drain(fr *frame) ([]string, error) {
	var names []string
	for {
		d, err := fr.next()
		if err != nil {
			return names, err
		}
		names = append(names, d.Name())
	}
}

func TestFrameNext(t *testing.T) {
	fr := &frame{f: &fakeDir{batches: []fakeBatch{
		{names: []string{"a", "b"}},
		{names: []string{"c"}},
	}}}
	got, err := drain(fr)
	if err != io.EOF {
		t.Errorf("drain error = %v, want io.EOF", err)
	}
	if diff := cmp.Diff(got, []string{"a", "b", "c"}); diff != "" {
		t.Errorf("drain names diff (-got +want):\n%s", diff)
	}
}

func TestFrameNext_EntriesBeforeError(t *testing.T) {
	boom := errors.New("boom")
	fr := &frame{f: &fakeDir{batches: []fakeBatch{
		{names: []string{"a"}},
		{names: []string{"b", "c"}, err: boom},
		{names: []string{"never"}},
	}}}
	got, err := drain(fr)
	if !errors.Is(err, boom) {
		t.Errorf("drain error = %v, want %v", err, boom)
	}
	if diff := cmp.Diff(got, []string{"a", "b", "c"}); diff != "" {
		t.Errorf("drain names diff (-got +want):\n%s", diff)
	}

	// The error sticks.
	if _, err := fr.next(); !errors.Is(err, boom) {
		t.Errorf("next after error = %v, want %v", err, boom)
	}
}

// A directory that fails part way through still yields the entries read
// before the failure, and the traversal reports the failure.
func TestWalker_PartialDirectoryRead(t *testing.T) {
	boom := errors.New("boom")
	dir := &fakeDir{batches: []fakeBatch{
		{names: []string{"a.txt", "b.go"}, err: boom},
	}}

	p := MustCompile("*.txt")
	w := &walker{
		p:    p,
		cfg:  newGlobConfig(nil),
		root: "root",
		col:  newCollector("root"),
	}
	if err := w.push(&frame{dir: "root", active: p.closure([]int{0}), f: dir}); err != nil {
		t.Fatalf("push() = %v", err)
	}
	if err := w.run(context.Background()); err != nil {
		t.Fatalf("run() = %v", err)
	}

	res := w.col.Finalize(false)
	if diff := cmp.Diff(res.Paths, []string{"a.txt"}); diff != "" {
		t.Errorf("paths diff (-got +want):\n%s", diff)
	}
	if res.Status != StatusPartialError {
		t.Errorf("Status = %v, want partial-error", res.Status)
	}
	if len(res.Errors) != 1 || !errors.Is(res.Errors[0], boom) {
		t.Errorf("Errors = %v, want [%v]", res.Errors, boom)
	}
	if !dir.closed {
		t.Errorf("directory was not closed")
	}
}
