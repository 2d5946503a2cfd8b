package dirglob

import (
	"io"
	"io/fs"
)

// readDirBatch is how many entries a frame reads from its directory at once.
const readDirBatch = 128

// dirReader is the part of *os.File that a frame reads from.
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// frame is one directory on the traversal stack.
type frame struct {
	dir    string    // path used to access the directory
	rel    string    // path reported to the caller
	active []int     // indexes of the segments to match entries against
	f      dirReader // open directory stream, nil once closed or when probing
	buf    []fs.DirEntry
	err    error // from the read that filled buf, reported once buf is drained

	id    fileID
	hasID bool
}

// next returns the next entry, or io.EOF once the directory is exhausted.
// Entries read before a failure are returned before the error is.
func (fr *frame) next() (fs.DirEntry, error) {
	for len(fr.buf) == 0 {
		if fr.err != nil {
			return nil, fr.err
		}
		if fr.f == nil {
			return nil, io.EOF
		}
		fr.buf, fr.err = fr.f.ReadDir(readDirBatch)
	}
	d := fr.buf[0]
	fr.buf = fr.buf[1:]
	return d, nil
}

// close releases the directory stream. It is safe to call more than once.
func (fr *frame) close() error {
	fr.buf = nil
	if fr.f == nil {
		return nil
	}
	err := fr.f.Close()
	fr.f = nil
	return err
}

// ident returns the identity of the directory, statting it the first time.
func (fr *frame) ident() (fileID, error) {
	if !fr.hasID {
		id, err := statID(fr.dir)
		if err != nil {
			return fileID{}, err
		}
		fr.id, fr.hasID = id, true
	}
	return fr.id, nil
}
