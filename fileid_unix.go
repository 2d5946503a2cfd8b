//go:build unix

package dirglob

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// fileID identifies a directory by device and inode.
type fileID struct {
	dev, ino uint64
}

func statID(path string) (fileID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fileID{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, nil
}

func (a fileID) same(b fileID) bool { return a == b }
