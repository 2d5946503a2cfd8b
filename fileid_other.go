//go:build !unix

package dirglob

import "os"

// fileID identifies a directory. Without device and inode numbers, the
// comparison is left to os.SameFile.
type fileID struct {
	fi os.FileInfo
}

func statID(path string) (fileID, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return fileID{}, err
	}
	return fileID{fi: fi}, nil
}

func (a fileID) same(b fileID) bool {
	if a.fi == nil || b.fi == nil {
		return false
	}
	return os.SameFile(a.fi, b.fi)
}
