package vos

import (
	"os"

	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem and is the storage layer of the virtual OS.
type VFS = afero.Fs

// NewOsFs returns a VFS backed by the host filesystem.
func NewOsFs() VFS {
	return afero.NewOsFs()
}

// NewMemFs returns an empty in-memory VFS.
func NewMemFs() VFS {
	return afero.NewMemMapFs()
}

// ReadDirNames lists the names of the immediate entries of dir in the order
// the filesystem yields them, which isn't necessarily sorted. Entries aren't
// stat'd, so one unreadable entry can't hide the others.
//
// Names read before a failure are returned alongside the error.
func ReadDirNames(fs VFS, dir string) ([]string, error) {
	fd, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return fd.Readdirnames(-1)
}

// Lstat describes the named file without following a final symlink if the
// filesystem supports it, otherwise it falls back to Stat.
func Lstat(fs VFS, name string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return fs.Stat(name)
}
