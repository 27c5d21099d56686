package types

import (
	"io/fs"
)

// FS is the filesystem interface required for organizer operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename moves oldpath to newpath in a single operation. It must never
	// replace an existing newpath; in that case it fails with an error that
	// matches fs.ErrExist.
	Rename(oldpath, newpath string) error

	// SameFile reports whether both paths name the same underlying file.
	// Implementations compare device/inode identity where available and fall
	// back to canonical path comparison.
	SameFile(a, b string) (bool, error)

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
