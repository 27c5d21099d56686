package filesystem

import (
	"io/fs"
	"os"
)

// checkedRename refuses to rename over an existing path, then performs a
// plain os.Rename. The check and the rename are not atomic.
func checkedRename(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
	}
	return os.Rename(oldpath, newpath)
}
