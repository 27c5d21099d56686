//go:build linux

package filesystem

import (
	stderrors "errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace uses renameat2(RENAME_NOREPLACE) so the kernel refuses to
// clobber a destination that appeared after the caller's existence check.
// Filesystems without renameat2 support fall back to check-then-rename.
func renameNoReplace(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, unix.ENOSYS) || stderrors.Is(err, unix.EINVAL) {
		return checkedRename(oldpath, newpath)
	}
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
}
