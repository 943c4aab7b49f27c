//go:build !windows

package ops

import (
	stderrors "errors"
	"os"
	"syscall"

	"gitlab.com/tozd/go/errors"
)

// openFileNoFollowRead opens a file for reading with O_NOFOLLOW so a symlink
// as the final path component is refused. O_CLOEXEC prevents FD leaks across exec.
//
// Note: O_NOFOLLOW only protects the final component. Symlinked directories
// along the path are still traversed.
func openFileNoFollowRead(path string) (*os.File, error) {
	fd, err := syscall.Open(path, syscall.O_RDONLY|syscall.O_NOFOLLOW|syscall.O_CLOEXEC, 0)
	if err != nil {
		if stderrors.Is(err, syscall.ELOOP) {
			return nil, errors.Errorf("%s: refusing to read through symlink", path)
		}
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}
