//go:build windows

package ops

import (
	"os"

	"gitlab.com/tozd/go/errors"
)

// openFileNoFollowRead opens a file for reading.
// On Windows, O_NOFOLLOW is not available, so the symlink check is done with
// Lstat before opening.
func openFileNoFollowRead(path string) (*os.File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, errors.Errorf("%s: refusing to read through symlink", path)
	}
	return os.Open(path)
}
