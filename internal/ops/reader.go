package ops

import (
	"io"
	"os"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/pathclip/pathclip/internal/config"
)

// Reader is the filesystem collaborator used by batch copies. Any error
// means "unreadable": the caller skips the path and moves on.
type Reader interface {
	ReadFile(path string) (string, error)
}

// FileReader reads whole text files from the local filesystem.
type FileReader struct {
	// MaxBytes rejects larger files; 0 means no limit
	MaxBytes int64

	// NoFollow refuses a symlink as the final path component
	NoFollow bool
}

// NewFileReader builds a FileReader from config. A nil config yields the defaults.
func NewFileReader(cfg *config.Config) *FileReader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &FileReader{
		MaxBytes: cfg.MaxFileBytes,
		NoFollow: cfg.NoFollowSymlinks,
	}
}

// ReadFile returns the file's content. Directories, oversized files and
// content that is not valid UTF-8 are errors.
func (r *FileReader) ReadFile(path string) (string, error) {
	var (
		f   *os.File
		err error
	)
	if r.NoFollow {
		f, err = openFileNoFollowRead(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return "", errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", errors.Errorf("%s is a directory", path)
	}
	if r.MaxBytes > 0 && info.Size() > r.MaxBytes {
		return "", errors.Errorf("%s is %d bytes (max %d)", path, info.Size(), r.MaxBytes)
	}

	var src io.Reader = f
	if r.MaxBytes > 0 {
		// Stat size is not authoritative for pipes and growing files.
		src = io.LimitReader(f, r.MaxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", path, err)
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return "", errors.Errorf("%s exceeds %d bytes", path, r.MaxBytes)
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("%s is not valid UTF-8 text", path)
	}

	return string(data), nil
}
