package ops

import (
	"fmt"

	"github.com/pathclip/pathclip/internal/config"
)

// Session is the plugin's whole state: one clipboard and one folder
// registry, alive for the lifetime of the host process. Callers own it and
// pass it by reference; nothing here is package-level.
type Session struct {
	Clipboard *Clipboard
	Folders   *Folders
}

// NewSession wires a clipboard and a folder registry to the same reader.
func NewSession(reader Reader, opts ...FoldersOption) *Session {
	if reader == nil {
		reader = NewFileReader(nil)
	}
	return &Session{
		Clipboard: NewClipboard(reader),
		Folders:   NewFolders(reader, opts...),
	}
}

// NewSessionFromConfig builds a Session backed by the local filesystem.
func NewSessionFromConfig(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewSession(NewFileReader(cfg), WithStrictNames(cfg.StrictFolderNames))
}

// StatusLine summarizes clipboard and folder state on one line.
func (s *Session) StatusLine() string {
	return fmt.Sprintf(
		"Clipboard: %s | Folders: %d | Total folder files: %d",
		s.Clipboard.StatusText(),
		s.Folders.Count(),
		s.Folders.TotalFileCount(),
	)
}
