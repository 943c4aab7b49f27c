// Package sysclip pushes rendered text to the operating system clipboard.
package sysclip

import (
	"sync"

	"github.com/atotto/clipboard"
	"gitlab.com/tozd/go/errors"
)

// Writer receives the combined text after a successful copy.
type Writer interface {
	WriteAll(text string) error
}

// System writes through the OS clipboard (pbcopy, xclip/xsel/wl-copy, win32).
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// Discard drops everything.
type Discard struct{}

// WriteAll implements Writer.
func (Discard) WriteAll(string) error { return nil }

// Memory keeps every write, newest last.
type Memory struct {
	mu     sync.Mutex
	writes []string
}

// WriteAll implements Writer.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return nil
}

// Last returns the most recent write, or "" if there was none.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

// Len returns the number of writes.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

// New picks System unless disabled or the platform has no clipboard tool.
func New(disabled bool) Writer {
	if disabled || clipboard.Unsupported {
		return Discard{}
	}
	return System{}
}
