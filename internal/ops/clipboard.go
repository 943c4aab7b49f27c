package ops

import (
	"slices"

	"github.com/pathclip/pathclip/internal/clip"
	"github.com/pathclip/pathclip/internal/errors"
)

// Clipboard aggregates copied entries, at most one per source path, in copy
// order. Re-copying a path replaces its entry and moves it to the end.
type Clipboard struct {
	entries []clip.Entry
	reader  Reader
}

// NewClipboard returns an empty clipboard reading batch copies through reader.
// A nil reader falls back to a default FileReader.
func NewClipboard(reader Reader) *Clipboard {
	if reader == nil {
		reader = NewFileReader(nil)
	}
	return &Clipboard{reader: reader}
}

// CopyWithContent captures fullText (or the selection's text) for path and
// returns the combined rendering of all entries.
func (c *Clipboard) CopyWithContent(path, fullText string, sel *clip.LineSelection) string {
	c.put(clip.NewEntry(path, fullText, sel))
	return c.Render()
}

// CopyMany reads each path and captures its full text. Unreadable paths are
// skipped. Fails only when none could be read, in which case the clipboard
// is left as it was.
func (c *Clipboard) CopyMany(paths []string) (string, error) {
	copied := 0
	for _, path := range paths {
		text, err := c.reader.ReadFile(path)
		if err != nil {
			continue
		}
		c.put(clip.NewEntry(path, text, nil))
		copied++
	}

	if copied == 0 {
		return "", errors.NewIOAllFailed("No files could be read successfully", len(paths))
	}

	return c.Render(), nil
}

// put replaces any entry with the same source key and appends e.
func (c *Clipboard) put(e clip.Entry) {
	c.entries = slices.DeleteFunc(c.entries, func(x clip.Entry) bool {
		return x.SourceKey == e.SourceKey
	})
	c.entries = append(c.entries, e)
}

// Clear removes every entry.
func (c *Clipboard) Clear() {
	c.entries = nil
}

// Remove drops the entry for sourceKey. Reports whether one was removed.
func (c *Clipboard) Remove(sourceKey string) bool {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(x clip.Entry) bool {
		return x.SourceKey == sourceKey
	})
	return len(c.entries) != before
}

// Contains reports whether sourceKey has an entry.
func (c *Clipboard) Contains(sourceKey string) bool {
	return slices.ContainsFunc(c.entries, func(x clip.Entry) bool {
		return x.SourceKey == sourceKey
	})
}

// Count returns the number of entries.
func (c *Clipboard) Count() int {
	return len(c.entries)
}

// List returns a copy of the entries in render order.
func (c *Clipboard) List() []clip.Entry {
	return slices.Clone(c.entries)
}

// StatusText summarizes the entry count.
func (c *Clipboard) StatusText() string {
	return clip.StatusText(len(c.entries))
}

// Render returns the combined text of all entries.
func (c *Clipboard) Render() string {
	return clip.Render(c.entries)
}
