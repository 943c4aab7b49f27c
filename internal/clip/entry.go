package clip

import (
	"fmt"
	"strings"
)

// EntrySeparator sits between rendered entries.
const EntrySeparator = "\n\n---\n\n"

// Entry is one file's captured text in the clipboard.
type Entry struct {
	// DisplayPath is what the user sees: the source path, optionally with a
	// ":N" or ":N-M" line marker
	DisplayPath string `json:"display_path"`

	// SourceKey is the unmodified source path, used as the dedup key
	SourceKey string `json:"source_key"`

	// Text is the captured content (full file or selection)
	Text string `json:"text"`
}

// LineSelection is a 1-based inclusive line range plus its already-extracted
// text. EndLine >= StartLine is expected but not enforced.
type LineSelection struct {
	StartLine uint32
	EndLine   uint32
	Text      string
}

// FormatPath returns path with the selection's line marker appended.
func (s LineSelection) FormatPath(path string) string {
	if s.StartLine == s.EndLine {
		return fmt.Sprintf("%s:%d", path, s.StartLine)
	}
	return fmt.Sprintf("%s:%d-%d", path, s.StartLine, s.EndLine)
}

// NewEntry builds the entry for a copy of path. With a selection the display
// path carries the line marker and the selection text replaces fullText.
func NewEntry(path, fullText string, sel *LineSelection) Entry {
	if sel == nil {
		return Entry{DisplayPath: path, SourceKey: path, Text: fullText}
	}
	return Entry{
		DisplayPath: sel.FormatPath(path),
		SourceKey:   path,
		Text:        sel.Text,
	}
}

// Render joins entries as "{display_path}\n\n{text}" blocks separated by
// EntrySeparator. No entries renders as "".
func Render(entries []Entry) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = e.DisplayPath + "\n\n" + e.Text
	}
	return strings.Join(blocks, EntrySeparator)
}

// StatusText summarizes an entry count for the status line.
func StatusText(n int) string {
	switch n {
	case 0:
		return "No files copied"
	case 1:
		return "1 file copied"
	default:
		return fmt.Sprintf("%d files copied", n)
	}
}
