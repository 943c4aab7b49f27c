package clip

import (
	"strings"
	"unicode/utf8"

	"github.com/pathclip/pathclip/internal/errors"
)

// MaxNameChars is the folder name limit in characters (runes).
const MaxNameChars = 100

// InvalidNameChars lists characters a folder name may not contain.
const InvalidNameChars = `/\:*?"<>|`

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CheckName validates a folder name on its own. Collisions with other
// folders are the registry's job.
func CheckName(name string) error {
	if IsBlank(name) {
		return errors.NewValidation("Folder name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameChars {
		return errors.NewValidation("Folder name is too long (max 100 characters)")
	}
	if strings.ContainsAny(name, InvalidNameChars) {
		return errors.NewValidation("Folder name contains invalid characters")
	}
	return nil
}
