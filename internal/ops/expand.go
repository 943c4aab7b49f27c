package ops

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pathclip/pathclip/internal/errors"
)

// globMeta are the characters that make an argument a pattern rather than a path.
const globMeta = `*?[{`

// ExpandPaths turns a mix of literal paths and doublestar patterns
// ("src/**/*.go") into a de-duplicated path list. Literal paths pass through
// untouched, even if they do not exist, so a later read can skip them. An
// argument that names an existing file is literal even when it contains glob
// characters ("app/[id]/page.tsx"). Each pattern's matches are sorted;
// overall order follows the arguments.
func ExpandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	out := make([]string, 0, len(patterns))

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pattern := range patterns {
		if !isPattern(pattern) || exists(pattern) {
			add(pattern)
			continue
		}
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.NewValidation(fmt.Sprintf("Invalid pattern: %s", pattern))
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.NewValidation(fmt.Sprintf("Invalid pattern: %s", pattern))
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

func isPattern(s string) bool {
	return strings.ContainsAny(s, globMeta)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
