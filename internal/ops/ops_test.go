package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// mapReader serves file contents from memory; missing keys are unreadable.
type mapReader map[string]string

func (m mapReader) ReadFile(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fmt.Errorf("%s: no such file", path)
	}
	return text, nil
}

// writeFiles creates files under dir and returns their full paths in order.
func writeFiles(t *testing.T, dir string, files map[string]string, order ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(order))
	for _, name := range order {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(p, []byte(files[name]), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		paths = append(paths, p)
	}
	return paths
}

func stringPtr(s string) *string {
	return &s
}
