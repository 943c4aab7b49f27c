package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxFileBytes != DefaultConfig().MaxFileBytes {
		t.Fatalf("MaxFileBytes = %d, want %d", cfg.MaxFileBytes, DefaultConfig().MaxFileBytes)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.json"), `{"max_file_bytes": 500, "strict_folder_names": true}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxFileBytes != 500 {
		t.Fatalf("MaxFileBytes = %d, want %d", cfg.MaxFileBytes, 500)
	}
	if !cfg.StrictFolderNames {
		t.Fatalf("StrictFolderNames = false, want true")
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.yaml"), "log_level: debug\ndisable_system_clipboard: true\ndisabled_tools:\n  - run_command\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.DisableSystemClipboard {
		t.Errorf("DisableSystemClipboard = false, want true")
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "run_command" {
		t.Errorf("DisabledTools = %v, want [run_command]", cfg.DisabledTools)
	}
	if cfg.MaxFileBytes != DefaultConfig().MaxFileBytes {
		t.Errorf("MaxFileBytes = %d, want default", cfg.MaxFileBytes)
	}
}

func TestLoad_JSONPreferredOverYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.json"), `{"log_level": "error"}`)
	writeFile(t, filepath.Join(tmpDir, "config.yaml"), "log_level: debug\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.json"), `{not json}`)

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.yaml"), "max_file_bytes: [not, a, number]\n")

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_DisabledToolsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "config.json"), `{}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.DisabledTools) != 0 {
		t.Fatalf("DisabledTools = %v, want nil or empty", cfg.DisabledTools)
	}
}

func TestLoadWithRepo_BothPresent(t *testing.T) {
	globalDir := t.TempDir()
	repoRoot := t.TempDir()

	writeFile(t, filepath.Join(globalDir, "config.json"), `{"max_file_bytes": 8000, "disabled_tools": ["run_command"]}`)
	writeFile(t, filepath.Join(repoRoot, DirName, "config.json"), `{"max_file_bytes": 5000, "disabled_tools": ["delete_folder"]}`)

	cfg, err := LoadWithRepo(globalDir, repoRoot)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	// Repo overrides scalar
	if cfg.MaxFileBytes != 5000 {
		t.Errorf("MaxFileBytes = %d, want 5000 (repo override)", cfg.MaxFileBytes)
	}
	// Arrays merged
	if len(cfg.DisabledTools) != 2 {
		t.Errorf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
}

func TestLoadWithRepo_NeitherPresent(t *testing.T) {
	cfg, err := LoadWithRepo(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if cfg.MaxFileBytes != DefaultConfig().MaxFileBytes {
		t.Errorf("MaxFileBytes = %d, want default", cfg.MaxFileBytes)
	}
	if len(cfg.DisabledTools) != 0 {
		t.Errorf("DisabledTools = %v, want empty", cfg.DisabledTools)
	}
}

func TestLoadWithRepo_WalksUpward(t *testing.T) {
	tmpDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, DirName, "config.json"), `{"no_follow_symlinks": true}`)
	subdir := filepath.Join(tmpDir, "subdir", "deeper")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	cfg, err := LoadWithRepo(globalDir, subdir)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if !cfg.NoFollowSymlinks {
		t.Errorf("NoFollowSymlinks = false, want true from repo config")
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{MaxFileBytes: 10000, LogLevel: "warn"}
	overlay := &Config{MaxFileBytes: 5000}

	result := Merge(base, overlay)

	if result.MaxFileBytes != 5000 {
		t.Errorf("MaxFileBytes = %d, want 5000 (overlay)", result.MaxFileBytes)
	}
	if result.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (base, overlay is empty)", result.LogLevel, "warn")
	}
}

func TestMerge_BooleanOr(t *testing.T) {
	base := &Config{DisableSystemClipboard: true}
	overlay := &Config{StrictFolderNames: true}

	result := Merge(base, overlay)

	if !result.DisableSystemClipboard {
		t.Error("DisableSystemClipboard should be true (base OR overlay)")
	}
	if !result.StrictFolderNames {
		t.Error("StrictFolderNames should be true (base OR overlay)")
	}
}

func TestMerge_ArrayMergeDedup(t *testing.T) {
	base := &Config{DisabledTools: []string{"run_command", " delete_folder "}}
	overlay := &Config{DisabledTools: []string{"delete_folder", "rename_folder", ""}}

	result := Merge(base, overlay)

	want := []string{"run_command", "delete_folder", "rename_folder"}
	if len(result.DisabledTools) != len(want) {
		t.Fatalf("DisabledTools = %v, want %v", result.DisabledTools, want)
	}
	for i := range want {
		if result.DisabledTools[i] != want[i] {
			t.Errorf("DisabledTools[%d] = %q, want %q", i, result.DisabledTools[i], want[i])
		}
	}
}

func TestFindRepoConfig(t *testing.T) {
	t.Run("in parent dir", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DirName, "config.json")
		writeFile(t, configPath, `{}`)

		subdir := filepath.Join(tmpDir, "a", "b")
		if err := os.MkdirAll(subdir, 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if found := FindRepoConfig(subdir); found != configPath {
			t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DirName, "config.yaml")
		writeFile(t, configPath, "log_level: info\n")

		if found := FindRepoConfig(tmpDir); found != configPath {
			t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
		}
	})

	t.Run("empty start dir", func(t *testing.T) {
		if found := FindRepoConfig(""); found != "" {
			t.Errorf("FindRepoConfig(\"\") = %q, want empty", found)
		}
	})
}
