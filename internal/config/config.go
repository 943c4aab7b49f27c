package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user and per-repo configuration directory name.
const DirName = ".pathclip"

// Config holds application configuration.
type Config struct {
	// MaxFileBytes caps how much of a file a batch copy will read.
	// Larger files count as unreadable and are skipped.
	MaxFileBytes int64 `json:"max_file_bytes" yaml:"max_file_bytes"`

	// DisableSystemClipboard stops copy commands from writing the combined
	// text to the OS clipboard. The in-memory clipboard is unaffected.
	DisableSystemClipboard bool `json:"disable_system_clipboard,omitempty" yaml:"disable_system_clipboard,omitempty"`

	// NoFollowSymlinks makes batch reads refuse a symlink as the final path component.
	NoFollowSymlinks bool `json:"no_follow_symlinks,omitempty" yaml:"no_follow_symlinks,omitempty"`

	// StrictFolderNames applies the full name validation (length and
	// forbidden characters) on create and rename, not just empty and
	// collision checks.
	StrictFolderNames bool `json:"strict_folder_names,omitempty" yaml:"strict_folder_names,omitempty"`

	// LogLevel is a zerolog level name: debug, info, warn, error, disabled.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty" yaml:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxFileBytes: 1 << 20,
		LogLevel:     "warn",
	}
}

// Load loads configuration from baseDir/config.json, falling back to
// baseDir/config.yaml. Returns default config if neither exists.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.pathclip.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(configFile(baseDir))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// LoadWithRepo loads configuration from both global (~/.pathclip) and repo (.pathclip) directories.
// Repo config is found by walking upward from startDir.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(configFile(globalDir))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	return Merge(Merge(DefaultConfig(), global), repo), nil
}

// FindRepoConfig walks upward from startDir to find the nearest
// .pathclip/config.json (or config.yaml). Returns "" if not found.
func FindRepoConfig(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir := startDir
	for {
		for _, name := range []string{"config.json", "config.yaml"} {
			p := filepath.Join(dir, DirName, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// configFile picks config.json when present, else config.yaml.
func configFile(dir string) string {
	jsonPath := filepath.Join(dir, "config.json")
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return jsonPath
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Errorf("reading %s: %w", configPath, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Errorf("parsing %s: %w", configPath, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Errorf("parsing %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.MaxFileBytes = overlay.MaxFileBytes
	if result.MaxFileBytes == 0 {
		result.MaxFileBytes = base.MaxFileBytes
	}

	result.LogLevel = strings.TrimSpace(overlay.LogLevel)
	if result.LogLevel == "" {
		result.LogLevel = base.LogLevel
	}

	// Booleans: overlay wins if true, else base
	result.DisableSystemClipboard = base.DisableSystemClipboard || overlay.DisableSystemClipboard
	result.NoFollowSymlinks = base.NoFollowSymlinks || overlay.NoFollowSymlinks
	result.StrictFolderNames = base.StrictFolderNames || overlay.StrictFolderNames

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
