package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir    string `toml:"data_dir"`
	ExportDir  string `toml:"export_dir"`
	StagingDir string `toml:"staging_dir"`
	LogDir     string `toml:"log_dir"`
}

// Corpora describes the corpus registry: one CSV file per corpus name plus
// the name of the corpus keyed on profile names instead of hashtags.
type Corpora struct {
	Influencer string            `toml:"influencer"`
	Files      map[string]string `toml:"files"`
}

// Downloader contains configuration for the external media downloader.
type Downloader struct {
	Binary         string `toml:"binary"`
	FFmpegBinary   string `toml:"ffmpeg_binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Presets contains configuration for the preset snapshot library.
type Presets struct {
	DBPath string `toml:"db_path"`
}

// Text contains configuration for corpus text tooling.
type Text struct {
	StopwordsPath string `toml:"stopwords_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for corpusdash.
//
// Configuration sections by subsystem:
//   - Paths: data, export, staging, and log directories
//   - Corpora: corpus name to CSV path registry and the influencer flag
//   - Downloader: external media downloader binaries and timeout
//   - Presets: preset snapshot library location
//   - Text: stopword list for term counting
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Corpora    Corpora    `toml:"corpora"`
	Downloader Downloader `toml:"downloader"`
	Presets    Presets    `toml:"presets"`
	Text       Text       `toml:"text"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/corpusdash/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("corpusdash.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories commands write into. DataDir is
// intentionally excluded: corpora are read in place and a missing data
// directory should surface as a load error, not be papered over.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ExportDir, c.Paths.StagingDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CorpusNames returns the registered corpus names in sorted order.
func (c *Config) CorpusNames() []string {
	names := make([]string, 0, len(c.Corpora.Files))
	for name := range c.Corpora.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CorpusPath resolves the CSV path for a corpus name. Relative registry
// entries resolve against DataDir.
func (c *Config) CorpusPath(name string) (string, bool) {
	path, ok := c.Corpora.Files[name]
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Paths.DataDir, path)
	}
	return path, true
}

// IsInfluencerCorpus reports whether the named corpus keys on profile names.
func (c *Config) IsInfluencerCorpus(name string) bool {
	return name == c.Corpora.Influencer
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
