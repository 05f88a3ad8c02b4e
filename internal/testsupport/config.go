// Package testsupport provides fixture helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"corpusdash/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ExportDir = filepath.Join(base, "exports")
	cfgVal.Paths.StagingDir = filepath.Join(base, "staging")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Presets.DBPath = filepath.Join(base, "presets.db")
	cfgVal.Corpora.Files = map[string]string{}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCorpusFile registers a corpus CSV under the test data directory.
func WithCorpusFile(name, path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpora.Files[name] = path
	}
}

// WithStopwords points the text tooling at a stopword file.
func WithStopwords(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Text.StopwordsPath = path
	}
}

// WithDownloaderBinary overrides the downloader binary on the test config.
func WithDownloaderBinary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Downloader.Binary = binary
	}
}
