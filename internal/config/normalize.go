package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCorpora(); err != nil {
		return err
	}
	c.normalizeDownloader()
	if err := c.normalizePresets(); err != nil {
		return err
	}
	if err := c.normalizeText(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCorpora() error {
	c.Corpora.Influencer = strings.TrimSpace(c.Corpora.Influencer)
	if c.Corpora.Influencer == "" {
		c.Corpora.Influencer = defaultInfluencerCorpus
	}
	if c.Corpora.Files == nil {
		c.Corpora.Files = map[string]string{}
	}
	normalized := make(map[string]string, len(c.Corpora.Files))
	for name, path := range c.Corpora.Files {
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if name == "" || path == "" {
			return fmt.Errorf("corpora.files: empty corpus name or path")
		}
		normalized[name] = path
	}
	c.Corpora.Files = normalized
	return nil
}

func (c *Config) normalizeDownloader() {
	c.Downloader.Binary = strings.TrimSpace(c.Downloader.Binary)
	if c.Downloader.Binary == "" {
		c.Downloader.Binary = defaultDownloaderBinary
	}
	c.Downloader.FFmpegBinary = strings.TrimSpace(c.Downloader.FFmpegBinary)
	if c.Downloader.FFmpegBinary == "" {
		c.Downloader.FFmpegBinary = defaultFFmpegBinary
	}
	if c.Downloader.TimeoutSeconds <= 0 {
		c.Downloader.TimeoutSeconds = defaultDownloaderTimeout
	}
}

func (c *Config) normalizePresets() error {
	c.Presets.DBPath = strings.TrimSpace(c.Presets.DBPath)
	if c.Presets.DBPath == "" {
		c.Presets.DBPath = defaultPresetsDBPath
	}
	var err error
	if c.Presets.DBPath, err = expandPath(c.Presets.DBPath); err != nil {
		return fmt.Errorf("presets.db_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeText() error {
	c.Text.StopwordsPath = strings.TrimSpace(c.Text.StopwordsPath)
	if c.Text.StopwordsPath == "" {
		return nil
	}
	var err error
	if c.Text.StopwordsPath, err = expandPath(c.Text.StopwordsPath); err != nil {
		return fmt.Errorf("text.stopwords_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
