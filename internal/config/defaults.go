package config

const (
	defaultDataDir           = "~/.local/share/corpusdash/corpora"
	defaultExportDir         = "~/.local/share/corpusdash/exports"
	defaultStagingDir        = "~/.local/share/corpusdash/staging"
	defaultLogDir            = "~/.local/share/corpusdash/logs"
	defaultInfluencerCorpus  = "influencer_korpus"
	defaultDownloaderBinary  = "yt-dlp"
	defaultFFmpegBinary      = "ffmpeg"
	defaultDownloaderTimeout = 600
	defaultPresetsDBPath     = "~/.local/share/corpusdash/presets.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			ExportDir:  defaultExportDir,
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
		},
		Corpora: Corpora{
			Influencer: defaultInfluencerCorpus,
			Files:      map[string]string{},
		},
		Downloader: Downloader{
			Binary:         defaultDownloaderBinary,
			FFmpegBinary:   defaultFFmpegBinary,
			TimeoutSeconds: defaultDownloaderTimeout,
		},
		Presets: Presets{
			DBPath: defaultPresetsDBPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
