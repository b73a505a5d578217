package config

const (
	defaultOutputDir           = "./muos-library"
	defaultWorkDir             = "~/.local/share/romshelf/work"
	defaultScraperBinary       = "Skyscraper"
	defaultScraperCacheDir     = "~/.skyscraper"
	defaultScraperMaxFails     = 3
	defaultCacheTimeout        = 300
	defaultGenerateTimeout     = 180
	defaultFetchRetries        = 3
	defaultFetchBackoff        = 2
	defaultFetchTimeout        = 120
	defaultFetchConcurrency    = 4
	defaultBoxWidth            = 320
	defaultBoxHeight           = 240
	defaultPreviewWidth        = 515
	defaultPreviewHeight       = 275
	defaultSymlinkThresholdGiB = 1
	defaultMinConfidence       = 0.5
	defaultRemoteMinConfidence = 0.6
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			WorkDir:   defaultWorkDir,
		},
		Scraper: Scraper{
			Binary:                 defaultScraperBinary,
			CacheDir:               defaultScraperCacheDir,
			MaxFails:               defaultScraperMaxFails,
			CacheTimeoutSeconds:    defaultCacheTimeout,
			GenerateTimeoutSeconds: defaultGenerateTimeout,
		},
		Fetch: Fetch{
			Enabled:        false,
			Retries:        defaultFetchRetries,
			BackoffSeconds: defaultFetchBackoff,
			TimeoutSeconds: defaultFetchTimeout,
			Concurrency:    defaultFetchConcurrency,
		},
		Artwork: Artwork{
			Enabled:       true,
			BoxWidth:      defaultBoxWidth,
			BoxHeight:     defaultBoxHeight,
			PreviewWidth:  defaultPreviewWidth,
			PreviewHeight: defaultPreviewHeight,
		},
		Build: Build{
			CopyRoms:            true,
			SymlinkThresholdGiB: defaultSymlinkThresholdGiB,
		},
		Matching: Matching{
			MinConfidence:       defaultMinConfidence,
			RemoteMinConfidence: defaultRemoteMinConfidence,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
