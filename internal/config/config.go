package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string   `toml:"output_dir"`
	RomDirs   []string `toml:"rom_dirs"`
	WorkDir   string   `toml:"work_dir"`
}

// Scraper contains configuration for the external scraping engine.
type Scraper struct {
	Binary                 string `toml:"binary"`
	CacheDir               string `toml:"cache_dir"`
	Username               string `toml:"username"`
	Password               string `toml:"password"`
	MaxFails               int    `toml:"max_fails"`
	CacheTimeoutSeconds    int    `toml:"cache_timeout"`
	GenerateTimeoutSeconds int    `toml:"generate_timeout"`
}

// Fetch contains configuration for remote ROM downloads.
type Fetch struct {
	Enabled        bool `toml:"enabled"`
	Retries        int  `toml:"retries"`
	BackoffSeconds int  `toml:"backoff_seconds"`
	TimeoutSeconds int  `toml:"timeout_seconds"`
	Concurrency    int  `toml:"concurrency"`
}

// Artwork contains artwork normalization targets.
type Artwork struct {
	Enabled       bool `toml:"enabled"`
	BoxWidth      int  `toml:"box_width"`
	BoxHeight     int  `toml:"box_height"`
	PreviewWidth  int  `toml:"preview_width"`
	PreviewHeight int  `toml:"preview_height"`
}

// Build contains output tree behavior.
type Build struct {
	CopyRoms            bool `toml:"copy_roms"`
	SymlinkThresholdGiB int  `toml:"symlink_threshold_gib"`
}

// Matching contains fuzzy matching thresholds.
type Matching struct {
	MinConfidence       float64 `toml:"min_confidence"`
	RemoteMinConfidence float64 `toml:"remote_min_confidence"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Scraper  Scraper  `toml:"scraper"`
	Fetch    Fetch    `toml:"fetch"`
	Artwork  Artwork  `toml:"artwork"`
	Build    Build    `toml:"build"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the conventional config location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "romshelf", "config.toml"), nil
}

// Load reads configuration from path. An empty path means the default
// location, where an absent file falls back to defaults; a non-empty path
// must exist. Credentials may be supplied via SCREENSCRAPER_USER and
// SCREENSCRAPER_PASS, optionally loaded from a .env file in the working
// directory. The returned config is normalized but not yet validated;
// callers apply CLI overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// An absent file at the default location means defaults apply;
		// a path the user asked for must exist.
		if explicit {
			return nil, fmt.Errorf("config %s does not exist", path)
		}
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()
	if user := strings.TrimSpace(os.Getenv("SCREENSCRAPER_USER")); user != "" {
		cfg.Scraper.Username = user
	}
	if pass := strings.TrimSpace(os.Getenv("SCREENSCRAPER_PASS")); pass != "" {
		cfg.Scraper.Password = pass
	}
}
