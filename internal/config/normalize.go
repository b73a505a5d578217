package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	for i, dir := range c.Paths.RomDirs {
		if c.Paths.RomDirs[i], err = expandPath(dir); err != nil {
			return fmt.Errorf("paths.rom_dirs[%d]: %w", i, err)
		}
	}
	if c.Scraper.CacheDir, err = expandPath(c.Scraper.CacheDir); err != nil {
		return fmt.Errorf("scraper.cache_dir: %w", err)
	}
	c.Scraper.Binary = strings.TrimSpace(c.Scraper.Binary)
	if c.Scraper.Binary == "" {
		c.Scraper.Binary = defaultScraperBinary
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
