package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable for a build.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScraper(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	if err := c.validateArtwork(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if len(c.Paths.RomDirs) == 0 {
		return errors.New("paths.rom_dirs must list at least one ROM source directory (or pass --rom-dir)")
	}
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	return nil
}

func (c *Config) validateScraper() error {
	if c.Scraper.Binary == "" {
		return errors.New("scraper.binary must be set")
	}
	if c.Scraper.CacheDir == "" {
		return errors.New("scraper.cache_dir must be set")
	}
	return ensurePositiveMap(map[string]int{
		"scraper.max_fails":        c.Scraper.MaxFails,
		"scraper.cache_timeout":    c.Scraper.CacheTimeoutSeconds,
		"scraper.generate_timeout": c.Scraper.GenerateTimeoutSeconds,
	})
}

func (c *Config) validateFetch() error {
	if !c.Fetch.Enabled {
		return nil
	}
	return ensurePositiveMap(map[string]int{
		"fetch.retries":         c.Fetch.Retries,
		"fetch.backoff_seconds": c.Fetch.BackoffSeconds,
		"fetch.timeout_seconds": c.Fetch.TimeoutSeconds,
		"fetch.concurrency":     c.Fetch.Concurrency,
	})
}

func (c *Config) validateArtwork() error {
	if !c.Artwork.Enabled {
		return nil
	}
	return ensurePositiveMap(map[string]int{
		"artwork.box_width":      c.Artwork.BoxWidth,
		"artwork.box_height":     c.Artwork.BoxHeight,
		"artwork.preview_width":  c.Artwork.PreviewWidth,
		"artwork.preview_height": c.Artwork.PreviewHeight,
	})
}

func (c *Config) validateMatching() error {
	if c.Matching.MinConfidence <= 0 || c.Matching.MinConfidence > 1 {
		return errors.New("matching.min_confidence must be in (0, 1]")
	}
	if c.Matching.RemoteMinConfidence <= 0 || c.Matching.RemoteMinConfidence > 1 {
		return errors.New("matching.remote_min_confidence must be in (0, 1]")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
