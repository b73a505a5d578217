// Package config loads, normalizes, and validates romshelf configuration.
//
// Configuration is a TOML document with repository defaults applied first,
// then file values, then environment overrides for credentials, then CLI flag
// overrides applied by the command layer before Validate runs.
package config
