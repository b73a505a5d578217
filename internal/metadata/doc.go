// Package metadata renders scraped game records into the firmware's
// plain-text description format and writes them alongside the catalogue
// artwork directories.
package metadata
