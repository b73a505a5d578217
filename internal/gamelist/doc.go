// Package gamelist parses the scraping engine's structured export (an
// EmulationStation gamelist document) into per-ROM records. The export is a
// transient intermediate; callers delete it after extraction.
package gamelist
