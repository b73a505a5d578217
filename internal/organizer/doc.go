// Package organizer builds the firmware output tree: the Roms, BIOS, and
// per-platform catalogue directory skeleton, ROM and BIOS file placement,
// and cleanup of transient scraping artifacts.
package organizer
