// Command romshelf builds a muOS handheld game library from a curated
// catalog CSV: it resolves ROM files, runs the scraping engine, and lays
// out the Roms, BIOS, and catalogue directories.
package main
