// Package pipeline drives a library build end to end: catalog loading,
// platform routing, ROM resolution and download, scraping passes, metadata
// and artwork generation, and output tree placement. Platforms build one at
// a time; within a platform only downloads run concurrently.
package pipeline
