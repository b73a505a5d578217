// Package catalog parses the curated game spreadsheet export into typed
// entries. A broken header is fatal; broken rows are skipped with warnings.
package catalog
