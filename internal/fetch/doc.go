// Package fetch downloads ROM files from per-platform remote archives.
//
// Downloads stage into uniquely named temp files and move into place
// atomically, retrying transient network failures with exponential backoff.
// FetchQuery searches an archive's directory listing and picks the candidate
// that best matches a title, preferring USA and World releases.
package fetch
