// Package skyscraper wraps Skyscraper CLI invocations: a remote caching pass
// and artwork-generation passes per platform. Invocations serialize on a
// cache-wide file lock because the tool's cache directory is shared state.
package skyscraper
