// Package logging assembles the structured slog loggers used across the
// build pipeline.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides Attr aliases plus a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so all
// components emit lines with the same shape.
package logging
