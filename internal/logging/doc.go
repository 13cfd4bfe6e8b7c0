// Package logging assembles the structured slog loggers used across the
// pipeline.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes slim Attr helpers so extraction and merge code can tag log lines
// with pages, venues, and counts in a uniform shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
