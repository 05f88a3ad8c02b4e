// Package logging assembles the structured slog loggers used across
// corpusdash commands.
//
// It centralizes level and output plumbing and exposes context-aware helpers
// so pipeline code can automatically tag log lines with corpus names, stage
// names, and correlation IDs. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
