// Package services defines shared utilities consumed by the filter pipeline
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp corpus names, pipeline stages, video IDs,
//     and correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent severities (fatal vs warning).
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the commands.
package services
