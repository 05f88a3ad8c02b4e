// Package filter implements the multi-stage tabular filter pipeline.
//
// A State captures one render's worth of user selections as a flat,
// JSON-serializable value object. Each filter dimension is an independent
// pure predicate producing a row mask over a corpus table, with "empty
// selection passes everything" semantics. Run sequences the predicates in a
// fixed stage order, threading the progressively narrowed table through each
// stage; candidate options for a stage (channel lists, slider bounds) always
// derive from the previous stage's output, never from the raw table.
package filter
