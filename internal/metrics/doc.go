// Package metrics computes read-only aggregation views over a filtered
// corpus table: per-identity per-platform maxima, time-bucketed post
// counts, distribution shares, and stopword-filtered term frequencies.
// Every function tolerates an empty table and returns empty results
// rather than failing.
package metrics
