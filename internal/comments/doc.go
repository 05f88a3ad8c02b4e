// Package comments builds per-video comment thread views: the reply tree,
// sentiment extremes, and anonymous author mapping for the drill-down
// display.
package comments
