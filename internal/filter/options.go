package filter

import (
	"time"

	"corpusdash/internal/corpus"
)

// IdentityOptions returns the distinct identity values of a table in
// first-seen order. Presentation layers use this to offer the hashtag or
// profile candidates of the current stage's table.
func IdentityOptions(t *corpus.Table) []string {
	return distinct(t, func(row *corpus.Row) string { return row.Identity })
}

// ChannelOptions returns the distinct channel names in first-seen order.
// The pipeline derives these from the table already narrowed by the
// identity, platform, media-type, and date stages.
func ChannelOptions(t *corpus.Table) []string {
	return distinct(t, func(row *corpus.Row) string { return row.ChannelName })
}

// DateBounds returns the minimum and maximum known upload dates. ok is
// false when the table has no row with a known upload date.
func DateBounds(t *corpus.Table) (min, max time.Time, ok bool) {
	for i := range t.Rows {
		d := t.Rows[i].UploadDate
		if d.IsZero() {
			continue
		}
		if !ok {
			min, max, ok = d, d, true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, ok
}

// MetricBounds returns the inclusive value range of a metric over the
// table, the default slider bounds for that stage. For the subscriber
// metric only YouTube rows contribute. ok is false on an empty table (or
// one without eligible rows for the metric).
func MetricBounds(t *corpus.Table, metric Metric) (bounds Range, ok bool) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if metric == MetricSubscribers && row.Platform != corpus.PlatformYouTube {
			continue
		}
		v := metric.value(row)
		if !ok {
			bounds = Range{Min: v, Max: v}
			ok = true
			continue
		}
		if v < bounds.Min {
			bounds.Min = v
		}
		if v > bounds.Max {
			bounds.Max = v
		}
	}
	return bounds, ok
}

func distinct(t *corpus.Table, key func(*corpus.Row) string) []string {
	seen := make(map[string]struct{}, t.Len())
	values := make([]string, 0, 16)
	for i := range t.Rows {
		v := key(&t.Rows[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
