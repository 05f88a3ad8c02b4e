package corpus

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the timestamp shapes observed across the scraped
// corpora. Order matters: more specific layouts first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2006/01/02",
}

// parseDate parses a timestamp cell. Unparseable or empty values yield the
// zero time, the explicit "unknown date" marker; they are never an error.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parseCount coerces a count cell to a non-negative integer. Missing,
// non-numeric (including TikTok's "No subscribers count" sentinel), and
// negative values all become 0. Fractional values are truncated; the
// scrapers occasionally emit counts as floats.
func parseCount(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f < 0 {
			return 0
		}
		return int64(f)
	}
	return 0
}

// normalizeParent maps absent replied_to_comment_id values to the root
// sentinel. Every comment without a recorded parent is a thread root; the
// sentinel is only meaningful on rows that carry a comment at all.
func normalizeParent(raw, commentID string) string {
	raw = strings.TrimSpace(raw)
	if commentID == "" {
		return raw
	}
	if raw == "" {
		return RootSentinel
	}
	return raw
}
