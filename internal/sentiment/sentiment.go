package sentiment

import (
	"fmt"
	"strconv"
	"strings"

	"corpusdash/internal/services"
)

// Label classifies a post or comment sentiment.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
	// LabelUnparseable marks annotations Parse could not read. Rows carrying
	// it are excluded by sentiment filters but retained otherwise.
	LabelUnparseable Label = "unparseable"
)

// Known reports whether the label is one of the model's three classes.
func (l Label) Known() bool {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	}
	return false
}

// Sentiment is the parsed primary classification of an annotation.
type Sentiment struct {
	Label Label
	Score float64
}

// Parse reads a serialized (label, score) pair list and returns the primary
// classification. The annotations are Python literals such as
//
//	(('positive', 0.9822), ('neutral', 0.0134))
//	[('negative', 0.87)]
//
// Missing, malformed, or unrecognized input yields the Unparseable variant;
// Parse never returns an error. A recognized label with no readable score
// keeps the label and reports score zero.
func Parse(raw string) Sentiment {
	unparseable := Sentiment{Label: LabelUnparseable}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return unparseable
	}

	// Locate the first quoted token; it must be the primary label.
	start := strings.IndexAny(raw, `'"`)
	if start < 0 {
		return unparseable
	}
	quote := raw[start]
	rest := raw[start+1:]
	end := strings.IndexByte(rest, quote)
	if end < 0 {
		return unparseable
	}
	label := Label(strings.ToLower(strings.TrimSpace(rest[:end])))
	if !label.Known() {
		return unparseable
	}

	score, ok := firstNumber(rest[end+1:])
	if !ok {
		return Sentiment{Label: label}
	}

	return Sentiment{Label: label, Score: score}
}

// firstNumber scans for the first numeric literal in s.
func firstNumber(s string) (float64, bool) {
	isNumByte := func(b byte) bool {
		return b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' && (s[i] < '0' || s[i] > '9') {
			continue
		}
		j := i
		for j < len(s) && isNumByte(s[j]) {
			j++
		}
		if f, err := strconv.ParseFloat(s[i:j], 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Score strictly coerces a comment-level sentiws score to a float. Unlike
// Parse, a non-coercible value is a hard error carrying the offending input.
func Score(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, services.Wrap(services.ErrSentimentParse, "sentiment", "coerce score",
			"empty sentiws score", nil)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, services.Wrap(services.ErrSentimentParse, "sentiment", "coerce score",
			fmt.Sprintf("non-numeric sentiws score %q", raw), err)
	}
	return f, nil
}
