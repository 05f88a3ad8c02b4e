package comments

import (
	"corpusdash/internal/corpus"
	"corpusdash/internal/sentiment"
)

// Extreme is a comment row paired with its coerced sentiws score.
type Extreme struct {
	Row   *corpus.Row
	Score float64
}

// Extremes returns the most positive and most negative comments of a table
// by sentiws score. Comment rows without a score annotation are skipped;
// a present but non-coercible score is a hard error carrying the offending
// value. ok is false when the table has no scored comments.
func Extremes(t *corpus.Table) (mostPositive, mostNegative Extreme, ok bool, err error) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if !row.HasComment() || row.CommentScoreRaw == "" {
			continue
		}
		score, serr := sentiment.Score(row.CommentScoreRaw)
		if serr != nil {
			return Extreme{}, Extreme{}, false, serr
		}
		if !ok {
			mostPositive = Extreme{Row: row, Score: score}
			mostNegative = Extreme{Row: row, Score: score}
			ok = true
			continue
		}
		if score > mostPositive.Score {
			mostPositive = Extreme{Row: row, Score: score}
		}
		if score < mostNegative.Score {
			mostNegative = Extreme{Row: row, Score: score}
		}
	}
	return mostPositive, mostNegative, ok, nil
}
