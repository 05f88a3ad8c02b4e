package metrics

import (
	"sort"

	"corpusdash/internal/corpus"
	"corpusdash/internal/textutil"
)

// TermSource selects the text column term frequencies are drawn from.
type TermSource int

const (
	SourceTranscripts TermSource = iota
	SourceCaptions
	SourceTitles
	SourceComments
)

// ParseTermSource maps a flag value to a TermSource; unknown values fall
// back to transcripts.
func ParseTermSource(raw string) TermSource {
	switch raw {
	case "captions", "caption", "description":
		return SourceCaptions
	case "titles", "title":
		return SourceTitles
	case "comments", "comment":
		return SourceComments
	default:
		return SourceTranscripts
	}
}

func (s TermSource) String() string {
	switch s {
	case SourceCaptions:
		return "captions"
	case SourceTitles:
		return "titles"
	case SourceComments:
		return "comments"
	default:
		return "transcripts"
	}
}

// TermCount is one folded term and its occurrence count.
type TermCount struct {
	Term  string
	Count int
}

// TermFrequencies tokenizes the selected text column, drops stopwords and
// single-character tokens, and returns counts sorted by descending
// frequency and then term. Post-level sources read one text per post row;
// the comment source reads every comment row.
func TermFrequencies(t *corpus.Table, source TermSource, stop textutil.Stopwords) []TermCount {
	counts := make(map[string]int)

	tally := func(text string) {
		for _, token := range textutil.Tokens(text) {
			if len([]rune(token)) < 2 {
				continue
			}
			if stop.Contains(token) {
				continue
			}
			counts[token]++
		}
	}

	if source == SourceComments {
		for i := range t.Rows {
			if t.Rows[i].HasComment() {
				tally(t.Rows[i].CommentText)
			}
		}
	} else {
		for _, i := range t.PostRows() {
			row := &t.Rows[i]
			switch source {
			case SourceCaptions:
				tally(row.Description)
			case SourceTitles:
				tally(row.Title)
			default:
				tally(row.Transcript)
			}
		}
	}

	out := make([]TermCount, 0, len(counts))
	for term, n := range counts {
		out = append(out, TermCount{Term: term, Count: n})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Term < out[b].Term
	})
	return out
}
