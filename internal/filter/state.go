package filter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"corpusdash/internal/sentiment"
	"corpusdash/internal/services"
)

// Range is an inclusive numeric interval. It serializes as a two-element
// array to match the slider tuples in exported preset files.
type Range struct {
	Min int64
	Max int64
}

// MarshalJSON renders the range as [min, max].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{r.Min, r.Max})
}

// UnmarshalJSON accepts the [min, max] array form.
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// Contains reports whether v lies in the inclusive interval.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// stateDateLayout is the wire format for preset date fields.
const stateDateLayout = "2006-01-02"

// State is the flat filter selection for one render pass. The zero value
// selects nothing and excludes nothing: every dimension passes through.
// JSON field names match the preset snapshot format.
type State struct {
	Corpus     string   `json:"corpus_select"`
	Identities []string `json:"hashtags_select"`
	Channels   []string `json:"channels_select"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Platforms  []string `json:"platform"`

	Shorts   bool `json:"shorts_filter"`
	Videos   bool `json:"videos_filter"`
	Posts    bool `json:"posts_filter"`
	Reels    bool `json:"reels_filter"`
	Carousel bool `json:"carousel_filter"`

	KeywordList []string `json:"keywords"`
	Caption     bool     `json:"caption_filter"`
	TitleColumn bool     `json:"title_filter"`
	Transcripts bool     `json:"transcripts_filter"`

	Views       *Range `json:"views_slider,omitempty"`
	Subscribers *Range `json:"subscribers_slider,omitempty"`
	Likes       *Range `json:"likes_slider,omitempty"`
	Comments    *Range `json:"comments_slider,omitempty"`

	Positive bool `json:"positive_filter"`
	Neutral  bool `json:"neutral_filter"`
	Negative bool `json:"negative_filter"`

	VideoID string `json:"video_id_input"`
}

// CleanKeywords returns the keyword list without empty entries. Splitting an
// empty text input on commas yields [""], which means "no keywords".
func (s *State) CleanKeywords() []string {
	cleaned := make([]string, 0, len(s.KeywordList))
	for _, kw := range s.KeywordList {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		cleaned = append(cleaned, kw)
	}
	return cleaned
}

// KeywordColumnsSelected reports whether any keyword target column is on.
func (s *State) KeywordColumnsSelected() bool {
	return s.Caption || s.TitleColumn || s.Transcripts
}

// SentimentLabels returns the selected sentiment classes.
func (s *State) SentimentLabels() []sentiment.Label {
	labels := make([]sentiment.Label, 0, 3)
	if s.Positive {
		labels = append(labels, sentiment.LabelPositive)
	}
	if s.Neutral {
		labels = append(labels, sentiment.LabelNeutral)
	}
	if s.Negative {
		labels = append(labels, sentiment.LabelNegative)
	}
	return labels
}

// DateBounds parses the state's date fields. Empty fields report ok=false
// for their side; malformed fields are a filter configuration error so the
// date stage degrades to a pass-through with a warning.
func (s *State) DateBounds() (start, end time.Time, hasStart, hasEnd bool, err error) {
	if v := strings.TrimSpace(s.StartDate); v != "" {
		start, err = time.Parse(stateDateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false, false,
				services.Wrap(services.ErrFilterConfiguration, "date_range", "parse start date", v, err)
		}
		hasStart = true
	}
	if v := strings.TrimSpace(s.EndDate); v != "" {
		end, err = time.Parse(stateDateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false, false,
				services.Wrap(services.ErrFilterConfiguration, "date_range", "parse end date", v, err)
		}
		hasEnd = true
	}
	err = nil
	return start, end, hasStart, hasEnd, nil
}

// Save writes the state as an indented JSON snapshot.
func (s State) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode filter state: %w", err)
	}
	return nil
}

// SaveFile writes the state snapshot to path.
func (s State) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset file: %w", err)
	}
	defer file.Close()
	return s.Save(file)
}

// Load reads a state snapshot. The merge is structural only: selections
// referencing options absent from the current corpus simply narrow to an
// empty table at their stage rather than erroring.
func Load(r io.Reader) (State, error) {
	var s State
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return State{}, fmt.Errorf("decode filter state: %w", err)
	}
	return s, nil
}

// LoadFile reads a state snapshot from path.
func LoadFile(path string) (State, error) {
	file, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("open preset file: %w", err)
	}
	defer file.Close()
	return Load(file)
}
