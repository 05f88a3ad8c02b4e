package filter_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"corpusdash/internal/filter"
	"corpusdash/internal/sentiment"
	"corpusdash/internal/services"
)

func TestStateRoundTrip(t *testing.T) {
	state := filter.State{
		Corpus:      "influencer_korpus",
		Identities:  []string{"#fitness", "#food"},
		Channels:    []string{"Channel A"},
		StartDate:   "2023-01-01",
		EndDate:     "2023-06-30",
		Platforms:   []string{"YouTube", "TikTok"},
		Shorts:      true,
		KeywordList: []string{"vegan", "protein"},
		TitleColumn: true,
		Views:       &filter.Range{Min: 100, Max: 50000},
		Positive:    true,
		VideoID:     "abc123",
	}

	var buf bytes.Buffer
	if err := state.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := filter.Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Corpus != state.Corpus {
		t.Errorf("corpus = %q, want %q", loaded.Corpus, state.Corpus)
	}
	if len(loaded.Identities) != 2 || loaded.Identities[0] != "#fitness" {
		t.Errorf("identities = %v", loaded.Identities)
	}
	if loaded.Views == nil || *loaded.Views != (filter.Range{Min: 100, Max: 50000}) {
		t.Errorf("views = %v", loaded.Views)
	}
	if !loaded.Positive || loaded.Negative {
		t.Errorf("sentiment toggles lost: %+v", loaded)
	}
	if loaded.VideoID != "abc123" {
		t.Errorf("video id = %q", loaded.VideoID)
	}
}

func TestStateJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := (filter.State{Corpus: "hashtag_korpus"}).Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	out := buf.String()
	for _, key := range []string{
		"corpus_select", "hashtags_select", "channels_select",
		"start_date", "end_date", "platform",
		"shorts_filter", "videos_filter", "posts_filter", "reels_filter", "carousel_filter",
		"keywords", "caption_filter", "title_filter", "transcripts_filter",
		"positive_filter", "neutral_filter", "negative_filter", "video_id_input",
	} {
		if !strings.Contains(out, `"`+key+`"`) {
			t.Errorf("snapshot missing key %q", key)
		}
	}
	if strings.Contains(out, "views_slider") {
		t.Errorf("nil range should be omitted: %s", out)
	}
}

func TestRangeMarshalsAsPair(t *testing.T) {
	var buf bytes.Buffer
	state := filter.State{Likes: &filter.Range{Min: 5, Max: 9}}
	if err := state.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	compact := strings.ReplaceAll(strings.ReplaceAll(buf.String(), "\n", ""), " ", "")
	if !strings.Contains(compact, `"likes_slider":[5,9]`) {
		t.Fatalf("expected array form, got %s", buf.String())
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	state := filter.State{Corpus: "influencer_korpus", EndDate: "2024-02-29"}
	if err := state.SaveFile(path); err != nil {
		t.Fatalf("save file: %v", err)
	}
	loaded, err := filter.LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if loaded.EndDate != "2024-02-29" {
		t.Errorf("end date = %q", loaded.EndDate)
	}
}

func TestCleanKeywords(t *testing.T) {
	state := filter.State{KeywordList: []string{"", "  ", " vegan ", "protein"}}
	got := state.CleanKeywords()
	if len(got) != 2 || got[0] != "vegan" || got[1] != "protein" {
		t.Fatalf("cleaned = %v", got)
	}
}

func TestSentimentLabels(t *testing.T) {
	state := filter.State{Positive: true, Negative: true}
	labels := state.SentimentLabels()
	if len(labels) != 2 {
		t.Fatalf("labels = %v", labels)
	}
	if labels[0] != sentiment.LabelPositive || labels[1] != sentiment.LabelNegative {
		t.Fatalf("labels = %v", labels)
	}
}

func TestDateBounds(t *testing.T) {
	state := filter.State{StartDate: "2023-03-01", EndDate: ""}
	start, _, hasStart, hasEnd, err := state.DateBounds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasStart || hasEnd {
		t.Fatalf("hasStart=%v hasEnd=%v", hasStart, hasEnd)
	}
	if start.Format("2006-01-02") != "2023-03-01" {
		t.Errorf("start = %v", start)
	}
}

func TestDateBoundsMalformed(t *testing.T) {
	state := filter.State{StartDate: "01.03.2023"}
	_, _, _, _, err := state.DateBounds()
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !errors.Is(err, services.ErrFilterConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	if services.Classify(err) != services.SeverityWarning {
		t.Fatalf("expected warning severity, got %v", services.Classify(err))
	}
}
