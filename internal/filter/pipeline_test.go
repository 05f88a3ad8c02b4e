package filter_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"corpusdash/internal/corpus"
	"corpusdash/internal/filter"
	"corpusdash/internal/logging"
)

func TestRunZeroStatePassesEverything(t *testing.T) {
	table := fixtureTable()
	result := filter.Run(context.Background(), logging.NewNop(), table, filter.State{})

	if result.Table.Len() != table.Len() {
		t.Fatalf("rows = %d, want %d", result.Table.Len(), table.Len())
	}
	if result.RunID == "" {
		t.Error("expected a run id")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v", result.Warnings)
	}
	for _, sc := range result.StageCounts {
		if sc.Rows != table.Len() {
			t.Errorf("stage %s narrowed a zero state to %d rows", sc.Stage, sc.Rows)
		}
	}
	if result.Identity.Label != "Hashtag" {
		t.Errorf("identity = %+v", result.Identity)
	}
}

func TestRunStageCountsAreMonotonic(t *testing.T) {
	table := fixtureTable()
	state := filter.State{
		Identities:  []string{"#fitness", "#food"},
		Platforms:   []string{"YouTube", "TikTok"},
		StartDate:   "2023-03-01",
		EndDate:     "2023-12-31",
		KeywordList: []string{"workout", "stretch"},
		Caption:     true,
		Views:       &filter.Range{Min: 1000, Max: 50000},
	}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)

	prev := table.Len()
	for _, sc := range result.StageCounts {
		if sc.Rows > prev {
			t.Fatalf("stage %s grew the table from %d to %d rows", sc.Stage, prev, sc.Rows)
		}
		prev = sc.Rows
	}
	if len(result.StageCounts) != 12 {
		t.Fatalf("expected 12 stage counts, got %d: %+v", len(result.StageCounts), result.StageCounts)
	}
	if result.Table.Len() != prev {
		t.Fatalf("final table has %d rows, last stage count %d", result.Table.Len(), prev)
	}
}

func TestRunIntersectsStages(t *testing.T) {
	table := fixtureTable()
	state := filter.State{
		Platforms: []string{"YouTube"},
		StartDate: "2023-03-01",
		EndDate:   "2023-03-31",
		Positive:  true,
	}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)
	assertIDs(t, result.Table, "yt-1/c1", "yt-1/c2")
}

func TestRunDoesNotMutateInput(t *testing.T) {
	table := fixtureTable()
	before := table.Len()
	state := filter.State{VideoID: "tt-1"}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)

	if table.Len() != before {
		t.Fatalf("input table mutated: %d rows", table.Len())
	}
	assertIDs(t, result.Table, "tt-1")
}

func TestRunKeywordMisconfigurationWarnsAndPasses(t *testing.T) {
	table := fixtureTable()
	state := filter.State{KeywordList: []string{"vegan"}}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)

	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "no target column") {
		t.Fatalf("warning = %q", result.Warnings[0])
	}
	if result.Table.Len() != table.Len() {
		t.Fatalf("degraded keyword stage narrowed to %d rows", result.Table.Len())
	}
}

func TestRunMalformedDateWarnsAndPasses(t *testing.T) {
	table := fixtureTable()
	state := filter.State{StartDate: "10.03.2023"}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)

	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v", result.Warnings)
	}
	if result.Table.Len() != table.Len() {
		t.Fatalf("degraded date stage narrowed to %d rows", result.Table.Len())
	}
	if len(result.StageCounts) != 12 {
		t.Fatalf("expected every stage counted, got %d", len(result.StageCounts))
	}
}

func TestRunToleratesEmptyIntermediates(t *testing.T) {
	table := fixtureTable()
	state := filter.State{
		Identities: []string{"#doesnotexist"},
		Platforms:  []string{"YouTube"},
		Positive:   true,
		VideoID:    "yt-1",
	}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)
	if !result.Empty() {
		t.Fatalf("expected empty result, got %d rows", result.Table.Len())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("empty result is not a warning: %v", result.Warnings)
	}
}

// TestRunIntersectionScenario checks the pipeline against an independently
// computed set intersection over a 100-row, three-platform table.
func TestRunIntersectionScenario(t *testing.T) {
	platforms := []corpus.Platform{corpus.PlatformYouTube, corpus.PlatformTikTok, corpus.PlatformInstagram}
	table := &corpus.Table{
		Name:     "influencer_korpus",
		Identity: corpus.Identity{Kind: corpus.IdentityHashtag, Column: "hashtag", Label: "Hashtag"},
	}
	for i := 0; i < 100; i++ {
		row := corpus.Row{
			VideoID:  fmt.Sprintf("v%03d", i),
			Platform: platforms[i%3],
			Identity: "#mix",
			Views:    int64(i * 100),
		}
		if i < 80 {
			row.Title = fmt.Sprintf("post %d", i)
		}
		if row.Platform == corpus.PlatformYouTube {
			if i%2 == 0 {
				row.MediaType = "shorts"
			} else {
				row.MediaType = "video"
			}
		}
		table.Rows = append(table.Rows, row)
	}

	want := make(map[string]struct{})
	for i := range table.Rows {
		row := &table.Rows[i]
		if row.Platform == corpus.PlatformYouTube && row.MediaType == "shorts" && row.Views >= 1000 {
			want[row.VideoID] = struct{}{}
		}
	}
	if len(want) == 0 {
		t.Fatal("fixture produced an empty expectation")
	}

	state := filter.State{
		Platforms: []string{"YouTube"},
		Shorts:    true,
		Views:     &filter.Range{Min: 1000, Max: 1 << 40},
	}
	result := filter.Run(context.Background(), logging.NewNop(), table, state)

	if result.Table.Len() != len(want) {
		t.Fatalf("rows = %d, want %d", result.Table.Len(), len(want))
	}
	for i := range result.Table.Rows {
		row := &result.Table.Rows[i]
		if _, ok := want[row.VideoID]; !ok {
			t.Fatalf("row %s not in the independent intersection", row.VideoID)
		}
		if row.Platform != corpus.PlatformYouTube || row.MediaType != "shorts" || row.Views < 1000 {
			t.Fatalf("row %s violates a predicate: %+v", row.VideoID, row)
		}
	}
}

func TestRunNilLogger(t *testing.T) {
	table := fixtureTable()
	result := filter.Run(context.Background(), nil, table, filter.State{})
	if result.Table.Len() != table.Len() {
		t.Fatalf("rows = %d", result.Table.Len())
	}
}
