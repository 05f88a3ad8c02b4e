package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corpusdash/internal/testsupport"
)

// writeTestConfig writes a config file over a temp sandbox and a small
// two-platform corpus fixture, returning the config path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	dataDir := filepath.Join(base, "data")

	testsupport.WriteCorpusCSV(t, dataDir, "hashtag_korpus.csv",
		testsupport.CorpusRecord(map[string]string{
			"video_id": "yt-1", "platform": "YouTube", "hashtag": "#rente",
			"media_type": "video", "channel_name": "FinanzKanal",
			"title": "Rente erklärt", "video_description": "Altersvorsorge einfach",
			"transcript_german": "heute geht es um die Rente",
			"upload_date":       "2023-03-10", "views_count": "5000", "like_count": "400",
			"comments_count": "2", "subscribers_count": "120000",
			"german_sentiment_transcript": "(('positive', 0.93),)",
			"comment_id":                  "c1", "replied_to_comment_id": "root",
			"author_name": "alice", "comment_text": "sehr hilfreich",
			"sentiws_sentiment_comments": "0.6",
		}),
		testsupport.CorpusRecord(map[string]string{
			"video_id": "tt-1", "platform": "TikTok", "hashtag": "#rente",
			"channel_name": "renten_talk", "title": "Rente in 60 Sekunden",
			"upload_date": "2023-04-02", "views_count": "20000", "like_count": "3000",
			"comments_count": "15",
			"german_sentiment_transcript": "(('negative', 0.61),)",
		}),
	)

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
export_dir = %q
staging_dir = %q
log_dir = %q

[corpora]
influencer = "influencer_korpus"

[corpora.files]
hashtag_korpus = "hashtag_korpus.csv"

[presets]
db_path = %q

[logging]
format = "console"
level = "warn"
`,
		dataDir,
		filepath.Join(base, "exports"),
		filepath.Join(base, "staging"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "presets.db"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCorporaCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "corpora")
	if err != nil {
		t.Fatalf("corpora: %v", err)
	}
	if !strings.Contains(out, "hashtag_korpus") || !strings.Contains(out, "Hashtag") {
		t.Fatalf("output = %s", out)
	}
}

func TestFilterCommandJSON(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath,
		"filter", "--json", "--platform", "YouTube")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	var payload struct {
		Corpus string `json:"corpus"`
		RunID  string `json:"run_id"`
		Rows   int    `json:"rows"`
		Stages []struct {
			Stage string `json:"stage"`
			Rows  int    `json:"rows"`
		} `json:"stages"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if payload.Corpus != "hashtag_korpus" || payload.RunID == "" {
		t.Fatalf("payload = %+v", payload)
	}
	// The fixture has one YouTube row; the TikTok post drops at the
	// platform stage.
	if payload.Rows != 1 {
		t.Fatalf("rows = %d", payload.Rows)
	}
	if len(payload.Stages) != 12 {
		t.Fatalf("stages = %d", len(payload.Stages))
	}
}

func TestShowCommandRendersPosts(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Rente erklärt") || !strings.Contains(out, "FinanzKanal") {
		t.Fatalf("output = %s", out)
	}
}

func TestShowCommandDrillDown(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "show", "--video", "yt-1", "--anonymize")
	if err != nil {
		t.Fatalf("show --video: %v", err)
	}
	if !strings.Contains(out, "sehr hilfreich") {
		t.Fatalf("comment missing: %s", out)
	}
	if strings.Contains(out, "alice") || !strings.Contains(out, "user0") {
		t.Fatalf("anonymization missing: %s", out)
	}
	if !strings.Contains(out, "Description: Altersvorsorge einfach") {
		t.Fatalf("description missing: %s", out)
	}
	if !strings.Contains(out, "Transcript: heute geht es um die Rente") {
		t.Fatalf("transcript missing: %s", out)
	}
	if !strings.Contains(out, "Unique commenters: 1") {
		t.Fatalf("commenter count missing: %s", out)
	}
	if !strings.Contains(out, "Most positive") {
		t.Fatalf("extremes missing: %s", out)
	}
}

func TestShowCommandNoMatch(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "show", "--identity", "#doesnotexist")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "No data matches the current filters") {
		t.Fatalf("output = %s", out)
	}
}

func TestMetricsCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if !strings.Contains(out, "#rente") || !strings.Contains(out, "YouTube") {
		t.Fatalf("output = %s", out)
	}
}

func TestTimelineCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "timeline", "--by", "month")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if !strings.Contains(out, "2023-03") || !strings.Contains(out, "2023-04") {
		t.Fatalf("output = %s", out)
	}
}

func TestRootCommandConstruction(t *testing.T) {
	root := newRootCommand()

	// Every subcommand shares the filter flag set; command-local flags must
	// not collide with it.
	timeline, _, err := root.Find([]string{"timeline"})
	if err != nil {
		t.Fatalf("find timeline: %v", err)
	}
	subscribers := timeline.Flags().Lookup("subscribers")
	if subscribers == nil || subscribers.Value.Type() != "string" {
		t.Fatalf("subscribers flag = %+v, want the MIN:MAX range", subscribers)
	}
	if timeline.Flags().Lookup("metric") == nil {
		t.Fatal("metric flag missing")
	}
}

func TestTimelineEngagementCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "timeline", "--metric", "engagement")
	if err != nil {
		t.Fatalf("timeline --metric engagement: %v", err)
	}
	for _, want := range []string{"Views", "Likes", "Comments", "5000", "20000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %s", want, out)
		}
	}

	if _, err := runCommand(t, "--config", configPath, "timeline", "--metric", "clicks"); err == nil {
		t.Fatal("expected error for unknown metric")
	}
}

func TestTermsCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "terms", "--top", "5")
	if err != nil {
		t.Fatalf("terms: %v", err)
	}
	if !strings.Contains(out, "rente") {
		t.Fatalf("output = %s", out)
	}
}

func TestPresetsRoundTrip(t *testing.T) {
	configPath := writeTestConfig(t)

	if _, err := runCommand(t, "--config", configPath,
		"presets", "save", "yt-only", "--platform", "YouTube"); err != nil {
		t.Fatalf("presets save: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "presets", "list")
	if err != nil {
		t.Fatalf("presets list: %v", err)
	}
	if !strings.Contains(out, "yt-only") {
		t.Fatalf("list output = %s", out)
	}

	out, err = runCommand(t, "--config", configPath,
		"filter", "--json", "--preset", "yt-only")
	if err != nil {
		t.Fatalf("filter --preset: %v", err)
	}
	var payload struct {
		Rows int `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Rows != 1 {
		t.Fatalf("rows = %d", payload.Rows)
	}

	if _, err := runCommand(t, "--config", configPath, "presets", "delete", "yt-only"); err != nil {
		t.Fatalf("presets delete: %v", err)
	}
	if _, err := runCommand(t, "--config", configPath, "presets", "show", "yt-only"); err == nil {
		t.Fatal("expected error for deleted preset")
	}
}

func TestKeywordWarningGoesToStderr(t *testing.T) {
	configPath := writeTestConfig(t)
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", configPath, "filter", "--keyword", "rente"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(stderr.String(), "no target column") {
		t.Fatalf("stderr = %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "2 rows remain") {
		t.Fatalf("stdout = %s", stdout.String())
	}
}

func TestParseRangeFlag(t *testing.T) {
	r, err := parseRangeFlag("100:5000")
	if err != nil || r == nil || r.Min != 100 || r.Max != 5000 {
		t.Fatalf("r=%+v err=%v", r, err)
	}
	r, err = parseRangeFlag("1000:")
	if err != nil || r.Min != 1000 {
		t.Fatalf("open max: r=%+v err=%v", r, err)
	}
	if _, err = parseRangeFlag("10"); err == nil {
		t.Fatal("expected error for missing separator")
	}
	if _, err = parseRangeFlag("9:1"); err == nil {
		t.Fatal("expected error for inverted bounds")
	}
	r, err = parseRangeFlag("")
	if err != nil || r != nil {
		t.Fatalf("empty: r=%+v err=%v", r, err)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output = %s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
}
