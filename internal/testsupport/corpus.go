package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// CorpusColumns is the header of corpus fixtures written by WriteCorpusCSV.
// It carries both identity columns so one fixture serves hashtag and
// profile corpora alike.
var CorpusColumns = []string{
	"video_id", "platform", "hashtag", "profile_name", "media_type",
	"channel_name", "title", "video_description", "transcript_german",
	"original_url", "video_duration", "upload_date", "extracted_date",
	"views_count", "like_count", "comments_count", "subscribers_count",
	"german_sentiment_transcript", "comment_id", "replied_to_comment_id",
	"author_name", "comment_text", "comment_likes", "comment_date",
	"german_sentiment_comments", "sentiws_sentiment_comments",
}

// CorpusRecord builds one CSV record from a column-name map; unnamed
// columns stay empty.
func CorpusRecord(cells map[string]string) []string {
	record := make([]string, len(CorpusColumns))
	for i, col := range CorpusColumns {
		record[i] = cells[col]
	}
	return record
}

// WriteCorpusCSV writes a corpus fixture file and returns its path.
func WriteCorpusCSV(t testing.TB, dir, name string, records ...[]string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CorpusColumns); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			t.Fatalf("write record: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
	return path
}
