// Package export writes filtered tables and single-post subtables to CSV
// with the display column layout.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"corpusdash/internal/corpus"
	"corpusdash/internal/services"
)

// dateLayout is the cell format for exported date columns; unknown dates
// export as empty cells.
const dateLayout = "2006-01-02"

// displayColumns is the export header in display order. The identity column
// header comes from the table's resolved identity.
func displayColumns(identity corpus.Identity) []string {
	return []string{
		"video_id",
		"platform",
		identity.Column,
		"media_type",
		"channel_name",
		"title",
		"video_description",
		"transcript_german",
		"original_url",
		"video_duration",
		"upload_date",
		"views_count",
		"like_count",
		"comments_count",
		"subscribers_count",
		"german_sentiment_transcript",
		"comment_id",
		"replied_to_comment_id",
		"author_name",
		"comment_text",
		"comment_likes",
		"comment_date",
		"german_sentiment_comments",
		"sentiws_sentiment_comments",
	}
}

func rowCells(row *corpus.Row) []string {
	date := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(dateLayout)
	}
	count := func(v int64) string {
		return strconv.FormatInt(v, 10)
	}
	return []string{
		row.VideoID,
		string(row.Platform),
		row.Identity,
		row.MediaType,
		row.ChannelName,
		row.Title,
		row.Description,
		row.Transcript,
		row.OriginalURL,
		row.VideoDuration,
		date(row.UploadDate),
		count(row.Views),
		count(row.Likes),
		count(row.Comments),
		count(row.Subscribers),
		row.TranscriptSentiment,
		row.CommentID,
		row.ParentCommentID,
		row.AuthorName,
		row.CommentText,
		count(row.CommentLikes),
		date(row.CommentDate),
		row.CommentSentiment,
		row.CommentScoreRaw,
	}
}

// Write streams the table as CSV, header first, rows in table order.
func Write(w io.Writer, t *corpus.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(displayColumns(t.Identity)); err != nil {
		return services.Wrap(services.ErrValidation, "export", "write header", t.Name, err)
	}
	for i := range t.Rows {
		if err := cw.Write(rowCells(&t.Rows[i])); err != nil {
			return services.Wrap(services.ErrValidation, "export", "write row", t.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return services.Wrap(services.ErrValidation, "export", "flush", t.Name, err)
	}
	return nil
}

// TableFilename returns the timestamped default name for a filtered-table
// export.
func TableFilename(now time.Time) string {
	return fmt.Sprintf("Social_media_%s.csv", now.Format("20060102_150405"))
}

// PostFilename returns the default name for a single-post export.
func PostFilename(platform corpus.Platform, videoID string) string {
	return fmt.Sprintf("%s_%s_post.csv", sanitize(string(platform)), sanitize(videoID))
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}

// WriteFile exports the table to dir under the given filename, creating the
// directory as needed, and returns the full path.
func WriteFile(dir, filename string, t *corpus.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrValidation, "export", "create directory", dir, err)
	}
	path := filepath.Join(dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "export", "create file", path, err)
	}
	defer file.Close()
	if err := Write(file, t); err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", services.Wrap(services.ErrValidation, "export", "close file", path, err)
	}
	return path, nil
}
