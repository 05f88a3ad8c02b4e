package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"corpusdash/internal/config"
	"corpusdash/internal/services"
)

// Column names shared with the scraped CSV files.
const (
	colVideoID             = "video_id"
	colPlatform            = "platform"
	colHashtag             = "hashtag"
	colProfileName         = "profile_name"
	colMediaType           = "media_type"
	colChannelName         = "channel_name"
	colTitle               = "title"
	colDescription         = "video_description"
	colTranscript          = "transcript_german"
	colOriginalURL         = "original_url"
	colVideoDuration       = "video_duration"
	colUploadDate          = "upload_date"
	colExtractedDate       = "extracted_date"
	colViews               = "views_count"
	colLikes               = "like_count"
	colComments            = "comments_count"
	colSubscribers         = "subscribers_count"
	colTranscriptSentiment = "german_sentiment_transcript"
	colCommentID           = "comment_id"
	colParentCommentID     = "replied_to_comment_id"
	colAuthorName          = "author_name"
	colCommentText         = "comment_text"
	colCommentLikes        = "comment_likes"
	colCommentDate         = "comment_date"
	colCommentSentiment    = "german_sentiment_comments"
	colCommentScore        = "sentiws_sentiment_comments"
)

// requiredColumns must be present in every corpus file. The identity column
// (hashtag or profile_name) is checked separately based on the corpus kind.
var requiredColumns = []string{
	colVideoID,
	colPlatform,
	colChannelName,
	colTitle,
	colUploadDate,
	colViews,
	colLikes,
	colComments,
}

// Load reads the named corpus from the configured registry into a Table.
// Unknown corpus names wrap services.ErrNotFound; unreadable or malformed
// files wrap services.ErrCorpusLoad.
func Load(cfg *config.Config, name string) (*Table, error) {
	path, ok := cfg.CorpusPath(name)
	if !ok {
		return nil, services.Wrap(services.ErrNotFound, "loader", "resolve corpus",
			fmt.Sprintf("corpus %q is not registered", name), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrCorpusLoad, "loader", "open corpus", name, err)
	}
	defer file.Close()

	identity := Identity{Kind: IdentityHashtag, Column: colHashtag, Label: "Hashtag"}
	if cfg.IsInfluencerCorpus(name) {
		identity = Identity{Kind: IdentityProfile, Column: colProfileName, Label: "Profile"}
	}

	table, err := Read(file, name, identity)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Read parses CSV corpus data from r. The identity argument selects which
// source column feeds Row.Identity; it is threaded through the returned
// table so later stages never re-derive it.
func Read(r io.Reader, name string, identity Identity) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, services.Wrap(services.ErrCorpusLoad, "loader", "read header", name, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range append(append([]string{}, requiredColumns...), identity.Column) {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, services.Wrap(services.ErrCorpusLoad, "loader", "check columns",
			fmt.Sprintf("%s: missing required columns %s", name, strings.Join(missing, ", ")), nil)
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Row, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, services.Wrap(services.ErrCorpusLoad, "loader", "read record", name, err)
		}

		commentID := cell(record, colCommentID)
		row := Row{
			VideoID:             cell(record, colVideoID),
			Platform:            ParsePlatform(cell(record, colPlatform)),
			Identity:            cell(record, identity.Column),
			MediaType:           cell(record, colMediaType),
			ChannelName:         cell(record, colChannelName),
			Title:               cell(record, colTitle),
			Description:         cell(record, colDescription),
			Transcript:          cell(record, colTranscript),
			OriginalURL:         cell(record, colOriginalURL),
			VideoDuration:       cell(record, colVideoDuration),
			UploadDate:          parseDate(cell(record, colUploadDate)),
			ExtractedDate:       parseDate(cell(record, colExtractedDate)),
			Views:               parseCount(cell(record, colViews)),
			Likes:               parseCount(cell(record, colLikes)),
			Comments:            parseCount(cell(record, colComments)),
			Subscribers:         parseCount(cell(record, colSubscribers)),
			TranscriptSentiment: cell(record, colTranscriptSentiment),
			CommentID:           commentID,
			ParentCommentID:     normalizeParent(cell(record, colParentCommentID), commentID),
			AuthorName:          cell(record, colAuthorName),
			CommentText:         cell(record, colCommentText),
			CommentLikes:        parseCount(cell(record, colCommentLikes)),
			CommentDate:         parseDate(cell(record, colCommentDate)),
			CommentSentiment:    cell(record, colCommentSentiment),
			CommentScoreRaw:     cell(record, colCommentScore),
		}
		rows = append(rows, row)
	}

	return &Table{Name: name, Identity: identity, Rows: rows}, nil
}
