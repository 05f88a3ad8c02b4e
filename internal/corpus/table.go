package corpus

import "time"

// RootSentinel marks a top-level comment in replied_to_comment_id.
const RootSentinel = "root"

// IdentityKind distinguishes the per-corpus grouping key.
type IdentityKind int

const (
	IdentityHashtag IdentityKind = iota
	IdentityProfile
)

// Identity describes the resolved identity column of a corpus. It is
// computed once at load time; downstream code reads Row.Identity and never
// branches on the corpus name again.
type Identity struct {
	Kind   IdentityKind
	Column string // source column: "hashtag" or "profile_name"
	Label  string // display label: "Hashtag" or "Profile"
}

// Row is one corpus record: a post joined with at most one of its comments.
// Post-level fields repeat across a post's rows. A post without comments has
// exactly one row with empty comment fields.
type Row struct {
	VideoID       string
	Platform      Platform
	Identity      string // hashtag or profile name, per the corpus kind
	MediaType     string
	ChannelName   string
	Title         string
	Description   string
	Transcript    string
	OriginalURL   string
	VideoDuration string
	UploadDate    time.Time // zero = unknown date
	ExtractedDate time.Time
	Views         int64
	Likes         int64
	Comments      int64
	Subscribers   int64

	// Raw post-level transcript sentiment annotation; parsed lazily by the
	// sentiment package.
	TranscriptSentiment string

	// Comment-level fields; empty CommentID means this row carries no comment.
	CommentID        string
	ParentCommentID  string
	AuthorName       string
	CommentText      string
	CommentLikes     int64
	CommentDate      time.Time
	CommentSentiment string // german_sentiment_comments annotation
	CommentScoreRaw  string // sentiws numeric score as scraped
}

// IsPost reports whether the row is a post's primary row. Rows lacking a
// title are comment continuation rows and are excluded from the main display
// and from post counts.
func (r *Row) IsPost() bool {
	return r.Title != ""
}

// HasComment reports whether the row carries comment data.
func (r *Row) HasComment() bool {
	return r.CommentID != ""
}

// IsRootComment reports whether the row's comment is a thread root.
func (r *Row) IsRootComment() bool {
	return r.HasComment() && (r.ParentCommentID == "" || r.ParentCommentID == RootSentinel)
}

// Table is a named, typed corpus slice. Filtering produces new tables; the
// loaded table is never mutated.
type Table struct {
	Name     string
	Identity Identity
	Rows     []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Select returns a new table containing the rows at the given indices. The
// receiver is unchanged.
func (t *Table) Select(indices []int) *Table {
	rows := make([]Row, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, t.Rows[i])
	}
	return &Table{Name: t.Name, Identity: t.Identity, Rows: rows}
}

// VideoIDs returns the distinct video ids in first-seen order.
func (t *Table) VideoIDs() []string {
	seen := make(map[string]struct{}, len(t.Rows))
	ids := make([]string, 0, len(t.Rows))
	for i := range t.Rows {
		id := t.Rows[i].VideoID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// PostRows returns the indices of rows with a non-empty title, one per
// displayed post.
func (t *Table) PostRows() []int {
	indices := make([]int, 0, len(t.Rows))
	for i := range t.Rows {
		if t.Rows[i].IsPost() {
			indices = append(indices, i)
		}
	}
	return indices
}

// ForVideo returns a new table holding every row of the given video id,
// independent of any filter state. This backs the drill-down contract.
func (t *Table) ForVideo(videoID string) *Table {
	indices := make([]int, 0, 8)
	for i := range t.Rows {
		if t.Rows[i].VideoID == videoID {
			indices = append(indices, i)
		}
	}
	return t.Select(indices)
}
