package filter

import (
	"time"

	"corpusdash/internal/corpus"
	"corpusdash/internal/sentiment"
	"corpusdash/internal/services"
	"corpusdash/internal/textutil"
)

// Metric names a numeric post dimension a range filter can bound.
type Metric int

const (
	MetricViews Metric = iota
	MetricLikes
	MetricComments
	MetricSubscribers
)

func (m Metric) String() string {
	switch m {
	case MetricViews:
		return "views"
	case MetricLikes:
		return "likes"
	case MetricComments:
		return "comments"
	case MetricSubscribers:
		return "subscribers"
	default:
		return "unknown"
	}
}

func (m Metric) value(row *corpus.Row) int64 {
	switch m {
	case MetricViews:
		return row.Views
	case MetricLikes:
		return row.Likes
	case MetricComments:
		return row.Comments
	case MetricSubscribers:
		return row.Subscribers
	default:
		return 0
	}
}

// ByIdentity keeps rows whose identity value is in the selected set. An
// empty selection passes everything.
func ByIdentity(t *corpus.Table, selected []string) Mask {
	if len(selected) == 0 {
		return NewMask(t.Len(), true)
	}
	set := stringSet(selected)
	mask := make(Mask, t.Len())
	for i := range t.Rows {
		_, mask[i] = set[t.Rows[i].Identity]
	}
	return mask
}

// ByPlatform keeps rows whose platform is in the selected set.
func ByPlatform(t *corpus.Table, selected []corpus.Platform) Mask {
	if len(selected) == 0 {
		return NewMask(t.Len(), true)
	}
	set := make(map[corpus.Platform]struct{}, len(selected))
	for _, p := range selected {
		set[p] = struct{}{}
	}
	mask := make(Mask, t.Len())
	for i := range t.Rows {
		_, mask[i] = set[t.Rows[i].Platform]
	}
	return mask
}

// ByMediaType applies the platform-specific media-type toggles. Each
// platform's toggles constrain only that platform's rows: TikTok has no
// media types and always passes, and a platform with no toggles set passes
// untouched. For YouTube both toggles checked is the shorts/video union,
// which on clean data equals a pass-through.
func ByMediaType(t *corpus.Table, s State) Mask {
	youtube := make(map[string]struct{}, 2)
	if s.Shorts {
		youtube["shorts"] = struct{}{}
	}
	if s.Videos {
		youtube["video"] = struct{}{}
	}
	instagram := make(map[string]struct{}, 3)
	if s.Posts {
		instagram["Posts"] = struct{}{}
	}
	if s.Reels {
		instagram["Reels"] = struct{}{}
	}
	if s.Carousel {
		instagram["Carousel"] = struct{}{}
	}

	mask := NewMask(t.Len(), true)
	for i := range t.Rows {
		row := &t.Rows[i]
		switch row.Platform {
		case corpus.PlatformYouTube:
			if len(youtube) > 0 {
				_, mask[i] = youtube[row.MediaType]
			}
		case corpus.PlatformInstagram:
			if len(instagram) > 0 {
				_, mask[i] = instagram[row.MediaType]
			}
		}
	}
	return mask
}

// ByDateRange keeps rows by video-id expansion: a video qualifies when its
// post-level upload date falls in the inclusive [start, end] day interval,
// and every row of a qualifying video is kept, including comment rows with
// later or unknown dates. Rows with unknown upload dates never qualify a
// video on their own.
func ByDateRange(t *corpus.Table, start, end time.Time, hasStart, hasEnd bool) Mask {
	if !hasStart && !hasEnd {
		return NewMask(t.Len(), true)
	}
	if hasEnd {
		// End bound is inclusive of the whole day.
		end = end.AddDate(0, 0, 1)
	}

	qualifying := make(map[string]struct{})
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.UploadDate.IsZero() {
			continue
		}
		if hasStart && row.UploadDate.Before(start) {
			continue
		}
		if hasEnd && !row.UploadDate.Before(end) {
			continue
		}
		qualifying[row.VideoID] = struct{}{}
	}

	mask := make(Mask, t.Len())
	for i := range t.Rows {
		_, mask[i] = qualifying[t.Rows[i].VideoID]
	}
	return mask
}

// ByChannel keeps rows whose channel name is in the selected set.
func ByChannel(t *corpus.Table, selected []string) Mask {
	if len(selected) == 0 {
		return NewMask(t.Len(), true)
	}
	set := stringSet(selected)
	mask := make(Mask, t.Len())
	for i := range t.Rows {
		_, mask[i] = set[t.Rows[i].ChannelName]
	}
	return mask
}

// ByKeyword keeps rows where any keyword matches any enabled text column
// under case folding. No keywords passes everything. Keywords with no
// enabled column is a configuration error: the returned mask still passes
// everything and the error carries the warning.
func ByKeyword(t *corpus.Table, keywords []string, caption, title, transcripts bool) (Mask, error) {
	if len(keywords) == 0 {
		return NewMask(t.Len(), true), nil
	}
	if !caption && !title && !transcripts {
		return NewMask(t.Len(), true), services.Wrap(services.ErrFilterConfiguration,
			"keyword", "apply", "keywords given but no target column selected", nil)
	}

	mask := make(Mask, t.Len())
	for i := range t.Rows {
		row := &t.Rows[i]
		texts := make([]string, 0, 3)
		if caption {
			texts = append(texts, row.Description)
		}
		if title {
			texts = append(texts, row.Title)
		}
		if transcripts {
			texts = append(texts, row.Transcript)
		}
	match:
		for _, text := range texts {
			for _, kw := range keywords {
				if textutil.ContainsFold(text, kw) {
					mask[i] = true
					break match
				}
			}
		}
	}
	return mask, nil
}

// ByMetricRange keeps rows whose metric value lies in the inclusive range.
// A nil range passes everything. The subscriber metric only constrains
// YouTube rows; other platforms carry no subscriber data and pass untouched.
func ByMetricRange(t *corpus.Table, metric Metric, r *Range) Mask {
	if r == nil {
		return NewMask(t.Len(), true)
	}
	mask := make(Mask, t.Len())
	for i := range t.Rows {
		row := &t.Rows[i]
		if metric == MetricSubscribers && row.Platform != corpus.PlatformYouTube {
			mask[i] = true
			continue
		}
		mask[i] = r.Contains(metric.value(row))
	}
	return mask
}

// BySentiment keeps whole videos whose primary transcript sentiment is in
// the selected label set. Unparseable annotations never qualify a video but
// are retained when no selection is active.
func BySentiment(t *corpus.Table, labels []sentiment.Label) Mask {
	if len(labels) == 0 {
		return NewMask(t.Len(), true)
	}
	set := make(map[sentiment.Label]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}

	qualifying := make(map[string]struct{})
	for i := range t.Rows {
		row := &t.Rows[i]
		primary := sentiment.Parse(row.TranscriptSentiment)
		if _, ok := set[primary.Label]; ok {
			qualifying[row.VideoID] = struct{}{}
		}
	}

	mask := make(Mask, t.Len())
	for i := range t.Rows {
		_, mask[i] = qualifying[t.Rows[i].VideoID]
	}
	return mask
}

// ByVideoID keeps only rows with exactly the given id. An empty id passes
// everything.
func ByVideoID(t *corpus.Table, id string) Mask {
	if id == "" {
		return NewMask(t.Len(), true)
	}
	mask := make(Mask, t.Len())
	for i := range t.Rows {
		mask[i] = t.Rows[i].VideoID == id
	}
	return mask
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
