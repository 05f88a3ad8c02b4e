package filter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"corpusdash/internal/corpus"
	"corpusdash/internal/logging"
	"corpusdash/internal/services"
)

// Stage names in pipeline order. Corpus selection (stage 1) happens before
// Run: the caller loads the table and the identity column with it.
const (
	StageIdentity    = "identity"
	StagePlatform    = "platform"
	StageMediaType   = "media_type"
	StageDateRange   = "date_range"
	StageChannel     = "channel"
	StageKeyword     = "keyword"
	StageViews       = "views_range"
	StageSubscribers = "subscribers_range"
	StageLikes       = "likes_range"
	StageComments    = "comments_range"
	StageSentiment   = "sentiment"
	StageVideoID     = "video_id"
)

// StageCount records the rows remaining after one stage.
type StageCount struct {
	Stage string
	Rows  int
}

// Result is the outcome of one pipeline run: the final narrowed table, the
// identity column that was threaded through every stage, per-stage row
// counts, and any recoverable warnings raised along the way. An empty table
// is a valid result, not an error.
type Result struct {
	Table       *corpus.Table
	Identity    corpus.Identity
	RunID       string
	StageCounts []StageCount
	Warnings    []string
}

// Empty reports whether the run narrowed down to no rows.
func (r *Result) Empty() bool {
	return r.Table.Empty()
}

// Run applies the filter pipeline to a loaded corpus table. The input table
// is never mutated; each stage produces a new narrowed view. Stages apply in
// a fixed order and tolerate empty intermediate tables.
func Run(ctx context.Context, logger *slog.Logger, table *corpus.Table, state State) *Result {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	ctx = services.WithCorpus(ctx, table.Name)
	ctx = services.WithRequestID(ctx, runID)

	result := &Result{
		Identity:    table.Identity,
		RunID:       runID,
		StageCounts: make([]StageCount, 0, 12),
	}

	current := table
	apply := func(stage string, mask Mask) {
		current = mask.Apply(current)
		result.StageCounts = append(result.StageCounts, StageCount{Stage: stage, Rows: current.Len()})
		logging.WithContext(services.WithStage(ctx, stage), logger).Debug("stage applied",
			logging.Int(logging.FieldRows, current.Len()))
	}
	warn := func(stage string, err error) {
		result.Warnings = append(result.Warnings, err.Error())
		logging.WithContext(services.WithStage(ctx, stage), logger).Warn("stage degraded to pass-through",
			logging.Error(err))
	}

	apply(StageIdentity, ByIdentity(current, state.Identities))

	platforms := make([]corpus.Platform, 0, len(state.Platforms))
	for _, p := range state.Platforms {
		platforms = append(platforms, corpus.ParsePlatform(p))
	}
	apply(StagePlatform, ByPlatform(current, platforms))

	apply(StageMediaType, ByMediaType(current, state))

	start, end, hasStart, hasEnd, err := state.DateBounds()
	if err != nil {
		warn(StageDateRange, err)
		apply(StageDateRange, NewMask(current.Len(), true))
	} else {
		apply(StageDateRange, ByDateRange(current, start, end, hasStart, hasEnd))
	}

	apply(StageChannel, ByChannel(current, state.Channels))

	keywordMask, err := ByKeyword(current, state.CleanKeywords(), state.Caption, state.TitleColumn, state.Transcripts)
	if err != nil {
		warn(StageKeyword, err)
	}
	apply(StageKeyword, keywordMask)

	apply(StageViews, ByMetricRange(current, MetricViews, state.Views))
	apply(StageSubscribers, ByMetricRange(current, MetricSubscribers, state.Subscribers))
	apply(StageLikes, ByMetricRange(current, MetricLikes, state.Likes))
	apply(StageComments, ByMetricRange(current, MetricComments, state.Comments))

	apply(StageSentiment, BySentiment(current, state.SentimentLabels()))

	apply(StageVideoID, ByVideoID(current, state.VideoID))

	result.Table = current
	logging.WithContext(ctx, logger).Info("pipeline complete",
		logging.Int(logging.FieldRows, current.Len()),
		logging.Int("warnings", len(result.Warnings)))
	return result
}
