package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"corpusdash/internal/filter"
	"corpusdash/internal/presets"
)

// filterFlags collects the filter dimensions shared by every command that
// runs the pipeline. A preset or state file seeds the state first; explicit
// flags override on top.
type filterFlags struct {
	corpus     string
	identities []string
	channels   []string
	platforms  []string
	startDate  string
	endDate    string

	shorts   bool
	videos   bool
	posts    bool
	reels    bool
	carousel bool

	keywords    []string
	caption     bool
	title       bool
	transcripts bool

	views       string
	subscribers string
	likes       string
	comments    string

	positive bool
	neutral  bool
	negative bool

	videoID   string
	stateFile string
	preset    string
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.corpus, "corpus", "", "Corpus name (defaults to the first registered corpus)")
	flags.StringSliceVar(&f.identities, "identity", nil, "Hashtags or profiles to keep")
	flags.StringSliceVar(&f.channels, "channel", nil, "Channel names to keep")
	flags.StringSliceVar(&f.platforms, "platform", nil, "Platforms to keep (YouTube, TikTok, Instagram)")
	flags.StringVar(&f.startDate, "from", "", "Earliest upload date (YYYY-MM-DD)")
	flags.StringVar(&f.endDate, "to", "", "Latest upload date, inclusive (YYYY-MM-DD)")

	flags.BoolVar(&f.shorts, "shorts", false, "Keep YouTube shorts")
	flags.BoolVar(&f.videos, "videos", false, "Keep regular YouTube videos")
	flags.BoolVar(&f.posts, "posts", false, "Keep Instagram posts")
	flags.BoolVar(&f.reels, "reels", false, "Keep Instagram reels")
	flags.BoolVar(&f.carousel, "carousel", false, "Keep Instagram carousels")

	flags.StringSliceVar(&f.keywords, "keyword", nil, "Keywords to match in the selected text columns")
	flags.BoolVar(&f.caption, "captions", false, "Match keywords in video descriptions")
	flags.BoolVar(&f.title, "titles", false, "Match keywords in titles")
	flags.BoolVar(&f.transcripts, "transcripts", false, "Match keywords in transcripts")

	flags.StringVar(&f.views, "views", "", "Views range as MIN:MAX")
	flags.StringVar(&f.subscribers, "subscribers", "", "Subscriber range as MIN:MAX (YouTube rows only)")
	flags.StringVar(&f.likes, "likes", "", "Likes range as MIN:MAX")
	flags.StringVar(&f.comments, "comments", "", "Comment-count range as MIN:MAX")

	flags.BoolVar(&f.positive, "positive", false, "Keep videos with positive transcript sentiment")
	flags.BoolVar(&f.neutral, "neutral", false, "Keep videos with neutral transcript sentiment")
	flags.BoolVar(&f.negative, "negative", false, "Keep videos with negative transcript sentiment")

	flags.StringVar(&f.videoID, "video", "", "Single video id to isolate")
	flags.StringVar(&f.stateFile, "state", "", "Filter state snapshot file to load first")
	flags.StringVar(&f.preset, "preset", "", "Stored preset name to load first")
}

// state materializes the filter state: preset or snapshot first, explicit
// flags layered over it.
func (f *filterFlags) state(ctx *commandContext, cmd *cobra.Command) (filter.State, error) {
	var state filter.State
	switch {
	case f.preset != "" && f.stateFile != "":
		return state, fmt.Errorf("--preset and --state are mutually exclusive")
	case f.preset != "":
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return state, err
		}
		store, err := presets.Open(cfg.Presets.DBPath)
		if err != nil {
			return state, err
		}
		defer store.Close()
		stored, err := store.Get(cmd.Context(), f.preset)
		if err != nil {
			return state, err
		}
		state = stored.State
	case f.stateFile != "":
		loaded, err := filter.LoadFile(f.stateFile)
		if err != nil {
			return state, err
		}
		state = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		state.Corpus = f.corpus
	}
	if flags.Changed("identity") {
		state.Identities = f.identities
	}
	if flags.Changed("channel") {
		state.Channels = f.channels
	}
	if flags.Changed("platform") {
		state.Platforms = f.platforms
	}
	if flags.Changed("from") {
		state.StartDate = f.startDate
	}
	if flags.Changed("to") {
		state.EndDate = f.endDate
	}
	if flags.Changed("shorts") {
		state.Shorts = f.shorts
	}
	if flags.Changed("videos") {
		state.Videos = f.videos
	}
	if flags.Changed("posts") {
		state.Posts = f.posts
	}
	if flags.Changed("reels") {
		state.Reels = f.reels
	}
	if flags.Changed("carousel") {
		state.Carousel = f.carousel
	}
	if flags.Changed("keyword") {
		state.KeywordList = f.keywords
	}
	if flags.Changed("captions") {
		state.Caption = f.caption
	}
	if flags.Changed("titles") {
		state.TitleColumn = f.title
	}
	if flags.Changed("transcripts") {
		state.Transcripts = f.transcripts
	}
	if flags.Changed("positive") {
		state.Positive = f.positive
	}
	if flags.Changed("neutral") {
		state.Neutral = f.neutral
	}
	if flags.Changed("negative") {
		state.Negative = f.negative
	}
	if flags.Changed("video") {
		state.VideoID = f.videoID
	}

	for _, rf := range []struct {
		name  string
		raw   string
		field **filter.Range
	}{
		{"views", f.views, &state.Views},
		{"subscribers", f.subscribers, &state.Subscribers},
		{"likes", f.likes, &state.Likes},
		{"comments", f.comments, &state.Comments},
	} {
		if !flags.Changed(rf.name) {
			continue
		}
		parsed, err := parseRangeFlag(rf.raw)
		if err != nil {
			return state, fmt.Errorf("--%s: %w", rf.name, err)
		}
		*rf.field = parsed
	}

	return state, nil
}

// parseRangeFlag reads MIN:MAX with either side optional; an empty value
// clears the range.
func parseRangeFlag(raw string) (*filter.Range, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected MIN:MAX, got %q", raw)
	}
	r := &filter.Range{Min: 0, Max: math.MaxInt64}
	if v := strings.TrimSpace(parts[0]); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("minimum %q is not a number", v)
		}
		r.Min = min
	}
	if v := strings.TrimSpace(parts[1]); v != "" {
		max, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("maximum %q is not a number", v)
		}
		r.Max = max
	}
	if r.Min > r.Max {
		return nil, fmt.Errorf("minimum %d exceeds maximum %d", r.Min, r.Max)
	}
	return r, nil
}
