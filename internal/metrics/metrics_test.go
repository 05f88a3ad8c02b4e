package metrics_test

import (
	"testing"
	"time"

	"corpusdash/internal/corpus"
	"corpusdash/internal/metrics"
	"corpusdash/internal/textutil"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureTable() *corpus.Table {
	return &corpus.Table{
		Name:     "influencer_korpus",
		Identity: corpus.Identity{Kind: corpus.IdentityHashtag, Column: "hashtag", Label: "Hashtag"},
		Rows: []corpus.Row{
			{
				VideoID: "yt-1", Platform: corpus.PlatformYouTube, Identity: "#fitness",
				ChannelName: "FitChannel", Title: "Leg day", Transcript: "Beine Beine Training",
				UploadDate: day("2023-03-10"), Views: 5000, Likes: 400, Comments: 2, Subscribers: 120000,
				CommentID: "c1", AuthorName: "alice", CommentText: "super Training",
			},
			{
				VideoID: "yt-1", Platform: corpus.PlatformYouTube, Identity: "#fitness",
				ChannelName: "FitChannel",
				Views:       5000, Likes: 400, Comments: 2, Subscribers: 120000,
				CommentID: "c2", AuthorName: "bob", CommentText: "danke",
			},
			{
				VideoID: "yt-2", Platform: corpus.PlatformYouTube, Identity: "#fitness",
				ChannelName: "FitChannel", Title: "Arm day", Transcript: "Arme Training",
				UploadDate: day("2023-04-12"), Views: 9000, Likes: 150, Comments: 1, Subscribers: 125000,
				CommentID: "c3", AuthorName: "alice", CommentText: "noch ein Training",
			},
			{
				VideoID: "tt-1", Platform: corpus.PlatformTikTok, Identity: "#fitness",
				ChannelName: "dance_fit", Title: "Stretch", Transcript: "Dehnen am Morgen",
				UploadDate: day("2023-03-20"), Views: 20000, Likes: 3000, Comments: 15,
			},
			{
				VideoID: "ig-1", Platform: corpus.PlatformInstagram, Identity: "#food",
				ChannelName: "foodgram", Title: "Ramen", Description: "Ramen Abend",
				UploadDate: day("2023-03-15"), Views: 4000, Likes: 700, Comments: 5,
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	groups := metrics.Summarize(fixtureTable())
	if len(groups) != 3 {
		t.Fatalf("groups = %+v", groups)
	}

	// Sorted by identity, then platform display order.
	fitnessYT := groups[0]
	if fitnessYT.Identity != "#fitness" || fitnessYT.Platform != corpus.PlatformYouTube {
		t.Fatalf("first group = %+v", fitnessYT)
	}
	if fitnessYT.PostCount != 2 {
		t.Errorf("post count = %d, want 2", fitnessYT.PostCount)
	}
	if fitnessYT.MaxViews != 9000 || fitnessYT.MaxViewsPost != "yt-2" {
		t.Errorf("max views = %d via %s", fitnessYT.MaxViews, fitnessYT.MaxViewsPost)
	}
	if fitnessYT.MaxLikes != 400 || fitnessYT.MaxLikesPost != "yt-1" {
		t.Errorf("max likes = %d via %s", fitnessYT.MaxLikes, fitnessYT.MaxLikesPost)
	}

	if groups[1].Platform != corpus.PlatformTikTok || groups[1].PostCount != 1 {
		t.Errorf("second group = %+v", groups[1])
	}
	if groups[2].Identity != "#food" || groups[2].PostCount != 1 {
		t.Errorf("third group = %+v", groups[2])
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	empty := &corpus.Table{Name: "influencer_korpus"}
	if groups := metrics.Summarize(empty); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}

func TestPostTimelineAlignsSeries(t *testing.T) {
	tl := metrics.PostTimeline(fixtureTable(), metrics.ByMonth)

	wantPeriods := []string{"2023-03", "2023-04"}
	if len(tl.Periods) != len(wantPeriods) {
		t.Fatalf("periods = %v", tl.Periods)
	}
	for i, p := range wantPeriods {
		if tl.Periods[i] != p {
			t.Fatalf("periods = %v", tl.Periods)
		}
	}

	if len(tl.Series) != 2 {
		t.Fatalf("series = %+v", tl.Series)
	}
	fitness := tl.Series[0]
	if fitness.Name != "#fitness" || fitness.Counts[0] != 2 || fitness.Counts[1] != 1 {
		t.Errorf("fitness series = %+v", fitness)
	}
	// #food posted only in March; April is zero-filled for axis alignment.
	food := tl.Series[1]
	if food.Name != "#food" || food.Counts[0] != 1 || food.Counts[1] != 0 {
		t.Errorf("food series = %+v", food)
	}
}

func TestPostTimelineSkipsUnknownDates(t *testing.T) {
	table := fixtureTable()
	table.Rows = append(table.Rows, corpus.Row{
		VideoID: "yt-3", Platform: corpus.PlatformYouTube, Identity: "#fitness", Title: "No date",
	})
	tl := metrics.PostTimeline(table, metrics.ByYear)
	if len(tl.Periods) != 1 || tl.Periods[0] != "2023" {
		t.Fatalf("periods = %v", tl.Periods)
	}
	if tl.Series[0].Counts[0] != 3 {
		t.Fatalf("fitness count = %d, want 3", tl.Series[0].Counts[0])
	}
}

func TestSubscriberTimelineYouTubeOnly(t *testing.T) {
	tl := metrics.SubscriberTimeline(fixtureTable(), metrics.ByMonth)
	if len(tl.Series) != 1 || tl.Series[0].Name != "FitChannel" {
		t.Fatalf("series = %+v", tl.Series)
	}
	if tl.Series[0].Counts[0] != 120000 || tl.Series[0].Counts[1] != 125000 {
		t.Fatalf("counts = %v", tl.Series[0].Counts)
	}
}

func TestEngagementTimeline(t *testing.T) {
	tl := metrics.EngagementTimeline(fixtureTable(), metrics.ByMonth)

	if len(tl.Periods) != 2 || tl.Periods[0] != "2023-03" || tl.Periods[1] != "2023-04" {
		t.Fatalf("periods = %v", tl.Periods)
	}
	if len(tl.Series) != 3 {
		t.Fatalf("series = %+v", tl.Series)
	}

	// March sums yt-1, tt-1, and ig-1; April carries yt-2 alone.
	views := tl.Series[0]
	if views.Name != "Views" || views.Counts[0] != 29000 || views.Counts[1] != 9000 {
		t.Errorf("views series = %+v", views)
	}
	likes := tl.Series[1]
	if likes.Name != "Likes" || likes.Counts[0] != 4100 || likes.Counts[1] != 150 {
		t.Errorf("likes series = %+v", likes)
	}
	comments := tl.Series[2]
	if comments.Name != "Comments" || comments.Counts[0] != 22 || comments.Counts[1] != 1 {
		t.Errorf("comments series = %+v", comments)
	}
}

func TestPostShares(t *testing.T) {
	shares := metrics.PostShares(fixtureTable())
	if len(shares) != 2 {
		t.Fatalf("shares = %+v", shares)
	}
	if shares[0].Identity != "#fitness" || shares[0].Posts != 3 {
		t.Errorf("first share = %+v", shares[0])
	}
	if got := shares[0].Fraction; got < 0.74 || got > 0.76 {
		t.Errorf("fraction = %f", got)
	}
	if shares[1].Identity != "#food" || shares[1].Posts != 1 {
		t.Errorf("second share = %+v", shares[1])
	}
}

func TestPostSharesEmpty(t *testing.T) {
	if shares := metrics.PostShares(&corpus.Table{}); shares != nil {
		t.Fatalf("expected nil, got %+v", shares)
	}
}

func TestUniqueCommenters(t *testing.T) {
	counts := metrics.UniqueCommenters(fixtureTable())
	if len(counts) != 2 {
		t.Fatalf("counts = %+v", counts)
	}
	if counts[0].VideoID != "yt-1" || counts[0].Commenters != 2 || counts[0].Title != "Leg day" {
		t.Errorf("first = %+v", counts[0])
	}
	if counts[1].VideoID != "yt-2" || counts[1].Commenters != 1 {
		t.Errorf("second = %+v", counts[1])
	}
}

func TestTermFrequencies(t *testing.T) {
	stop := textutil.NewStopwords("am", "ein", "noch")
	terms := metrics.TermFrequencies(fixtureTable(), metrics.SourceTranscripts, stop)
	if len(terms) == 0 {
		t.Fatal("expected terms")
	}
	if terms[0].Term != "beine" && terms[0].Term != "training" {
		t.Fatalf("top term = %+v", terms[0])
	}
	for _, tc := range terms {
		if tc.Term == "am" || tc.Term == "ein" {
			t.Fatalf("stopword leaked: %+v", tc)
		}
	}
}

func TestTermFrequenciesCommentSource(t *testing.T) {
	terms := metrics.TermFrequencies(fixtureTable(), metrics.SourceComments, nil)
	var training int
	for _, tc := range terms {
		if tc.Term == "training" {
			training = tc.Count
		}
	}
	if training != 2 {
		t.Fatalf("training count = %d, want 2", training)
	}
}
