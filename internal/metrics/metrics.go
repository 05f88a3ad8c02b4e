package metrics

import (
	"sort"

	"corpusdash/internal/corpus"
)

// GroupMetrics summarizes one identity on one platform: the maxima over
// views, likes, and comments with the post achieving each, and the count of
// distinct posts. Post rows are the rows carrying a title; comment
// continuation rows repeat post fields and must not inflate the counts.
type GroupMetrics struct {
	Identity string
	Platform corpus.Platform

	MaxViews       int64
	MaxViewsPost   string
	MaxLikes       int64
	MaxLikesPost   string
	MaxComments    int64
	MaxCommentsPost string

	PostCount int
}

// Summarize computes per-identity per-platform metrics over the table's
// post rows. Groups come back sorted by identity, then platform display
// order.
func Summarize(t *corpus.Table) []GroupMetrics {
	type key struct {
		identity string
		platform corpus.Platform
	}
	groups := make(map[key]*GroupMetrics)
	order := make([]key, 0, 8)

	for _, i := range t.PostRows() {
		row := &t.Rows[i]
		k := key{identity: row.Identity, platform: row.Platform}
		g, ok := groups[k]
		if !ok {
			g = &GroupMetrics{Identity: row.Identity, Platform: row.Platform}
			groups[k] = g
			order = append(order, k)
		}
		g.PostCount++
		if g.MaxViewsPost == "" || row.Views > g.MaxViews {
			g.MaxViews = row.Views
			g.MaxViewsPost = row.VideoID
		}
		if g.MaxLikesPost == "" || row.Likes > g.MaxLikes {
			g.MaxLikes = row.Likes
			g.MaxLikesPost = row.VideoID
		}
		if g.MaxCommentsPost == "" || row.Comments > g.MaxComments {
			g.MaxComments = row.Comments
			g.MaxCommentsPost = row.VideoID
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		if order[a].identity != order[b].identity {
			return order[a].identity < order[b].identity
		}
		return platformRank(order[a].platform) < platformRank(order[b].platform)
	})

	out := make([]GroupMetrics, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out
}

func platformRank(p corpus.Platform) int {
	for i, known := range corpus.Platforms() {
		if p == known {
			return i
		}
	}
	return len(corpus.Platforms())
}
