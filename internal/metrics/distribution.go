package metrics

import (
	"sort"

	"corpusdash/internal/corpus"
)

// Share is one identity's slice of the filtered post population.
type Share struct {
	Identity string
	Posts    int
	Fraction float64
}

// PostShares computes each identity's share of the table's posts, sorted by
// descending count and then identity. An empty table yields no shares.
func PostShares(t *corpus.Table) []Share {
	counts := make(map[string]int)
	order := make([]string, 0, 8)
	total := 0
	for _, i := range t.PostRows() {
		row := &t.Rows[i]
		if _, ok := counts[row.Identity]; !ok {
			order = append(order, row.Identity)
		}
		counts[row.Identity]++
		total++
	}
	if total == 0 {
		return nil
	}

	shares := make([]Share, 0, len(order))
	for _, identity := range order {
		n := counts[identity]
		shares = append(shares, Share{
			Identity: identity,
			Posts:    n,
			Fraction: float64(n) / float64(total),
		})
	}
	sort.SliceStable(shares, func(a, b int) bool {
		if shares[a].Posts != shares[b].Posts {
			return shares[a].Posts > shares[b].Posts
		}
		return shares[a].Identity < shares[b].Identity
	})
	return shares
}

// CommenterCount is the number of distinct comment authors under one post.
type CommenterCount struct {
	VideoID    string
	Title      string
	Commenters int
}

// UniqueCommenters counts distinct authors per video over the table's
// comment rows, sorted by descending count and then video id. Anonymous or
// empty author names are skipped.
func UniqueCommenters(t *corpus.Table) []CommenterCount {
	authors := make(map[string]map[string]struct{})
	titles := make(map[string]string)
	order := make([]string, 0, 16)

	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Title != "" {
			titles[row.VideoID] = row.Title
		}
		if !row.HasComment() || row.AuthorName == "" {
			continue
		}
		set, ok := authors[row.VideoID]
		if !ok {
			set = make(map[string]struct{})
			authors[row.VideoID] = set
			order = append(order, row.VideoID)
		}
		set[row.AuthorName] = struct{}{}
	}

	counts := make([]CommenterCount, 0, len(order))
	for _, id := range order {
		counts = append(counts, CommenterCount{
			VideoID:    id,
			Title:      titles[id],
			Commenters: len(authors[id]),
		})
	}
	sort.SliceStable(counts, func(a, b int) bool {
		if counts[a].Commenters != counts[b].Commenters {
			return counts[a].Commenters > counts[b].Commenters
		}
		return counts[a].VideoID < counts[b].VideoID
	})
	return counts
}
