package metrics

import (
	"sort"

	"corpusdash/internal/corpus"
)

// Granularity selects the time bucket width for timeline views.
type Granularity int

const (
	ByDay Granularity = iota
	ByMonth
	ByYear
)

func (g Granularity) String() string {
	switch g {
	case ByDay:
		return "day"
	case ByMonth:
		return "month"
	case ByYear:
		return "year"
	default:
		return "unknown"
	}
}

func (g Granularity) layout() string {
	switch g {
	case ByDay:
		return "2006-01-02"
	case ByMonth:
		return "2006-01"
	default:
		return "2006"
	}
}

// ParseGranularity maps a flag value to a Granularity; unknown values fall
// back to monthly.
func ParseGranularity(raw string) Granularity {
	switch raw {
	case "day", "daily":
		return ByDay
	case "year", "yearly":
		return ByYear
	default:
		return ByMonth
	}
}

// Series is one identity's counts aligned to a Timeline's period axis.
type Series struct {
	Name   string
	Counts []int
}

// Timeline is a set of aligned per-identity post counts. Periods is the
// sorted union of every period any identity posted in; each series carries
// one count per period, zero-filled, so trend lines across identities share
// an axis.
type Timeline struct {
	Granularity Granularity
	Periods     []string
	Series      []Series
}

// PostTimeline buckets the table's post rows by identity and upload period.
// Rows with unknown upload dates are skipped.
func PostTimeline(t *corpus.Table, g Granularity) Timeline {
	counts := make(map[string]map[string]int)
	names := make([]string, 0, 8)
	periodSet := make(map[string]struct{})

	for _, i := range t.PostRows() {
		row := &t.Rows[i]
		if row.UploadDate.IsZero() {
			continue
		}
		period := row.UploadDate.Format(g.layout())
		periodSet[period] = struct{}{}
		byPeriod, ok := counts[row.Identity]
		if !ok {
			byPeriod = make(map[string]int)
			counts[row.Identity] = byPeriod
			names = append(names, row.Identity)
		}
		byPeriod[period]++
	}

	return buildTimeline(g, names, periodSet, counts)
}

// SubscriberTimeline tracks the largest subscriber count observed per
// YouTube channel per period. Other platforms carry no subscriber data and
// contribute nothing.
func SubscriberTimeline(t *corpus.Table, g Granularity) Timeline {
	values := make(map[string]map[string]int)
	names := make([]string, 0, 8)
	periodSet := make(map[string]struct{})

	for _, i := range t.PostRows() {
		row := &t.Rows[i]
		if row.Platform != corpus.PlatformYouTube || row.UploadDate.IsZero() {
			continue
		}
		period := row.UploadDate.Format(g.layout())
		periodSet[period] = struct{}{}
		byPeriod, ok := values[row.ChannelName]
		if !ok {
			byPeriod = make(map[string]int)
			values[row.ChannelName] = byPeriod
			names = append(names, row.ChannelName)
		}
		if int(row.Subscribers) > byPeriod[period] {
			byPeriod[period] = int(row.Subscribers)
		}
	}

	return buildTimeline(g, names, periodSet, values)
}

// EngagementTimeline sums views, likes, and comment counts over the table's
// post rows per period. The result carries three fixed series named Views,
// Likes, and Comments on a shared period axis; rows with unknown upload
// dates are skipped.
func EngagementTimeline(t *corpus.Table, g Granularity) Timeline {
	type totals struct {
		views    int
		likes    int
		comments int
	}
	sums := make(map[string]*totals)

	for _, i := range t.PostRows() {
		row := &t.Rows[i]
		if row.UploadDate.IsZero() {
			continue
		}
		period := row.UploadDate.Format(g.layout())
		tot, ok := sums[period]
		if !ok {
			tot = &totals{}
			sums[period] = tot
		}
		tot.views += int(row.Views)
		tot.likes += int(row.Likes)
		tot.comments += int(row.Comments)
	}

	periods := make([]string, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	views := Series{Name: "Views", Counts: make([]int, len(periods))}
	likes := Series{Name: "Likes", Counts: make([]int, len(periods))}
	comments := Series{Name: "Comments", Counts: make([]int, len(periods))}
	for i, p := range periods {
		tot := sums[p]
		views.Counts[i] = tot.views
		likes.Counts[i] = tot.likes
		comments.Counts[i] = tot.comments
	}

	return Timeline{Granularity: g, Periods: periods, Series: []Series{views, likes, comments}}
}

func buildTimeline(g Granularity, names []string, periodSet map[string]struct{}, counts map[string]map[string]int) Timeline {
	periods := make([]string, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	sort.Strings(names)

	series := make([]Series, 0, len(names))
	for _, name := range names {
		s := Series{Name: name, Counts: make([]int, len(periods))}
		for i, p := range periods {
			s.Counts[i] = counts[name][p]
		}
		series = append(series, s)
	}
	return Timeline{Granularity: g, Periods: periods, Series: series}
}
