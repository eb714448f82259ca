// Package report shapes already-fetched record sets into documents and
// chart-ready series. It never queries the store.
package report

import (
	"sort"
	"time"
)

// Record is one fetched row, keyed by entity attribute name.
type Record map[string]string

// PeriodCount is one point of a time-bucketed series.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// CategoryCount is one bucket of a frequency ranking.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// dateLayouts are tried in order when bucketing by month. Aggregation is
// best-effort: rows whose date parses under none of these are skipped.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ByMonth groups records on the calendar month of dateField, labeled
// YYYY-MM, in chronological order. Records with an unparseable or missing
// date are excluded from every group.
func ByMonth(records []Record, dateField string) []PeriodCount {
	counts := make(map[string]int)
	for _, r := range records {
		t, ok := parseDate(r[dateField])
		if !ok {
			continue
		}
		counts[t.Format("2006-01")]++
	}

	periods := make([]string, 0, len(counts))
	for p := range counts {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]PeriodCount, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodCount{Period: p, Count: counts[p]})
	}
	return out
}

// ByCategory counts distinct values of field and returns the topN buckets
// by descending count, ties broken by first-seen order. Records with an
// empty value are skipped. topN <= 0 returns all buckets.
func ByCategory(records []Record, field string, topN int) []CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		v := r[field]
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	firstSeen := make(map[string]int, len(order))
	for i, v := range order {
		firstSeen[v] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	out := make([]CategoryCount, 0, len(order))
	for _, v := range order {
		out = append(out, CategoryCount{Value: v, Count: counts[v]})
	}
	return out
}
