package dataset

import (
	"sort"

	"github.com/arkose/analytics-api/internal/models"
)

// Filter returns the records matching the criteria, preserving input order.
// It is a pure single pass: the input slice is never mutated and an empty
// selection yields an empty result.
func Filter(records []models.DailyRecord, criteria models.FilterCriteria) []models.DailyRecord {
	out := make([]models.DailyRecord, 0, len(records))
	for _, r := range records {
		if criteria.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// DistinctMonths returns the month names present in the records, in calendar
// order. Rows with invalid dates carry no month and are skipped.
func DistinctMonths(records []models.DailyRecord) []string {
	return distinct(records, func(r models.DailyRecord) string { return r.Month }, models.MonthRank)
}

// DistinctWeekdays returns the weekday names present in the records, in
// Monday-first calendar order.
func DistinctWeekdays(records []models.DailyRecord) []string {
	return distinct(records, func(r models.DailyRecord) string { return r.Weekday }, models.WeekdayRank)
}

func distinct(records []models.DailyRecord, value func(models.DailyRecord) string, rank func(string) int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := value(r)
		if v == "" || rank(v) < 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}
