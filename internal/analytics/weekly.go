package analytics

import (
	"sort"
	"time"

	"github.com/arkose/analytics-api/internal/models"
)

// AggregateWeekly resamples daily records into calendar-week buckets labeled
// by their ending Sunday, summing attendance, meals, and total visitors, and
// deriving the weekly meal conversion rate. Output is chronological; weeks
// with no records are absent rather than zero-filled. Rows with invalid dates
// cannot be placed on the calendar and are skipped. The input is not mutated.
func AggregateWeekly(records []models.DailyRecord) []models.WeeklyBucket {
	byWeek := make(map[time.Time]*models.WeeklyBucket)
	for _, r := range records {
		if !r.HasValidDate() {
			continue
		}
		end := weekEnding(r.Date)
		b, ok := byWeek[end]
		if !ok {
			b = &models.WeeklyBucket{WeekEnding: end}
			byWeek[end] = b
		}
		b.Attendance += r.Attendance
		b.Meals += r.MealsServed
		b.TotalVisitors += r.TotalVisitors
	}

	out := make([]models.WeeklyBucket, 0, len(byWeek))
	for _, b := range byWeek {
		if b.Attendance > 0 {
			b.ConversionPct = float64(b.Meals) / float64(b.Attendance) * 100
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekEnding.Before(out[j].WeekEnding) })
	return out
}

// weekEnding returns the Sunday that closes the Monday-based week containing d.
func weekEnding(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(day.Weekday())
	if wd == 0 {
		return day
	}
	return day.AddDate(0, 0, 7-wd)
}
