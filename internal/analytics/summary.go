package analytics

import "github.com/arkose/analytics-api/internal/models"

// Summary computes the KPI card row: totals, the mean of the per-row
// conversion percentages as stored in the source (days with no attendance and
// no stored percentage are not observations), mean daily visitors, and the
// flat revenue estimate over the same rows.
func Summary(records []models.DailyRecord, pricing models.PricingAssumptions) models.DashboardSummary {
	s := models.DashboardSummary{
		Revenue: EstimateFlat(records, pricing),
	}

	var convSum, visitorSum float64
	var convRows int
	for _, r := range records {
		s.TotalAttendance += r.Attendance
		s.MealsServed += r.MealsServed
		visitorSum += float64(r.TotalVisitors)
		// A closed day with no attendance and no stored percentage carries no
		// conversion signal; counting it as a literal zero would drag the mean
		// down.
		if r.Attendance == 0 && r.MealConversionPct == 0 {
			continue
		}
		convSum += r.MealConversionPct
		convRows++
	}
	if n := len(records); n > 0 {
		s.AvgDailyVisitors = visitorSum / float64(n)
	}
	if convRows > 0 {
		s.AvgConversionPct = convSum / float64(convRows)
	}
	return s
}

// WeekdayAverages computes the mean attendance per weekday over the records,
// in Monday-first calendar order. Weekdays absent from the set are omitted.
func WeekdayAverages(records []models.DailyRecord) []models.WeekdayAverage {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range records {
		if models.WeekdayRank(r.Weekday) < 0 {
			continue
		}
		sums[r.Weekday] += r.Attendance
		counts[r.Weekday]++
	}

	var out []models.WeekdayAverage
	for _, day := range models.Weekdays {
		if counts[day] == 0 {
			continue
		}
		out = append(out, models.WeekdayAverage{
			Weekday:       day,
			AvgAttendance: float64(sums[day]) / float64(counts[day]),
		})
	}
	return out
}
