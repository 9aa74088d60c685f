package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkose/analytics-api/internal/models"
)

func TestAggregateWeekly(t *testing.T) {
	records := []models.DailyRecord{
		record(t, "2025-01-06", 100, 10), // Monday, week ending Sun 12 Jan
		record(t, "2025-01-07", 200, 40),
		record(t, "2025-01-12", 50, 5), // Sunday of the same week
		record(t, "2025-01-14", 80, 8), // week ending Sun 19 Jan
		record(t, "2025-01-28", 60, 6), // week ending Sun 2 Feb
	}

	buckets := AggregateWeekly(records)
	require.Len(t, buckets, 3)

	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), buckets[0].WeekEnding)
	assert.Equal(t, 350, buckets[0].Attendance)
	assert.Equal(t, 55, buckets[0].Meals)
	assert.InDelta(t, 55.0/350.0*100, buckets[0].ConversionPct, 1e-9)

	assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), buckets[1].WeekEnding)
	// The week of 20-26 January has no records and is absent, not zero-filled.
	assert.Equal(t, time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), buckets[2].WeekEnding)
}

func TestAggregateWeekly_Idempotent(t *testing.T) {
	records := []models.DailyRecord{
		record(t, "2025-01-06", 100, 10),
		record(t, "2025-01-14", 80, 8),
	}
	snapshot := append([]models.DailyRecord(nil), records...)

	first := AggregateWeekly(records)
	second := AggregateWeekly(records)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}

func TestAggregateWeekly_ZeroAttendance(t *testing.T) {
	records := []models.DailyRecord{record(t, "2025-01-06", 0, 0)}

	buckets := AggregateWeekly(records)
	require.Len(t, buckets, 1)
	assert.Zero(t, buckets[0].ConversionPct)
}

func TestAggregateWeekly_SkipsInvalidDates(t *testing.T) {
	records := []models.DailyRecord{
		record(t, "2025-01-06", 100, 10),
		{Weekday: "Mercredi", Attendance: 999}, // unparsable source date
	}

	buckets := AggregateWeekly(records)
	require.Len(t, buckets, 1)
	assert.Equal(t, 100, buckets[0].Attendance)
}

func TestWeekEnding(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2025-01-06", "2025-01-12"}, // Monday
		{"2025-01-12", "2025-01-12"}, // Sunday maps to itself
		{"2025-01-11", "2025-01-12"}, // Saturday
		{"2024-12-30", "2025-01-05"}, // year boundary
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.day)
		require.NoError(t, err)
		assert.Equal(t, tc.want, weekEnding(d).Format("2006-01-02"), "day %s", tc.day)
	}
}
