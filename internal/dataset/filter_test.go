package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkose/analytics-api/internal/models"
)

func day(t *testing.T, iso, weekday string, attendance int) models.DailyRecord {
	t.Helper()
	date, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return models.DailyRecord{
		Date:       date,
		Weekday:    weekday,
		Month:      models.MonthName(date.Month()),
		Attendance: attendance,
	}
}

func TestFilter_Membership(t *testing.T) {
	records := []models.DailyRecord{
		day(t, "2025-01-06", "Lundi", 100),
		day(t, "2025-01-07", "Mardi", 200),
		day(t, "2025-02-03", "Lundi", 80),
	}

	got := Filter(records, models.NewFilterCriteria([]string{"Janvier"}, []string{"Lundi"}))
	require.Len(t, got, 1)
	assert.Equal(t, records[0], got[0])

	// Every output row satisfies both criteria and output is a subset.
	got = Filter(records, models.NewFilterCriteria([]string{"Janvier", "Février"}, []string{"Lundi"}))
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "Lundi", r.Weekday)
	}
}

func TestFilter_EmptySelectionMatchesNothing(t *testing.T) {
	records := []models.DailyRecord{
		day(t, "2025-01-06", "Lundi", 100),
	}

	assert.Empty(t, Filter(records, models.NewFilterCriteria(nil, []string{"Lundi"})))
	assert.Empty(t, Filter(records, models.NewFilterCriteria([]string{"Janvier"}, nil)))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	records := []models.DailyRecord{
		day(t, "2025-01-07", "Mardi", 200),
		day(t, "2025-01-06", "Lundi", 100),
		day(t, "2025-01-14", "Mardi", 150),
	}
	snapshot := append([]models.DailyRecord(nil), records...)

	got := Filter(records, models.AllCriteria())
	assert.Equal(t, snapshot, got)
	assert.Equal(t, snapshot, records)
}

func TestDistinct_CalendarOrder(t *testing.T) {
	records := []models.DailyRecord{
		day(t, "2025-03-05", "Mercredi", 1),
		day(t, "2025-01-06", "Lundi", 1),
		day(t, "2025-03-03", "Lundi", 1),
		{Weekday: "Mercredi"}, // invalid date, no month
	}

	assert.Equal(t, []string{"Janvier", "Mars"}, DistinctMonths(records))
	assert.Equal(t, []string{"Lundi", "Mercredi"}, DistinctWeekdays(records))
}
