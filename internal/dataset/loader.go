// Package dataset loads the daily visits CSV and narrows it for the
// dashboard. Records are immutable once parsed; every consumer works on the
// slice returned by the cache without mutating it.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/arkose/analytics-api/internal/models"
)

// ErrSourceUnavailable marks a CSV source that is missing or unreadable.
// Callers render it as a warning and skip the section; it is never fatal and
// is distinct from "zero rows after filtering".
var ErrSourceUnavailable = errors.New("dataset: source unavailable")

// Column names as they appear in the source export.
const (
	colDate          = "Date"
	colWeekday       = "Jour"
	colAttendance    = "Passage"
	colMeals         = "Plat"
	colConversion    = "% Plat"
	colTotalVisitors = "Total_jour"
	colStarters      = "Entrée"
)

// The export locale writes dates as DD/MM/YYYY; older sheets used ISO.
var dateLayouts = []string{"02/01/2006", "2006-01-02", "2/1/2006", "02/01/06"}

// Load reads the CSV at path into daily records.
func Load(path string) ([]models.DailyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "open %s: %v", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return records, nil
}

// Parse reads daily records from a CSV stream. Rows with unparsable dates are
// kept with the zero-time sentinel and an empty month, so row counts stay
// consistent with the source; malformed numeric cells parse as zero.
func Parse(r io.Reader) ([]models.DailyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[colDate]; !ok {
		return nil, errors.Errorf("missing required column %q", colDate)
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var out []models.DailyRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}

		rec := models.DailyRecord{
			Date:          parseDate(cell(row, colDate)),
			Weekday:       cell(row, colWeekday),
			Attendance:    parseInt(cell(row, colAttendance)),
			MealsServed:   parseInt(cell(row, colMeals)),
			TotalVisitors: parseInt(cell(row, colTotalVisitors)),
			Starters:      parseInt(cell(row, colStarters)),
		}
		if rec.HasValidDate() {
			rec.Month = models.MonthName(rec.Date.Month())
		}
		if raw := cell(row, colConversion); raw != "" {
			rec.MealConversionPct = parseFloat(raw)
		} else if rec.Attendance > 0 {
			rec.MealConversionPct = float64(rec.MealsServed) / float64(rec.Attendance) * 100
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
