// Package export writes download surfaces: the narrowed records table as CSV
// or XLSX, and workflow documents re-serialized for import into n8n.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/arkose/analytics-api/internal/models"
)

// RecordsHeader is the narrowed projection offered for download, matching the
// source column names so the file reloads cleanly.
var RecordsHeader = []string{"Date", "Jour", "Passage", "Plat", "% Plat", "Total_jour"}

// WriteRecordsCSV writes the filtered records as CSV with no transformation
// beyond column narrowing. Invalid dates become empty cells.
func WriteRecordsCSV(w io.Writer, records []models.DailyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RecordsHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range records {
		if err := cw.Write(recordRow(r)); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush")
}

func recordRow(r models.DailyRecord) []string {
	date := ""
	if r.HasValidDate() {
		date = r.Date.Format("02/01/2006")
	}
	return []string{
		date,
		r.Weekday,
		strconv.Itoa(r.Attendance),
		strconv.Itoa(r.MealsServed),
		strconv.FormatFloat(r.MealConversionPct, 'f', -1, 64),
		strconv.Itoa(r.TotalVisitors),
	}
}
