package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx/v2"

	"github.com/arkose/analytics-api/internal/models"
)

// WriteRecordsXLSX writes the same narrowed projection as WriteRecordsCSV
// into a single-sheet workbook.
func WriteRecordsXLSX(w io.Writer, records []models.DailyRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Données")
	if err != nil {
		return errors.Wrap(err, "add sheet")
	}

	header := sheet.AddRow()
	for _, name := range RecordsHeader {
		header.AddCell().SetString(name)
	}
	for _, r := range records {
		row := sheet.AddRow()
		for _, cell := range recordRow(r) {
			row.AddCell().SetString(cell)
		}
	}

	return errors.Wrap(f.Write(w), "write workbook")
}
