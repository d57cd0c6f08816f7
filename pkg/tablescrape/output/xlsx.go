package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/parser"
)

// DefaultSheetName is the sheet a new workbook starts with.
const DefaultSheetName = "Sheet1"

// WriteXLSXFile writes t to a new workbook at path, one row per sheet row
// starting at A1. Cells that read as numbers are stored as numbers.
func WriteXLSXFile(path string, t models.Table, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
		}
	}

	for rowIdx, row := range t {
		values := make([]interface{}, len(row))
		for colIdx, cell := range row {
			values[colIdx] = parser.ParseValue(cell)
		}

		cellName, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellName, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
		}
	}

	return f.SaveAs(path)
}
