package parser

import "github.com/ukaji3/htmltable-go/pkg/tablescrape/models"

// Summarize computes the shape of a table: row count, widest row, number of
// non-empty cells and how densely the rows*columns grid is filled.
func Summarize(t models.Table) models.Summary {
	s := models.Summary{Rows: t.Len()}
	for _, row := range t {
		if len(row) > s.Columns {
			s.Columns = len(row)
		}
	}
	s.NonEmptyCells = countNonEmptyCells(t)

	totalCells := s.Rows * s.Columns
	if totalCells > 0 {
		s.Density = float64(s.NonEmptyCells) / float64(totalCells)
	}
	return s
}

// countNonEmptyCells counts cells holding any text.
func countNonEmptyCells(t models.Table) int {
	count := 0
	for _, row := range t {
		for _, cell := range row {
			if cell != "" {
				count++
			}
		}
	}
	return count
}
