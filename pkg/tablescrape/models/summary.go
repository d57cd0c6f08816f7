package models

// Summary describes the shape of an extracted table.
type Summary struct {
	// Rows is the number of committed rows.
	Rows int `json:"rows"`
	// Columns is the cell count of the widest row.
	Columns int `json:"columns"`
	// NonEmptyCells counts cells holding any text.
	NonEmptyCells int `json:"non_empty_cells"`
	// Density is NonEmptyCells divided by Rows*Columns (0 for an empty table).
	Density float64 `json:"density"`
}
