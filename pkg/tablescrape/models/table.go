// Package models defines data structures for HTML table extraction.
package models

// Row is an ordered sequence of cell values taken from one table row.
type Row []string

// Table is the ordered sequence of rows produced by one parse pass.
// Rows from every table in a document are flattened into one Table.
type Table []Row

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t)
}

// Records returns the rows as plain string slices, the shape encoding/csv
// writes.
func (t Table) Records() [][]string {
	records := make([][]string, len(t))
	for i, row := range t {
		records[i] = []string(row)
	}
	return records
}
