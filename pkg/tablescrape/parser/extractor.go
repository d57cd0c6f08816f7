package parser

import (
	"io"
	"strings"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
)

// Extractor accumulates table rows from a stream of parse events.
//
// Only the first structural level is tracked: nested tables, row and column
// spans and table boundaries are not distinguished, so every row in the
// document lands in one flat Table. A row still open when the stream ends
// is never committed.
type Extractor struct {
	inRow  bool
	inCell bool
	row    models.Row
	cell   strings.Builder
	table  models.Table
}

// NewExtractor returns an Extractor in its initial state.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Apply advances the state machine by one event.
func (e *Extractor) Apply(ev Event) {
	switch ev.Kind {
	case StartTag:
		switch {
		case isRowTag(ev.Tag):
			e.inRow = true
			e.row = nil
		case isCellTag(ev.Tag) && e.inRow:
			e.inCell = true
			e.cell.Reset()
		}
	case Text:
		if e.inCell {
			e.cell.WriteString(strings.TrimSpace(ev.Data))
		}
	case EndTag:
		switch {
		case isCellTag(ev.Tag) && e.inCell:
			e.row = append(e.row, e.cell.String())
			e.inCell = false
		case isRowTag(ev.Tag) && e.inRow:
			if len(e.row) > 0 {
				e.table = append(e.table, e.row)
				// committed rows must not see later appends
				e.row = nil
			}
			e.inRow = false
		}
	}
}

// Table returns the rows committed so far.
func (e *Extractor) Table() models.Table {
	return e.table
}

// ExtractTable tokenizes the HTML in r and returns every committed row.
func ExtractTable(r io.Reader) (models.Table, error) {
	ext := NewExtractor()
	if err := Tokenize(r, ext.Apply); err != nil {
		return nil, err
	}
	return ext.Table(), nil
}

func isRowTag(tag string) bool {
	return tag == "tr"
}

func isCellTag(tag string) bool {
	return tag == "td" || tag == "th"
}
