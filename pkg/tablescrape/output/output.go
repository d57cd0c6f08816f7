// Package output writes extracted tables to CSV, XLSX or SQLite files.
package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
)

// ErrUnsupportedFormat indicates an output format this package cannot write.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an output file format.
type Format string

const (
	// FormatCSV writes RFC 4180 CSV, one line per row.
	FormatCSV Format = "csv"
	// FormatXLSX writes the rows to the first sheet of an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatSQLite writes one record per cell into a SQLite database file.
	FormatSQLite Format = "sqlite"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSV, FormatXLSX, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be csv, xlsx, or sqlite)", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Options configures a table writer.
type Options struct {
	// UseCRLF ends CSV lines with \r\n instead of \n.
	UseCRLF bool
	// SheetName is the XLSX sheet to fill. Defaults to DefaultSheetName.
	SheetName string
	// TableName is the SQLite table to create. Defaults to DefaultTableName.
	TableName string
}

// DefaultOptions returns default writer options.
func DefaultOptions() Options {
	return Options{
		UseCRLF:   true,
		SheetName: DefaultSheetName,
		TableName: DefaultTableName,
	}
}

// WriteFile writes t to path in the given format, replacing any existing file.
func WriteFile(path string, t models.Table, format Format, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSVFile(path, t, opts.UseCRLF)
	case FormatXLSX:
		return WriteXLSXFile(path, t, opts.SheetName)
	case FormatSQLite:
		return WriteSQLiteFile(path, t, opts.TableName)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
