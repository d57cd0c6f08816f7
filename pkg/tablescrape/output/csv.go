package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
)

// WriteCSV writes one CSV record per row. Fields containing commas, quotes
// or line breaks are quoted. A row made of a single empty cell is written
// as "" so that it still reads back as a row.
func WriteCSV(w io.Writer, t models.Table, useCRLF bool) error {
	bw := bufio.NewWriter(w)
	writer := csv.NewWriter(bw)
	writer.UseCRLF = useCRLF

	terminator := "\n"
	if useCRLF {
		terminator = "\r\n"
	}

	for i, record := range t.Records() {
		if len(record) == 1 && record[0] == "" {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
			if _, err := bw.WriteString(`""` + terminator); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
			continue
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSVFile creates or truncates path and writes t to it as CSV.
func WriteCSVFile(path string, t models.Table, useCRLF bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteCSV(f, t, useCRLF)
}
