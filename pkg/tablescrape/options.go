// Package tablescrape extracts HTML table rows from a URL or local file and
// writes them to a flat file.
package tablescrape

import (
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/fetch"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/output"
)

// OutputBaseName is the fixed base name of the written file; the extension
// follows the format, so the default run produces output.csv.
const OutputBaseName = "output"

// Options configures a scrape.
type Options struct {
	// Format selects the output file format.
	Format output.Format
	// UserAgent is sent with remote requests.
	UserAgent string
	// Timeout bounds a remote fetch. Zero means no timeout.
	Timeout time.Duration
	// Render loads remote pages in headless Chrome before extraction.
	Render bool
	// Selector, when set, limits extraction to elements matching this CSS selector.
	Selector string
	// UseCRLF ends CSV lines with \r\n.
	UseCRLF bool
	// Logger receives progress messages. Nil means zap.NewNop().
	Logger *zap.Logger
	// Fetcher overrides the fetcher built from the options above.
	Fetcher fetch.Fetcher
}

// DefaultOptions returns default scrape options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCSV,
		UserAgent: fetch.DefaultUserAgent,
		UseCRLF:   true,
	}
}

// OutputPath returns the file name written for the configured format.
func (o Options) OutputPath() string {
	format := o.Format
	if format == "" {
		format = output.FormatCSV
	}
	return OutputBaseName + "." + format.Extension()
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) fetcher() fetch.Fetcher {
	if o.Fetcher != nil {
		return o.Fetcher
	}
	return fetch.New(fetch.Config{
		UserAgent: o.UserAgent,
		Timeout:   o.Timeout,
		Render:    o.Render,
	})
}
