package tablescrape

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/fetch"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/output"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/parser"
)

// Scrape fetches source and extracts every table row it contains.
func Scrape(ctx context.Context, source string, opts Options) (models.Table, error) {
	log := opts.logger().With(zap.String("source", source))
	log.Debug("fetching", zap.Bool("remote", fetch.IsRemote(source)), zap.Bool("render", opts.Render))

	htmlContent, err := opts.fetcher().Fetch(ctx, source)
	if err != nil {
		return nil, NewScrapeError(source, StageFetch, err)
	}
	log.Debug("fetched", zap.Int("bytes", len(htmlContent)))

	if opts.Selector != "" {
		scoped, matched, err := parser.Scope(htmlContent, opts.Selector)
		if err != nil {
			return nil, NewScrapeError(source, StageScope, err)
		}
		if matched == 0 {
			log.Warn("selector matched nothing", zap.String("selector", opts.Selector))
		} else {
			log.Debug("scoped document", zap.String("selector", opts.Selector), zap.Int("matches", matched))
		}
		htmlContent = scoped
	}

	table, err := parser.ExtractTable(strings.NewReader(htmlContent))
	if err != nil {
		return nil, NewScrapeError(source, StageExtract, err)
	}

	summary := parser.Summarize(table)
	log.Info("extracted table",
		zap.Int("rows", summary.Rows),
		zap.Int("columns", summary.Columns),
		zap.Int("non_empty_cells", summary.NonEmptyCells),
		zap.Float64("density", summary.Density),
	)

	return table, nil
}

// Save writes t to path in the configured format.
func Save(path string, t models.Table, opts Options) error {
	format := opts.Format
	if format == "" {
		format = output.FormatCSV
	}

	writerOpts := output.DefaultOptions()
	writerOpts.UseCRLF = opts.UseCRLF

	if err := output.WriteFile(path, t, format, writerOpts); err != nil {
		return NewScrapeError(path, StageWrite, err)
	}
	opts.logger().Debug("wrote table", zap.String("path", path), zap.String("format", string(format)), zap.Int("rows", t.Len()))
	return nil
}

// Run scrapes source and saves the rows to Options.OutputPath in dir,
// returning the path written.
func Run(ctx context.Context, source, dir string, opts Options) (string, error) {
	table, err := Scrape(ctx, source, opts)
	if err != nil {
		return "", err
	}

	path := opts.OutputPath()
	if dir != "" {
		path = filepath.Join(dir, path)
	}
	if err := Save(path, table, opts); err != nil {
		return "", err
	}
	return path, nil
}
