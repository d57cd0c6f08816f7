package tablescrape

import (
	"fmt"
)

// Scrape stages reported by ScrapeError.
const (
	StageFetch   = "fetch"
	StageScope   = "scope"
	StageExtract = "extract"
	StageWrite   = "write"
)

// ScrapeError represents a failure in one stage of a scrape.
type ScrapeError struct {
	Source string
	Stage  string // "fetch", "scope", "extract", "write"
	Err    error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s failed for %q: %v", e.Stage, e.Source, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(source, stage string, err error) *ScrapeError {
	return &ScrapeError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
