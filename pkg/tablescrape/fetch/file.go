package fetch

import (
	"context"
	"os"
)

// FileFetcher reads HTML from the local filesystem.
type FileFetcher struct{}

// NewFileFetcher creates a new FileFetcher.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// Fetch implements Fetcher. The whole file is read and must be valid UTF-8.
func (ff *FileFetcher) Fetch(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewFetchError(path, false, 0, err)
	}
	defer f.Close()

	content, err := readUTF8(f)
	if err != nil {
		return "", NewFetchError(path, false, 0, err)
	}
	return content, nil
}
