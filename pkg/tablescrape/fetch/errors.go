package fetch

import "fmt"

// FetchError describes a failed fetch of one source.
type FetchError struct {
	Source string
	Remote bool
	// StatusCode is the HTTP status of a rejected response, 0 otherwise.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	kind := "file"
	if e.Remote {
		kind = "url"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s %q: status %d: %v", kind, e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s %q: %v", kind, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(source string, remote bool, statusCode int, err error) *FetchError {
	return &FetchError{
		Source:     source,
		Remote:     remote,
		StatusCode: statusCode,
		Err:        err,
	}
}
