package fetch

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// readUTF8 reads r to the end and fails with encoding.ErrInvalidUTF8 on the
// first malformed byte sequence.
func readUTF8(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
