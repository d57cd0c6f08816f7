package numgen

import "errors"

// ErrInvalidCount indicates a negative line count.
var ErrInvalidCount = errors.New("count must not be negative")

// ErrInvalidRange indicates Min greater than Max.
var ErrInvalidRange = errors.New("min must not exceed max")
