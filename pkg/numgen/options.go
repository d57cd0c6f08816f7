// Package numgen writes files of pseudo-random integers, one per line.
package numgen

const (
	// DefaultPath is the file written when no path is given.
	DefaultPath = "numbers.txt"
	// DefaultCount is the number of lines written by default.
	DefaultCount = 1_000_000
	// DefaultMin is the smallest value drawn, inclusive.
	DefaultMin = -100
	// DefaultMax is the largest value drawn, inclusive.
	DefaultMax = 1_000_000
)

// Options configures number generation.
type Options struct {
	// Path is the output file. It is truncated if it exists.
	Path string
	// Count is the number of lines to write.
	Count int
	// Min and Max bound the drawn values, both inclusive.
	Min int
	Max int
	// Seed makes the output reproducible when non-zero.
	Seed uint64
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Path:  DefaultPath,
		Count: DefaultCount,
		Min:   DefaultMin,
		Max:   DefaultMax,
	}
}
