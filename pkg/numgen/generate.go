package numgen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
)

// Generate writes opts.Count random integers to opts.Path, replacing the
// file if it exists.
func Generate(opts Options) (err error) {
	if err := validate(opts); err != nil {
		return err
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteNumbers(f, opts.Count, opts.Min, opts.Max, NewRand(opts.Seed))
}

// WriteNumbers writes count integers drawn uniformly from [lo, hi] to w,
// each followed by a newline.
func WriteNumbers(w io.Writer, count, lo, hi int, rng *rand.Rand) error {
	if count < 0 {
		return ErrInvalidCount
	}
	if lo > hi {
		return ErrInvalidRange
	}

	bw := bufio.NewWriter(w)
	span := int64(hi) - int64(lo) + 1
	if span <= 0 {
		// [lo, hi] wider than int64
		return ErrInvalidRange
	}
	buf := make([]byte, 0, 24)
	for i := 0; i < count; i++ {
		n := int64(lo) + rng.Int64N(span)
		buf = strconv.AppendInt(buf[:0], n, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// NewRand returns a PCG source seeded with seed, or a randomly seeded
// source when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func validate(opts Options) error {
	if opts.Count < 0 {
		return ErrInvalidCount
	}
	if opts.Min > opts.Max {
		return ErrInvalidRange
	}
	return nil
}
