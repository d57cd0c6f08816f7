package numgen

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readNumbers(t *testing.T, path string) []int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var numbers []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n, err := strconv.Atoi(scanner.Text())
		require.NoError(t, err, "line %d", len(numbers)+1)
		numbers = append(numbers, n)
	}
	require.NoError(t, scanner.Err())
	return numbers
}

func TestGenerate(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "numbers.txt")
	opts.Count = 10_000

	require.NoError(t, Generate(opts))

	numbers := readNumbers(t, opts.Path)
	require.Len(t, numbers, opts.Count)
	for i, n := range numbers {
		if n < DefaultMin || n > DefaultMax {
			t.Fatalf("line %d: %d outside [%d, %d]", i+1, n, DefaultMin, DefaultMax)
		}
	}

	raw, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(raw, []byte("\n")))
}

func TestGenerate_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 50)), 0o644))

	require.NoError(t, Generate(Options{Path: path, Count: 3, Min: 0, Max: 9}))
	assert.Len(t, readNumbers(t, path), 3)

	require.NoError(t, Generate(Options{Path: path, Count: 1, Min: 0, Max: 9}))
	assert.Len(t, readNumbers(t, path), 1)
}

func TestGenerate_ZeroCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")

	require.NoError(t, Generate(Options{Path: path, Count: 0, Min: DefaultMin, Max: DefaultMax}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestGenerate_Seeded(t *testing.T) {
	dir := t.TempDir()
	first := Options{Path: filepath.Join(dir, "a.txt"), Count: 100, Min: DefaultMin, Max: DefaultMax, Seed: 42}
	second := first
	second.Path = filepath.Join(dir, "b.txt")

	require.NoError(t, Generate(first))
	require.NoError(t, Generate(second))

	assert.Equal(t, readNumbers(t, first.Path), readNumbers(t, second.Path))
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"negative count", Options{Count: -1, Min: 0, Max: 1}, ErrInvalidCount},
		{"inverted range", Options{Count: 1, Min: 5, Max: 4}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "numbers.txt")
			require.NoError(t, os.WriteFile(path, []byte("keep\n"), 0o644))
			tt.opts.Path = path

			assert.ErrorIs(t, Generate(tt.opts), tt.expected)

			// the existing file is left alone
			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "keep\n", string(raw))
		})
	}
}

func TestGenerate_UnwritablePath(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "missing", "numbers.txt")
	opts.Count = 1

	assert.Error(t, Generate(opts))
}

func TestWriteNumbers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNumbers(&buf, 500, -3, 3, NewRand(7)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 500)

	seen := make(map[int]bool)
	for _, line := range lines {
		n, err := strconv.Atoi(line)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, -3)
		require.LessOrEqual(t, n, 3)
		seen[n] = true
	}
	// 500 draws over 7 values reach both bounds
	assert.True(t, seen[-3])
	assert.True(t, seen[3])
}

func TestWriteNumbers_SingleValueRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNumbers(&buf, 3, 5, 5, NewRand(1)))
	assert.Equal(t, "5\n5\n5\n", buf.String())
}

func TestWriteNumbers_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteNumbers(&buf, -1, 0, 1, NewRand(1)), ErrInvalidCount)
	assert.ErrorIs(t, WriteNumbers(&buf, 1, 1, 0, NewRand(1)), ErrInvalidRange)
	assert.ErrorIs(t, WriteNumbers(&buf, 1, math.MinInt, math.MaxInt, NewRand(1)), ErrInvalidRange)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteNumbers_WriterError(t *testing.T) {
	// enough output to overflow the bufio buffer
	err := WriteNumbers(failingWriter{}, 10_000, DefaultMin, DefaultMax, NewRand(1))
	assert.ErrorContains(t, err, "disk full")
}

func TestNewRand(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int64(), b.Int64())
	}
}
