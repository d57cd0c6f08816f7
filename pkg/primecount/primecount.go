// Package primecount counts the primes in a file of integers written one
// per line, such as the files produced by numgen.
package primecount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Result summarizes one pass over a numbers file.
type Result struct {
	// Numbers is the count of lines that parsed as integers.
	Numbers int `json:"numbers"`
	// Primes is how many of those integers are prime.
	Primes int `json:"primes"`
	// Skipped counts non-blank lines that were not integers.
	Skipped int `json:"skipped"`
}

// IsPrime reports whether n is prime. Values below 2 are not.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Count reads integers from r, one per line, and counts the primes.
// Blank lines are ignored and lines that are not integers are skipped.
func Count(r io.Reader) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Numbers++
		if IsPrime(n) {
			res.Primes++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read numbers: %w", err)
	}
	return res, nil
}

// CountFile opens path and counts the primes in it.
func CountFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	return Count(f)
}
