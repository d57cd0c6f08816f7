package parser

import (
	"strconv"
	"strings"
)

// maxSignificantDigits is the precision a spreadsheet number keeps.
const maxSignificantDigits = 15

// ParseValue attempts to interpret a cell as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Zero-padded codes such as "007" and values with more significant digits
// than a spreadsheet can hold stay strings.
func ParseValue(s string) interface{} {
	if keepAsText(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float, but keep spellings like "NaN" or "Inf" as text
	if f, err := strconv.ParseFloat(s, 64); err == nil && isDecimal(s) {
		return f
	}
	return s
}

// isDecimal reports whether s is written with digits, an optional sign,
// decimal point and exponent only.
func isDecimal(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// keepAsText reports whether converting s to a number would lose how it
// was written: a leading zero before another digit, or a mantissa longer
// than maxSignificantDigits.
func keepAsText(s string) bool {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] >= '0' && digits[1] <= '9' {
		return true
	}

	mantissa := digits
	if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
		mantissa = mantissa[:i]
	}
	mantissa = strings.Replace(mantissa, ".", "", 1)
	mantissa = strings.TrimLeft(mantissa, "0")
	return len(mantissa) > maxSignificantDigits
}
