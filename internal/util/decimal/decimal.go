// Package decimal converts between user-entered numeric text and float64.
//
// Stackup and geometry fields arrive as text that may use either '.' or ','
// as the decimal separator. Everything past this package works on float64.
package decimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads a real number written with '.' or ',' as the decimal separator.
// Surrounding whitespace is ignored. NaN and infinities are rejected.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// ParseOptional is Parse with empty text mapped to zero.
func ParseOptional(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return Parse(s)
}

// SumLenient adds every entry that parses; empty or non-numeric entries
// contribute nothing.
func SumLenient(entries []string) float64 {
	total := 0.0
	for _, e := range entries {
		if v, err := Parse(e); err == nil {
			total += v
		}
	}
	return total
}

// Format renders v with the shortest '.'-decimal text that round-trips.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatComma is Format with a ',' decimal separator.
func FormatComma(v float64) string {
	return strings.ReplaceAll(Format(v), ".", ",")
}
