// Package money provides fail-soft parsing for monetary input.
//
// Form fields arrive as free text and the application policy is to never
// reject a bad number: anything that does not parse to a non-negative
// finite value degrades to 0.
package money

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts free text to a non-negative finite amount.
// Empty, unparseable, negative, NaN and Inf inputs all yield 0.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Normalize(v)
}

// Normalize clamps a float to the valid amount domain.
func Normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
