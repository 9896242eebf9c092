package utils

import (
	"math"
	"strconv"
	"strings"
)

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// FormatNumber returns the shortest CSS serialization of `f`:
// no exponent, no trailing zeros, no leading "+" and no negative zero.
func FormatNumber(f float64) string {
	if f == 0 || math.IsNaN(f) {
		return "0"
	}
	if math.IsInf(f, 1) {
		return "infinity"
	} else if math.IsInf(f, -1) {
		return "-infinity"
	}
	// round to 6 decimals, as browsers do
	r := math.Round(f*1e6) / 1e6
	if r == 0 {
		return "0"
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
