package utils

import (
	"math"
	"strconv"
)

// Round rounds a monetary value to cents, half away from zero.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatAmount renders a monetary value with exactly two fraction digits,
// independent of locale. The gateway rejects unformatted decimals.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(Round(value), 'f', 2, 64)
}
