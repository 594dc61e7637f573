package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a computed value with exactly two decimals.
func FormatValue(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatNumber renders v as the shortest decimal that round-trips, with a
// period separator and no grouping. Magnitudes at or above 1e21 or below
// 1e-6 use exponent form such as 1e+21 or 1.5e-7.
func FormatNumber(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, found := strings.Cut(s, "e")
		if !found || exp == "" {
			return s
		}
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatList comma-joins numbers in order.
func FormatList(nums []float64) string {
	parts := make([]string, len(nums))
	for i, v := range nums {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	default:
		return "", false
	}
}
