// Package calc parses number lists, validates them, and computes aggregates.
package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalPrefix matches the leading decimal literal of a token. Anything
// after it ("kg" in "10kg", ".3" in "1.2.3") is ignored.
var decimalPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Parse splits raw on runs of commas and whitespace and returns the finite
// decimal number each token starts with, in input order. Tokens that do not
// start with a number are dropped.
func Parse(raw string) []float64 {
	tokens := strings.FieldsFunc(raw, isDelimiter)
	nums := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, ok := parseToken(token)
		if !ok {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

func isDelimiter(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func parseToken(token string) (float64, bool) {
	literal := decimalPrefix.FindString(token)
	if literal == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
