package quote

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// ParseQuantity reads the leading integer of raw. Anything that does not
// yield a non-zero integer becomes 1.
func ParseQuantity(raw string) int {
	m := intPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// ParseAmount reads the leading decimal number of raw. Anything that does not
// yield a non-zero finite number becomes 0.
func ParseAmount(raw string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
