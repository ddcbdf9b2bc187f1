package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	crackCharset     = 95
	guessesPerSecond = 1e9
)

type timeUnit struct {
	limit   float64
	divisor float64
	name    string
}

// Units are ordered; the first whose limit exceeds the estimate wins.
var crackUnits = []timeUnit{
	{limit: 60, divisor: 1, name: "seconds"},
	{limit: 3600, divisor: 60, name: "minutes"},
	{limit: 86400, divisor: 3600, name: "hours"},
	{limit: 31536000, divisor: 86400, name: "days"},
	{limit: 3153600000, divisor: 31536000, name: "years"},
	{limit: math.Inf(1), divisor: 3153600000, name: "centuries"},
}

func entropy(units []uint16) int {
	if len(units) == 0 {
		return 0
	}
	var lower, upper, digit, other bool
	for _, u := range units {
		switch {
		case isLower(u):
			lower = true
		case isUpper(u):
			upper = true
		case isDigit(u):
			digit = true
		default:
			other = true
		}
	}
	size := charsetSize(lower, upper, digit, other)
	if size == 0 {
		return 0
	}
	return int(roundHalfUp(float64(len(units)) * math.Log2(float64(size))))
}

func combinations(r Result) float64 {
	size := charsetSize(r.HasLower, r.HasUpper, r.HasNumbers, r.HasSpecial)
	if size == 0 || r.Length == 0 {
		return 0
	}
	return math.Pow(float64(size), float64(r.Length))
}

func charsetSize(lower, upper, digit, special bool) int {
	size := 0
	if lower {
		size += lowerCharset
	}
	if upper {
		size += upperCharset
	}
	if digit {
		size += digitCharset
	}
	if special {
		size += specialCharset
	}
	return size
}

// CrackTime estimates brute-force time for a password of the given length,
// assuming a 95-symbol alphabet regardless of the actual composition.
func CrackTime(length int) string {
	if length <= 0 {
		return "Instantly"
	}
	seconds := math.Pow(crackCharset, float64(length)) / guessesPerSecond
	if seconds < 1 {
		return "Instantly"
	}
	for _, u := range crackUnits {
		if seconds < u.limit {
			return fmt.Sprintf("%s %s", formatNumber(roundHalfUp(seconds/u.divisor)), u.name)
		}
	}
	return fmt.Sprintf("%s centuries", formatNumber(math.Inf(1)))
}

// CrackTimeTier returns the index of the unit used by CrackTime, with 0 for
// "Instantly" and increasing values for longer units.
func CrackTimeTier(length int) int {
	if length <= 0 {
		return 0
	}
	seconds := math.Pow(crackCharset, float64(length)) / guessesPerSecond
	if seconds < 1 {
		return 0
	}
	for i, u := range crackUnits {
		if seconds < u.limit {
			return i + 1
		}
	}
	return len(crackUnits)
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// formatExponential renders v with two fractional digits and a minimal exponent, e.g. 2.18e+14.
func formatExponential(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return formatNumber(v)
	}
	s := strconv.FormatFloat(v, 'e', 2, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
