package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// reMoney matches a monetary value with exactly two decimal places.
var reMoney = regexp.MustCompile(`\d+\.\d{2}`)

// ParseMoney extracts a 2-decimal monetary value from service or OCR text.
// Thousands separators are stripped first, then the first money-shaped
// substring is taken. A value with no such substring is absent, never zero.
func ParseMoney(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	m := reMoney.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Round2 rounds to 2-decimal monetary precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
