package mapper

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthNumber converts a month name or abbreviation to its ordinal.
// Case is ignored, "Sept" and full names are accepted.
// Returns 0 for unknown months.
func MonthNumber(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	if s == "sept" {
		s = "sep"
	}
	if len(s) < 3 {
		return 0
	}
	if n, ok := months[s[:3]]; ok {
		return n
	}
	return 0
}

// Year parses a year that might come from a spreadsheet as a number
// with a decimal part, for example "2023.0". Returns 0 when s is not a
// plausible year.
func Year(s string) int {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 1000 || f > 9999 {
		return 0
	}
	return int(f)
}

// EventDate builds an ISO 8601 "YYYY-MM" date from year and month.
// With an unknown month it returns "YYYY", with an invalid year an
// empty string.
func EventDate(year, month string) string {
	y := Year(year)
	if y == 0 {
		return ""
	}
	m := MonthNumber(month)
	if m == 0 {
		return strconv.Itoa(y)
	}
	return fmt.Sprintf("%04d-%02d", y, m)
}

var (
	minDepthRe = regexp.MustCompile(`^\s*(\d+)`)
	maxDepthRe = regexp.MustCompile(`-\s*(\d+)`)
)

// Depth extracts minimum and maximum depth from a bathymetry range such
// as "30-45". Minimum are the leading digits, maximum the digits after
// the hyphen. Missing parts are returned as empty strings.
func Depth(s string) (minDepth, maxDepth string) {
	if m := minDepthRe.FindStringSubmatch(s); m != nil {
		minDepth = trimZeros(m[1])
	}
	if m := maxDepthRe.FindStringSubmatch(s); m != nil {
		maxDepth = trimZeros(m[1])
	}
	return minDepth, maxDepth
}

func trimZeros(s string) string {
	res := strings.TrimLeft(s, "0")
	if res == "" {
		return "0"
	}
	return res
}

// Decimal formats decimal degrees. NaN becomes an empty string.
func Decimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Integer normalizes a count that a spreadsheet may render as "123.0".
// Values that are not numbers are returned trimmed and unchanged.
func Integer(s string) string {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}
