package dataprocessing

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 15:04",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// parseDate coerces a raw date cell. Unparseable values yield the zero
// time.Time sentinel; rows carrying it are kept, never silently dropped.
func parseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseRevenue coerces a raw revenue cell: every character that is not a
// digit, decimal point, or minus sign is stripped before parsing, so
// "$1,234.56" yields 1234.56. Unparseable or empty cells yield 0.
//
// Accounting-style "(500)" loses its parentheses without sign inversion and
// becomes 500. That matches the upstream booking system; do not "fix" it here
// without product sign-off.
func parseRevenue(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// midnight truncates a time to the start of its day in its own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
