package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayMonthYear is the strict pattern for the export's native date format,
// e.g. "25-1-2026" or "25-01-2026".
var dayMonthYear = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

// fallbackLayouts are tried, in order, when the strict day-month-year
// pattern does not match. The source accepted whatever its host date parser
// happened to take; the engine pins an explicit list instead.
var fallbackLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"2.1.2006",
	"2006/01/02",
}

// ParseNumber interprets a raw cell as a number. Numeric values pass
// through when finite. Strings are trimmed; the empty string and the "-"
// marker mean "no value"; a decimal comma is accepted. Never fails:
// malformed input reports ok=false so the caller substitutes its default.
func ParseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return ParseNumber(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" || s == "-" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// ParseDate interprets a raw cell as a calendar date. Date values pass
// through (the zero value is rejected). For strings only the first
// whitespace-delimited token counts, so trailing annotations like
// "25-01-2026 (middag)" are discarded; the strict day-month-year pattern is
// tried first, then the fallback layouts. Never fails, ok=false on any
// malformed input.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case string:
		fields := strings.Fields(d)
		if len(fields) == 0 {
			return time.Time{}, false
		}
		token := fields[0]

		if m := dayMonthYear.FindStringSubmatch(token); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			// time.Date normalizes out-of-range components; a real date
			// round-trips unchanged.
			if t.Day() == day && int(t.Month()) == month && t.Year() == year {
				return t, true
			}
			return time.Time{}, false
		}

		for _, layout := range fallbackLayouts {
			if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

// stringValue renders any raw cell as text for free-text matching. nil
// becomes the empty string.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case time.Time:
		return s.Format("2006-01-02")
	default:
		return ""
	}
}
