package calendar

import (
	"fmt"
	"time"
)

// StartOfDay truncates t to midnight UTC. All engine date arithmetic is
// day-granular and happens in UTC so that differently-constructed values
// for the same calendar day compare equal.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DayKey returns the number of days since the Unix epoch for t's calendar
// day. Used as the set-membership identity for occupied nights instead of
// time.Time values.
func DayKey(t time.Time) int64 {
	return StartOfDay(t).Unix() / 86400
}

// DaysBetween returns the whole number of calendar days from b to a
// (a minus b).
func DaysBetween(a, b time.Time) int {
	return int(DayKey(a) - DayKey(b))
}

// MonthKey returns the "YYYY-MM" key of t's calendar month. Zero-padded so
// lexical order is chronological order.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// ISOWeekKey returns the ISO-8601 week key "YYYY-Www" for t. The Thursday
// of t's Monday-start week decides the week-year, and week 1 is the week
// containing Jan 4th of that year.
func ISOWeekKey(t time.Time) string {
	d := StartOfDay(t)

	weekday := (int(d.Weekday()) + 6) % 7 // Mon=0 .. Sun=6
	thursday := AddDays(d, 3-weekday)
	year := thursday.Year()

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	jan4Weekday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := AddDays(jan4, -jan4Weekday)

	week := 1 + DaysBetween(d, week1Monday)/7
	return fmt.Sprintf("%04d-W%02d", year, week)
}
