package calendar

import (
	"fmt"
	"testing"
	"time"
)

func TestISOWeekKey_MatchesReferenceCalendar(t *testing.T) {
	t.Parallel()

	// Walk a full leap year and a full non-leap year, plus the surrounding
	// boundary weeks, and compare against the standard library's ISO
	// calendar.
	start := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = AddDays(d, 1) {
		year, week := d.ISOWeek()
		want := fmt.Sprintf("%04d-W%02d", year, week)
		if got := ISOWeekKey(d); got != want {
			t.Fatalf("ISOWeekKey(%s) = %q, want %q", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestISOWeekKey_YearBoundary(t *testing.T) {
	t.Parallel()

	// Jan 1 2026 falls in the week starting Mon Dec 29 2025; that week's
	// Thursday is Jan 1 2026, so it is week 1 of 2026.
	if got := ISOWeekKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2026-W01" {
		t.Fatalf("2026-01-01 want 2026-W01 got %s", got)
	}
	if got := ISOWeekKey(time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)); got != "2026-W01" {
		t.Fatalf("2025-12-29 want 2026-W01 got %s", got)
	}
	// Dec 28 2025 is a Sunday, last day of 2025's final week.
	if got := ISOWeekKey(time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)); got != "2025-W52" {
		t.Fatalf("2025-12-28 want 2025-W52 got %s", got)
	}
	// 2026 has 53 ISO weeks; Jan 1 2027 still belongs to 2026-W53.
	if got := ISOWeekKey(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2026-W53" {
		t.Fatalf("2027-01-01 want 2026-W53 got %s", got)
	}
}

func TestDayKey_SameCalendarDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	a := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 15, 23, 59, 59, 0, loc)
	if DayKey(a) != DayKey(b) {
		t.Fatalf("same calendar day must share a key: %d vs %d", DayKey(a), DayKey(b))
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 5 {
		t.Fatalf("want 5 got %d", got)
	}
	if got := DaysBetween(b, a); got != -5 {
		t.Fatalf("want -5 got %d", got)
	}
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	if got := MonthKey(time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)); got != "2026-07" {
		t.Fatalf("want 2026-07 got %s", got)
	}
}
