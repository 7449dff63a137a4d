package calculator

import (
	"testing"
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

func TestMonthlyRevenue_FirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	// intentionally out of order on input
	bookings := []model.Booking{
		platformBooking(day(2026, time.March, 5), nil, 300, 3),
		platformBooking(day(2026, time.January, 10), nil, 100, 2),
		platformBooking(day(2026, time.January, 20), nil, 150, 2),
		platformBooking(day(2025, time.December, 28), nil, 50, 1),
	}

	r := MonthlyRevenue(bookings, model.ModeGross)
	wantMonths := []string{"2025-12", "2026-01", "2026-03"}
	if len(r.Months) != len(wantMonths) {
		t.Fatalf("months: %v", r.Months)
	}
	for i, m := range wantMonths {
		if r.Months[i] != m {
			t.Fatalf("months[%d] = %s want %s", i, r.Months[i], m)
		}
	}
	if r.MonthNumbers[0] != 12 || r.MonthNumbers[1] != 1 || r.MonthNumbers[2] != 3 {
		t.Fatalf("month numbers: %v", r.MonthNumbers)
	}
}

func TestMonthlyRevenue_OneEntryPerBooking(t *testing.T) {
	t.Parallel()

	// a stay spanning Jan→Feb is attributed entirely to January
	bookings := []model.Booking{
		platformBooking(day(2026, time.January, 28), dayPtr(2026, time.February, 4), 700, 7),
		platformBooking(day(2026, time.January, 3), dayPtr(2026, time.January, 6), 300, 3),
	}
	r := MonthlyRevenue(bookings, model.ModeGross)
	if len(r.Entries) != 2 {
		t.Fatalf("want one entry per booking, got %d", len(r.Entries))
	}
	if len(r.Months) != 1 || r.Months[0] != "2026-01" {
		t.Fatalf("no pro-rating across months: %v", r.Months)
	}
	if r.MonthTotals[0] != 1000 {
		t.Fatalf("month total want 1000 got %g", r.MonthTotals[0])
	}
	// entries sorted by arrival
	if !r.Entries[0].Arrival.Equal(day(2026, time.January, 3)) {
		t.Fatalf("entries not arrival-sorted: %+v", r.Entries)
	}
}

func TestMonthlyRevenue_NetMode(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.May, 1), nil, 1000, 5),
	}
	r := MonthlyRevenue(bookings, model.ModeNet)
	if r.MonthTotals[0] != 760 {
		t.Fatalf("net mode total want 760 got %g", r.MonthTotals[0])
	}
}

func TestMonthlyRevenue_InputNotMutated(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.March, 5), nil, 300, 3),
		platformBooking(day(2026, time.January, 10), nil, 100, 2),
	}
	MonthlyRevenue(bookings, model.ModeGross)
	if !bookings[0].Arrival.Equal(day(2026, time.March, 5)) {
		t.Fatalf("aggregator must not reorder the snapshot")
	}
}

func TestMonthlyActivity_CountsAndOrder(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.February, 10), nil, 0, 4),
		platformBooking(day(2026, time.February, 20), nil, 0, 3),
		ownerBooking(day(2026, time.January, 5), nil, 2),
	}
	r := MonthlyActivity(bookings)
	if len(r.Months) != 2 {
		t.Fatalf("months: %+v", r.Months)
	}
	if r.Months[0].Month != "2026-01" || r.Months[0].Bookings != 1 || r.Months[0].Nights != 2 {
		t.Fatalf("jan: %+v", r.Months[0])
	}
	if r.Months[1].Month != "2026-02" || r.Months[1].Bookings != 2 || r.Months[1].Nights != 7 {
		t.Fatalf("feb: %+v", r.Months[1])
	}
	if r.Months[1].MonthNumber != 2 {
		t.Fatalf("month number: %+v", r.Months[1])
	}
}

func TestMonthlyActivity_Empty(t *testing.T) {
	t.Parallel()

	r := MonthlyActivity(nil)
	if len(r.Months) != 0 {
		t.Fatalf("empty input must yield empty report")
	}
}
