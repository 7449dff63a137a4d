package calculator

import (
	"testing"
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

func TestSummarize_PartitionAndTotals(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.January, 10), dayPtr(2026, time.January, 15), 1000, 5),
		platformBooking(day(2026, time.February, 1), dayPtr(2026, time.February, 6), 500, 5),
		ownerBooking(day(2026, time.March, 1), dayPtr(2026, time.March, 4), 3),
	}

	k := Summarize(bookings, model.ModeGross)
	if k.PlatformBookings != 2 || k.OwnerBookings != 1 {
		t.Fatalf("partition broken: %+v", k)
	}
	if k.PlatformNights != 10 || k.OwnerNights != 3 {
		t.Fatalf("night totals broken: %+v", k)
	}
	if k.GrossRevenue != 1500 {
		t.Fatalf("gross want 1500 got %g", k.GrossRevenue)
	}
	if k.NetRevenue != 1500*0.76 {
		t.Fatalf("net want %g got %g", 1500*0.76, k.NetRevenue)
	}
	if k.GrossPerNight == nil || *k.GrossPerNight != 150 {
		t.Fatalf("gross per night want 150 got %v", k.GrossPerNight)
	}
	if k.NetPerNight == nil || *k.NetPerNight != 1500*0.76/10 {
		t.Fatalf("net per night wrong: %v", k.NetPerNight)
	}
}

func TestSummarize_NilRateAtZeroNights(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.January, 10), nil, 400, 0),
	}
	k := Summarize(bookings, model.ModeGross)
	if k.GrossPerNight != nil || k.NetPerNight != nil {
		t.Fatalf("rates must be nil at zero nights: %+v", k)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	t.Parallel()

	k := Summarize(nil, model.ModeNet)
	if k.PlatformBookings != 0 || k.GrossRevenue != 0 || k.GrossPerNight != nil {
		t.Fatalf("empty input must yield zero report: %+v", k)
	}
}

func TestKPIReport_RevenueTotalByMode(t *testing.T) {
	t.Parallel()

	bookings := []model.Booking{
		platformBooking(day(2026, time.January, 10), nil, 1000, 4),
	}
	k := Summarize(bookings, model.ModeGross)
	if k.RevenueTotal(model.ModeGross) != 1000 {
		t.Fatalf("gross total wrong")
	}
	if k.RevenueTotal(model.ModeNet) != 760 {
		t.Fatalf("net total wrong")
	}
}
