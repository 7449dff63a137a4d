package calculator

import (
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// KPIReport holds the headline figures. Booking and night counts are
// mode-independent; per-night rates are nil (never NaN or Inf) when the
// platform night total is zero.
type KPIReport struct {
	Mode             model.Mode `json:"mode"`
	PlatformBookings int        `json:"platformBookings"`
	OwnerBookings    int        `json:"ownerBookings"`
	PlatformNights   int        `json:"platformNights"`
	OwnerNights      int        `json:"ownerNights"`
	GrossRevenue     float64    `json:"grossRevenue"`
	NetRevenue       float64    `json:"netRevenue"`
	GrossPerNight    *float64   `json:"grossPerNight,omitempty"`
	NetPerNight      *float64   `json:"netPerNight,omitempty"`
}

// RevenueTotal returns the total for the given mode.
func (k *KPIReport) RevenueTotal(mode model.Mode) float64 {
	if mode == model.ModeNet {
		return k.NetRevenue
	}
	return k.GrossRevenue
}

// Summarize partitions bookings into owner vs platform and totals them.
// Revenue sums cover platform bookings only; owner stays carry 0 revenue by
// construction so the partition and the sum agree.
func Summarize(bookings []model.Booking, mode model.Mode) KPIReport {
	report := KPIReport{Mode: mode}

	for i := range bookings {
		b := &bookings[i]
		if b.OwnerStay {
			report.OwnerBookings++
			report.OwnerNights += b.Nights
			continue
		}
		report.PlatformBookings++
		report.PlatformNights += b.Nights
		report.GrossRevenue += b.GrossRevenue
		report.NetRevenue += b.NetRevenue
	}

	if report.PlatformNights > 0 {
		gross := report.GrossRevenue / float64(report.PlatformNights)
		net := report.NetRevenue / float64(report.PlatformNights)
		report.GrossPerNight = &gross
		report.NetPerNight = &net
	}
	return report
}
