package calculator

import (
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

// platformBooking builds a non-owner booking with net derived at the
// default 0.76 factor, the way the normalizer would.
func platformBooking(arrival time.Time, departure *time.Time, gross float64, nights int) model.Booking {
	return model.Booking{
		Arrival:      arrival,
		Departure:    departure,
		Nights:       nights,
		GrossRevenue: gross,
		NetRevenue:   gross * 0.76,
		Channel:      model.ChannelBookingCom,
	}
}

func ownerBooking(arrival time.Time, departure *time.Time, nights int) model.Booking {
	return model.Booking{
		Arrival:   arrival,
		Departure: departure,
		Nights:    nights,
		OwnerStay: true,
		Channel:   model.ChannelOwnerStay,
	}
}
