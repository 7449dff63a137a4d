package calculator

import (
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calendar"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// LeadTimeBucket is one histogram bar.
type LeadTimeBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"` // < 0 means unbounded
	Count int    `json:"count"`
}

// LeadTimeReport is the booking lead-time histogram. Values keeps the raw
// lead times for external statistical use.
type LeadTimeReport struct {
	Buckets []LeadTimeBucket `json:"buckets"`
	Total   int              `json:"total"`
	Values  []int            `json:"values"`
}

// LeadTimeHistogram buckets the whole-day span between booking creation
// and arrival. Bookings missing either date, and negative lead times, are
// invalid data and dropped silently rather than clamped.
func LeadTimeHistogram(bookings []model.Booking, buckets []config.LeadBucket) LeadTimeReport {
	report := LeadTimeReport{
		Buckets: make([]LeadTimeBucket, len(buckets)),
		Values:  []int{},
	}
	for i, b := range buckets {
		report.Buckets[i] = LeadTimeBucket{Label: b.Label, Min: b.Min, Max: b.Max}
	}

	for i := range bookings {
		b := &bookings[i]
		if b.BookedOn == nil {
			continue
		}
		lead := calendar.DaysBetween(b.Arrival, *b.BookedOn)
		if lead < 0 {
			continue
		}
		report.Values = append(report.Values, lead)

		for j := range report.Buckets {
			bucket := &report.Buckets[j]
			if lead >= bucket.Min && (bucket.Max < 0 || lead <= bucket.Max) {
				bucket.Count++
				report.Total++
				break
			}
		}
	}
	return report
}
