package calculator

import (
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// TimelinePoint is one booking on the cumulative-revenue step line. Y is
// the running total after this booking.
type TimelinePoint struct {
	X            time.Time  `json:"x"`
	Y            float64    `json:"y"`
	BookingValue float64    `json:"bookingValue"`
	Nights       int        `json:"nights"`
	OwnerStay    bool       `json:"ownerStay"`
	Departure    *time.Time `json:"departure,omitempty"`
}

// Span is one occupied stretch for overlay shading.
type Span struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	OwnerStay bool      `json:"ownerStay"`
	Index     int       `json:"index"`
}

// SeasonMarker is a fixed reference line on the timeline's x-axis. The
// dates come from configuration, not from the data.
type SeasonMarker struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

// CumulativeReport is the running-total revenue series with span and
// season annotations. MinDate is the first booking's arrival; MaxDate the
// last booking's departure, or its arrival when it has none.
type CumulativeReport struct {
	Mode          model.Mode      `json:"mode"`
	Points        []TimelinePoint `json:"points"`
	Spans         []Span          `json:"spans"`
	SeasonMarkers []SeasonMarker  `json:"seasonMarkers"`
	Total         float64         `json:"total"`
	MinDate       *time.Time      `json:"minDate,omitempty"`
	MaxDate       *time.Time      `json:"maxDate,omitempty"`
}

// CumulativeRevenue folds the arrival-sorted bookings into a running
// total of the selected-mode revenue.
func CumulativeRevenue(bookings []model.Booking, mode model.Mode, markers []SeasonMarker) CumulativeReport {
	sorted := sortByArrival(bookings)

	report := CumulativeReport{
		Mode:          mode,
		Points:        make([]TimelinePoint, 0, len(sorted)),
		Spans:         []Span{},
		SeasonMarkers: markers,
	}

	var total float64
	for i := range sorted {
		b := &sorted[i]
		value := b.Value(mode)
		total += value
		report.Points = append(report.Points, TimelinePoint{
			X:            b.Arrival,
			Y:            total,
			BookingValue: value,
			Nights:       b.Nights,
			OwnerStay:    b.OwnerStay,
			Departure:    b.Departure,
		})
		if b.Departure != nil {
			report.Spans = append(report.Spans, Span{
				Start:     b.Arrival,
				End:       *b.Departure,
				OwnerStay: b.OwnerStay,
				Index:     len(report.Spans),
			})
		}
	}
	report.Total = total

	if len(sorted) > 0 {
		minDate := sorted[0].Arrival
		report.MinDate = &minDate

		last := &sorted[len(sorted)-1]
		maxDate := last.Arrival
		if last.Departure != nil {
			maxDate = *last.Departure
		}
		report.MaxDate = &maxDate
	}
	return report
}
