package calculator

import (
	"sort"
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calendar"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// Interval is a half-open occupied span [Start, End) at day granularity.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OccupancyWeek is one ISO week's booked/free night split. Free always
// assumes a full 7-night week, including partial weeks at the range
// boundaries, so every bar shares the same axis. Booked is clamped to
// [0,7].
type OccupancyWeek struct {
	Week   string `json:"week"` // "YYYY-Www"
	Booked int    `json:"booked"`
	Free   int    `json:"free"`
}

// WeeklyOccupancyReport lists weeks sorted by key; the zero-padded,
// year-major key makes that chronological.
type WeeklyOccupancyReport struct {
	Weeks []OccupancyWeek `json:"weeks"`
}

// Discount-advice tiers for free periods between stays.
const (
	AdviceMajorDiscount = "major discount candidate"
	AdviceModerate      = "moderate discount"
	AdviceLastMinute    = "minimal flexibility, last-minute only"
	AdviceNone          = "no actionable advice"
)

// Gap is a maximal run of free nights strictly between two merged occupied
// intervals.
type Gap struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Nights int       `json:"nights"`
	Advice string    `json:"advice"`
}

// OccupiedNights enumerates every night in [arrival, departure) of every
// booking carrying both dates, keyed by epoch day. Overlapping bookings
// claim the same night once; duplicate insertion is idempotent.
func OccupiedNights(bookings []model.Booking) map[int64]struct{} {
	occupied := make(map[int64]struct{})
	for i := range bookings {
		b := &bookings[i]
		if !b.Occupied() {
			continue
		}
		end := calendar.StartOfDay(*b.Departure)
		for d := calendar.StartOfDay(b.Arrival); d.Before(end); d = calendar.AddDays(d, 1) {
			occupied[calendar.DayKey(d)] = struct{}{}
		}
	}
	return occupied
}

// WeeklyOccupancy walks every calendar day between the earliest arrival
// and the latest departure and counts booked nights per ISO week.
func WeeklyOccupancy(bookings []model.Booking) WeeklyOccupancyReport {
	occupied := OccupiedNights(bookings)

	var minDate, maxDate time.Time
	found := false
	for i := range bookings {
		b := &bookings[i]
		if b.Departure == nil {
			continue
		}
		arrival := calendar.StartOfDay(b.Arrival)
		departure := calendar.StartOfDay(*b.Departure)
		if !found {
			minDate, maxDate = arrival, departure
			found = true
			continue
		}
		if arrival.Before(minDate) {
			minDate = arrival
		}
		if departure.After(maxDate) {
			maxDate = departure
		}
	}
	if !found {
		return WeeklyOccupancyReport{Weeks: []OccupancyWeek{}}
	}

	booked := make(map[string]int)
	for d := minDate; d.Before(maxDate); d = calendar.AddDays(d, 1) {
		key := calendar.ISOWeekKey(d)
		if _, ok := booked[key]; !ok {
			booked[key] = 0 // a fully free week still gets a bar
		}
		if _, ok := occupied[calendar.DayKey(d)]; ok {
			booked[key]++
		}
	}

	keys := make([]string, 0, len(booked))
	for k := range booked {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	report := WeeklyOccupancyReport{Weeks: make([]OccupancyWeek, 0, len(keys))}
	for _, k := range keys {
		n := booked[k]
		if n > 7 {
			n = 7
		}
		report.Weeks = append(report.Weeks, OccupancyWeek{Week: k, Booked: n, Free: 7 - n})
	}
	return report
}

// MergeIntervals sorts intervals by start and merges overlapping or
// touching ones (next.Start <= current.End), extending the end to the
// maximum seen.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// DetectGaps finds the maximal free periods between merged occupied
// intervals and annotates each with its discount-advice tier. Gaps are
// emitted in chronological order; zero-night gaps (touching stays) are
// not gaps.
func DetectGaps(bookings []model.Booking) []Gap {
	var intervals []Interval
	for i := range bookings {
		b := &bookings[i]
		if b.Departure == nil {
			continue
		}
		intervals = append(intervals, Interval{
			Start: calendar.StartOfDay(b.Arrival),
			End:   calendar.StartOfDay(*b.Departure),
		})
	}
	merged := MergeIntervals(intervals)

	gaps := []Gap{}
	for i := 0; i+1 < len(merged); i++ {
		nights := calendar.DaysBetween(merged[i+1].Start, merged[i].End)
		if nights <= 0 {
			continue
		}
		gaps = append(gaps, Gap{
			Start:  merged[i].End,
			End:    merged[i+1].Start,
			Nights: nights,
			Advice: adviceForNights(nights),
		})
	}
	return gaps
}

func adviceForNights(n int) string {
	switch {
	case n >= 7:
		return AdviceMajorDiscount
	case n >= 4:
		return AdviceModerate
	case n >= 2:
		return AdviceLastMinute
	default:
		return AdviceNone
	}
}
