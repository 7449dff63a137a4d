package calculator

import (
	"sort"
	"time"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calendar"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// MonthEntry is one booking attributed entirely to its arrival month.
// Revenue is never pro-rated across month boundaries: a stay spanning two
// months counts fully in the month it starts.
type MonthEntry struct {
	MonthIndex int       `json:"monthIndex"` // index into MonthlyRevenueReport.Months
	Arrival    time.Time `json:"arrival"`
	Value      float64   `json:"value"`
	Nights     int       `json:"nights"`
	OwnerStay  bool      `json:"ownerStay"`
}

// MonthlyRevenueReport is the stacked per-booking revenue series. Months
// appear in first-occurrence chronological order (bookings sorted by
// arrival first), so the entries stack deterministically.
type MonthlyRevenueReport struct {
	Mode         model.Mode   `json:"mode"`
	Months       []string     `json:"months"`       // "YYYY-MM"
	MonthNumbers []int        `json:"monthNumbers"` // 1-12 per month, for season bands
	Entries      []MonthEntry `json:"entries"`
	MonthTotals  []float64    `json:"monthTotals"`
}

// MonthlyRevenue buckets bookings by the calendar month of their arrival.
func MonthlyRevenue(bookings []model.Booking, mode model.Mode) MonthlyRevenueReport {
	sorted := sortByArrival(bookings)

	report := MonthlyRevenueReport{Mode: mode}
	monthIndex := make(map[string]int)

	for i := range sorted {
		key := calendar.MonthKey(sorted[i].Arrival)
		if _, ok := monthIndex[key]; !ok {
			monthIndex[key] = len(report.Months)
			report.Months = append(report.Months, key)
			report.MonthNumbers = append(report.MonthNumbers, int(sorted[i].Arrival.Month()))
		}
	}

	report.MonthTotals = make([]float64, len(report.Months))
	report.Entries = make([]MonthEntry, 0, len(sorted))
	for i := range sorted {
		b := &sorted[i]
		idx := monthIndex[calendar.MonthKey(b.Arrival)]
		value := b.Value(mode)
		report.Entries = append(report.Entries, MonthEntry{
			MonthIndex: idx,
			Arrival:    b.Arrival,
			Value:      value,
			Nights:     b.Nights,
			OwnerStay:  b.OwnerStay,
		})
		report.MonthTotals[idx] += value
	}
	return report
}

// MonthActivity is one month's booking and night counts.
type MonthActivity struct {
	Month       string `json:"month"` // "YYYY-MM"
	MonthNumber int    `json:"monthNumber"`
	Bookings    int    `json:"bookings"`
	Nights      int    `json:"nights"`
}

// MonthlyActivityReport counts bookings and nights per arrival month,
// chronologically. Mode-independent.
type MonthlyActivityReport struct {
	Months []MonthActivity `json:"months"`
}

// MonthlyActivity tallies bookings and nights by arrival month.
func MonthlyActivity(bookings []model.Booking) MonthlyActivityReport {
	type tally struct {
		bookings int
		nights   int
		month    int
	}
	byMonth := make(map[string]*tally)
	for i := range bookings {
		b := &bookings[i]
		key := calendar.MonthKey(b.Arrival)
		t, ok := byMonth[key]
		if !ok {
			t = &tally{month: int(b.Arrival.Month())}
			byMonth[key] = t
		}
		t.bookings++
		t.nights += b.Nights
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys) // zero-padded year-major keys: lexical == chronological

	report := MonthlyActivityReport{Months: make([]MonthActivity, 0, len(keys))}
	for _, k := range keys {
		t := byMonth[k]
		report.Months = append(report.Months, MonthActivity{
			Month:       k,
			MonthNumber: t.month,
			Bookings:    t.bookings,
			Nights:      t.nights,
		})
	}
	return report
}

// sortByArrival returns a copy of bookings sorted ascending by arrival.
// Stable so equal arrivals keep input order, which keeps stacked and
// cumulative series deterministic.
func sortByArrival(bookings []model.Booking) []model.Booking {
	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival.Before(sorted[j].Arrival)
	})
	return sorted
}
