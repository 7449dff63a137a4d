package calculator

import (
	"sort"
	"strconv"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// OwnerBucket is the guest-distribution bucket counting owner stays,
// regardless of their party size.
const OwnerBucket = "OwnerStay"

// GuestBucket is one party-size slice.
type GuestBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GuestDistributionReport groups bookings by party size: "1".."9", "10"
// for ten or more, plus the OwnerStay bucket. The owner bucket comes first
// when present, then numeric buckets ascending.
type GuestDistributionReport struct {
	Buckets []GuestBucket `json:"buckets"`
}

// GuestDistribution classifies bookings by guest count. Non-owner bookings
// without a positive guest count are excluded.
func GuestDistribution(bookings []model.Booking) GuestDistributionReport {
	counts := make(map[string]int)
	for i := range bookings {
		b := &bookings[i]
		if b.OwnerStay {
			counts[OwnerBucket]++
			continue
		}
		if b.GuestCount <= 0 {
			continue
		}
		key := strconv.Itoa(b.GuestCount)
		if b.GuestCount >= 10 {
			key = "10"
		}
		counts[key]++
	}

	var numeric []int
	for k := range counts {
		if k == OwnerBucket {
			continue
		}
		n, _ := strconv.Atoi(k)
		numeric = append(numeric, n)
	}
	sort.Ints(numeric)

	report := GuestDistributionReport{Buckets: make([]GuestBucket, 0, len(counts))}
	if c, ok := counts[OwnerBucket]; ok {
		report.Buckets = append(report.Buckets, GuestBucket{Label: OwnerBucket, Count: c})
	}
	for _, n := range numeric {
		label := strconv.Itoa(n)
		report.Buckets = append(report.Buckets, GuestBucket{Label: label, Count: counts[label]})
	}
	return report
}
