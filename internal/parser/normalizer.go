package parser

import (
	"math"
	"strings"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calendar"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// Normalizer turns raw spreadsheet rows into canonical bookings. Pure:
// the same rows always produce the same bookings, and no input is mutated.
type Normalizer struct {
	cfg *config.AppConfig
}

// NewNormalizer creates a normalizer for the given configuration. The
// configuration is expected to be validated already.
func NewNormalizer(cfg *config.AppConfig) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize maps every raw row to a Booking and drops rows without a
// parseable arrival date. That filter is the only way a row disappears;
// every other malformed field falls back to its documented default.
func (n *Normalizer) Normalize(rows []model.RawRow) []model.Booking {
	bookings := make([]model.Booking, 0, len(rows))
	for _, row := range rows {
		if b, ok := n.normalizeRow(row); ok {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

func (n *Normalizer) normalizeRow(row model.RawRow) (model.Booking, bool) {
	cols := n.cfg.Columns

	arrival, ok := ParseDate(row[cols.Arrival])
	if !ok {
		return model.Booking{}, false
	}
	arrival = calendar.StartOfDay(arrival)

	b := model.Booking{
		Arrival: arrival,
		Raw:     row,
	}

	if d, ok := ParseDate(row[cols.Departure]); ok {
		d = calendar.StartOfDay(d)
		b.Departure = &d
	}
	if d, ok := ParseDate(row[cols.BookedOn]); ok {
		d = calendar.StartOfDay(d)
		b.BookedOn = &d
	}

	if v, ok := ParseNumber(row[cols.Nights]); ok {
		b.Nights = clampCount(v)
	}

	var guests float64
	for _, col := range cols.Guests {
		if v, ok := ParseNumber(row[col]); ok {
			guests += v
		}
	}
	b.GuestCount = clampCount(guests)

	b.OwnerStay = n.isOwnerStay(row)
	if !b.OwnerStay {
		if v, ok := ParseNumber(row[cols.Revenue]); ok {
			b.GrossRevenue = v
		}
	}
	b.NetRevenue = b.GrossRevenue * n.cfg.Revenue.NetFactor

	if b.OwnerStay {
		b.Channel = model.ChannelOwnerStay
	} else {
		b.Channel = GuessChannel(stringValue(row[cols.Source]), n.cfg.Channels.Rules)
	}

	return b, true
}

// isOwnerStay applies the two owner rules in their fixed precedence: the
// revenue-cell marker first, then the owner keyword in the booking-source
// text.
func (n *Normalizer) isOwnerStay(row model.RawRow) bool {
	if s, ok := row[n.cfg.Columns.Revenue].(string); ok {
		if strings.TrimSpace(s) == n.cfg.Revenue.NoValueMarker {
			return true
		}
	}
	kw := strings.ToLower(n.cfg.Channels.OwnerKeyword)
	if kw == "" {
		return false
	}
	source := strings.ToLower(stringValue(row[n.cfg.Columns.Source]))
	return strings.Contains(source, kw)
}

// clampCount rounds a parsed numeric field to a non-negative integer.
func clampCount(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}
