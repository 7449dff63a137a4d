package calculator

import (
	"sort"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// ChannelRevenue is one channel's mode-selected revenue total.
type ChannelRevenue struct {
	Channel model.Channel `json:"channel"`
	Revenue float64       `json:"revenue"`
}

// ChannelRevenueReport lists channels by descending revenue; ties keep the
// channels' first-occurrence input order.
type ChannelRevenueReport struct {
	Mode     model.Mode       `json:"mode"`
	Channels []ChannelRevenue `json:"channels"`
}

// RevenueByChannel sums the selected-mode revenue per channel.
func RevenueByChannel(bookings []model.Booking, mode model.Mode) ChannelRevenueReport {
	totals := make(map[model.Channel]float64)
	var order []model.Channel
	for i := range bookings {
		b := &bookings[i]
		ch := b.Channel
		if ch == "" {
			ch = model.ChannelUnknown
		}
		if _, seen := totals[ch]; !seen {
			order = append(order, ch)
		}
		totals[ch] += b.Value(mode)
	}

	channels := make([]ChannelRevenue, 0, len(order))
	for _, ch := range order {
		channels = append(channels, ChannelRevenue{Channel: ch, Revenue: totals[ch]})
	}
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Revenue > channels[j].Revenue
	})
	return ChannelRevenueReport{Mode: mode, Channels: channels}
}
