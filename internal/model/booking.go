package model

import "time"

// Mode selects which revenue figure the reports present.
type Mode string

const (
	ModeGross Mode = "gross"
	ModeNet   Mode = "net"
)

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == ModeGross || m == ModeNet
}

// RawRow is one spreadsheet row keyed by header name. Values are whatever
// the reader produced; the parsers deal with the variety.
type RawRow map[string]any

// Channel names the booking source after classification.
type Channel string

const (
	ChannelOwnerStay   Channel = "OwnerStay"
	ChannelVillaForYou Channel = "Villa for You"
	ChannelBookingCom  Channel = "Booking.com"
	ChannelAirbnb      Channel = "Airbnb"
	ChannelOther       Channel = "Other"
	ChannelUnknown     Channel = "Unknown"
)

// Booking is the canonical record every report computes over. Dates are
// UTC midnights. Departure and BookedOn are nil when the sheet had no
// parseable value; Arrival is always set, a row without it never becomes
// a Booking.
type Booking struct {
	Arrival      time.Time  `json:"arrival"`
	Departure    *time.Time `json:"departure,omitempty"`
	BookedOn     *time.Time `json:"bookedOn,omitempty"`
	Nights       int        `json:"nights"`
	GuestCount   int        `json:"guestCount"`
	OwnerStay    bool       `json:"ownerStay"`
	GrossRevenue float64    `json:"grossRevenue"`
	NetRevenue   float64    `json:"netRevenue"`
	Channel      Channel    `json:"channel"`

	// Raw keeps the source row for passthrough columns (country, note).
	Raw RawRow `json:"-"`
}

// Value returns the booking's revenue in the given mode.
func (b *Booking) Value(mode Mode) float64 {
	if mode == ModeNet {
		return b.NetRevenue
	}
	return b.GrossRevenue
}

// Occupied reports whether the booking contributes nights to the
// occupancy calendar: it needs a departure strictly after the arrival.
func (b *Booking) Occupied() bool {
	return b.Departure != nil && b.Departure.After(b.Arrival)
}
