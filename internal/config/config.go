package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig holds every business constant the engine depends on. All of it
// is overridable through config.toml so the engine can be reused against
// differently-labeled datasets.
type AppConfig struct {
	Revenue  RevenueConfig  `toml:"revenue"`
	Columns  ColumnsConfig  `toml:"columns"`
	Channels ChannelsConfig `toml:"channels"`
	LeadTime LeadTimeConfig `toml:"leadtime"`
	Seasons  SeasonsConfig  `toml:"seasons"`
}

// RevenueConfig controls gross-to-net conversion and the owner-stay
// revenue marker.
type RevenueConfig struct {
	// NetFactor is the owner's share of gross revenue after platform costs.
	NetFactor float64 `toml:"net_factor"`
	// NoValueMarker is the literal revenue-cell value that flags an owner
	// stay ("-" in the source sheets).
	NoValueMarker string `toml:"no_value_marker"`
}

// ColumnsConfig names the spreadsheet columns the normalizer reads.
// Defaults follow the Dutch booking export.
type ColumnsConfig struct {
	Arrival   string   `toml:"arrival"`
	Departure string   `toml:"departure"`
	BookedOn  string   `toml:"booked_on"`
	Nights    string   `toml:"nights"`
	Guests    []string `toml:"guests"`
	Source    string   `toml:"source"`
	Revenue   string   `toml:"revenue"`
	Country   string   `toml:"country"`
	Note      string   `toml:"note"`
}

// ChannelRule maps case-insensitive substrings of the booking-source text
// to a channel name. Rules are checked in order; the first match wins.
type ChannelRule struct {
	Keywords []string `toml:"keywords"`
	Channel  string   `toml:"channel"`
}

// ChannelsConfig holds the owner-stay keyword and the ordered channel
// classification table.
type ChannelsConfig struct {
	OwnerKeyword string        `toml:"owner_keyword"`
	Rules        []ChannelRule `toml:"rules"`
}

// LeadBucket is one lead-time histogram bucket, inclusive on both ends.
// Max < 0 means unbounded.
type LeadBucket struct {
	Label string `toml:"label"`
	Min   int    `toml:"min"`
	Max   int    `toml:"max"`
}

// LeadTimeConfig holds the histogram bucket boundaries.
type LeadTimeConfig struct {
	Buckets []LeadBucket `toml:"buckets"`
}

// SeasonsConfig drives season-band annotation. Months are calendar month
// numbers 1-12; marker dates are "YYYY-MM-DD" reference lines on the
// cumulative timeline.
type SeasonsConfig struct {
	WinterMonths []int  `toml:"winter_months"`
	SummerMonths []int  `toml:"summer_months"`
	SummerStart  string `toml:"summer_start"`
	WinterStart  string `toml:"winter_start"`
}

// DefaultConfig returns the configuration for the Dutch booking export.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Revenue: RevenueConfig{
			NetFactor:     0.76,
			NoValueMarker: "-",
		},
		Columns: ColumnsConfig{
			Arrival:   "Aankomst",
			Departure: "Vertrek",
			BookedOn:  "Geboekt op",
			Nights:    "Nachten",
			Guests:    []string{"Volw.", "Knd.", "Bab.", "H.d."},
			Source:    "Boeking",
			Revenue:   "Inkomsten",
			Country:   "Land",
			Note:      "Opmerking",
		},
		Channels: ChannelsConfig{
			OwnerKeyword: "huiseigenaar",
			Rules: []ChannelRule{
				{Keywords: []string{"huiseigenaar"}, Channel: "OwnerStay"},
				{Keywords: []string{"villa for you", "villaforyou"}, Channel: "Villa for You"},
				{Keywords: []string{"booking"}, Channel: "Booking.com"},
				{Keywords: []string{"airbnb"}, Channel: "Airbnb"},
			},
		},
		LeadTime: LeadTimeConfig{
			Buckets: []LeadBucket{
				{Label: "0-7", Min: 0, Max: 7},
				{Label: "8-14", Min: 8, Max: 14},
				{Label: "15-30", Min: 15, Max: 30},
				{Label: "31-60", Min: 31, Max: 60},
				{Label: "61-90", Min: 61, Max: 90},
				{Label: "91-180", Min: 91, Max: 180},
				{Label: "181+", Min: 181, Max: -1},
			},
		},
		Seasons: SeasonsConfig{
			WinterMonths: []int{12, 1, 2, 3},
			SummerMonths: []int{6, 7, 8},
			SummerStart:  "2026-06-01",
			WinterStart:  "2026-11-15",
		},
	}
}

// Load reads config.toml from path. A missing file is not an error: the
// defaults apply. A present but malformed or invalid file is fatal to the
// caller; bad business constants must never degrade silently.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *AppConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on configuration the engine cannot produce sensible
// output with.
func (c *AppConfig) Validate() error {
	if c.Revenue.NetFactor <= 0 {
		return fmt.Errorf("revenue.net_factor must be positive, got %g", c.Revenue.NetFactor)
	}
	if c.Columns.Arrival == "" {
		return fmt.Errorf("columns.arrival must not be empty")
	}
	if len(c.Channels.Rules) == 0 {
		return fmt.Errorf("channels.rules must not be empty")
	}
	for i, r := range c.Channels.Rules {
		if len(r.Keywords) == 0 {
			return fmt.Errorf("channels.rules[%d]: no keywords", i)
		}
		if r.Channel == "" {
			return fmt.Errorf("channels.rules[%d]: empty channel name", i)
		}
	}
	if err := c.validateLeadBuckets(); err != nil {
		return err
	}
	for _, m := range c.Seasons.WinterMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("seasons.winter_months: month %d out of range 1-12", m)
		}
	}
	for _, m := range c.Seasons.SummerMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("seasons.summer_months: month %d out of range 1-12", m)
		}
	}
	if _, err := c.SummerStartDate(); err != nil {
		return err
	}
	if _, err := c.WinterStartDate(); err != nil {
		return err
	}
	return nil
}

func (c *AppConfig) validateLeadBuckets() error {
	buckets := c.LeadTime.Buckets
	if len(buckets) == 0 {
		return fmt.Errorf("leadtime.buckets must not be empty")
	}
	if buckets[0].Min != 0 {
		return fmt.Errorf("leadtime.buckets must start at 0, got %d", buckets[0].Min)
	}
	for i, b := range buckets {
		last := i == len(buckets)-1
		if last {
			if b.Max >= 0 && b.Max < b.Min {
				return fmt.Errorf("leadtime.buckets[%d]: max %d below min %d", i, b.Max, b.Min)
			}
			continue
		}
		if b.Max < b.Min {
			return fmt.Errorf("leadtime.buckets[%d]: max %d below min %d", i, b.Max, b.Min)
		}
		if buckets[i+1].Min != b.Max+1 {
			return fmt.Errorf("leadtime.buckets[%d-%d]: not contiguous (%d then %d)", i, i+1, b.Max, buckets[i+1].Min)
		}
	}
	return nil
}

// SummerStartDate parses the summer reference-line date.
func (c *AppConfig) SummerStartDate() (time.Time, error) {
	return parseMarker("seasons.summer_start", c.Seasons.SummerStart)
}

// WinterStartDate parses the winter reference-line date.
func (c *AppConfig) WinterStartDate() (time.Time, error) {
	return parseMarker("seasons.winter_start", c.Seasons.WinterStart)
}

func parseMarker(name, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t.UTC(), nil
}
