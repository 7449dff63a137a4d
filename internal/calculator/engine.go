package calculator

import (
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// Engine computes every report over one immutable booking snapshot. Each
// report is an independent fold over the snapshot; none mutates another's
// output, so recomputing with the same snapshot and mode is bit-identical.
type Engine struct {
	cfg *config.AppConfig
}

// NewEngine creates an engine. The configuration must already be
// validated; the engine never re-checks it.
func NewEngine(cfg *config.AppConfig) *Engine {
	return &Engine{cfg: cfg}
}

// ReportSet bundles every report for one snapshot and mode.
type ReportSet struct {
	Mode            model.Mode              `json:"mode"`
	KPI             KPIReport               `json:"kpi"`
	MonthlyRevenue  MonthlyRevenueReport    `json:"monthlyRevenue"`
	MonthlyActivity MonthlyActivityReport   `json:"monthlyActivity"`
	LeadTime        LeadTimeReport          `json:"leadTime"`
	ChannelRevenue  ChannelRevenueReport    `json:"channelRevenue"`
	Guests          GuestDistributionReport `json:"guests"`
	Occupancy       WeeklyOccupancyReport   `json:"occupancy"`
	Gaps            []Gap                   `json:"gaps"`
	Cumulative      CumulativeReport        `json:"cumulative"`
}

// ComputeAll runs every aggregator over the snapshot. The mode is threaded
// into each revenue-bearing report explicitly; nothing here is stateful.
func (e *Engine) ComputeAll(bookings []model.Booking, mode model.Mode) *ReportSet {
	return &ReportSet{
		Mode:            mode,
		KPI:             Summarize(bookings, mode),
		MonthlyRevenue:  MonthlyRevenue(bookings, mode),
		MonthlyActivity: MonthlyActivity(bookings),
		LeadTime:        LeadTimeHistogram(bookings, e.cfg.LeadTime.Buckets),
		ChannelRevenue:  RevenueByChannel(bookings, mode),
		Guests:          GuestDistribution(bookings),
		Occupancy:       WeeklyOccupancy(bookings),
		Gaps:            DetectGaps(bookings),
		Cumulative:      CumulativeRevenue(bookings, mode, e.seasonMarkers()),
	}
}

// seasonMarkers builds the configured reference lines. The dates were
// validated at configuration load; a parse failure here cannot happen, so
// a marker is simply skipped if it somehow does.
func (e *Engine) seasonMarkers() []SeasonMarker {
	markers := make([]SeasonMarker, 0, 2)
	if d, err := e.cfg.SummerStartDate(); err == nil {
		markers = append(markers, SeasonMarker{Date: d, Label: "Zomer"})
	}
	if d, err := e.cfg.WinterStartDate(); err == nil {
		markers = append(markers, SeasonMarker{Date: d, Label: "Winter"})
	}
	return markers
}
