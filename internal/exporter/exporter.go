package exporter

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calculator"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

const dateLayout = "02-01-2006"

// Exporter writes the computed reports into a summary workbook, one sheet
// per report. It consumes the engine's outputs only; nothing here feeds
// back into aggregation.
type Exporter struct {
	cfg *config.AppConfig
}

// NewExporter creates an exporter.
func NewExporter(cfg *config.AppConfig) *Exporter {
	return &Exporter{cfg: cfg}
}

// ExportToFile writes the summary workbook to path.
func (e *Exporter) ExportToFile(path string, bookings []model.Booking, reports *calculator.ReportSet) error {
	f, err := e.Export(bookings, reports)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Export builds the summary workbook. The caller owns closing the file.
func (e *Exporter) Export(bookings []model.Booking, reports *calculator.ReportSet) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "KPI"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	steps := []func(*excelize.File, int) error{
		func(f *excelize.File, style int) error { return e.writeKPI(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeBookings(f, style, bookings) },
		func(f *excelize.File, style int) error { return e.writeMonthly(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeLeadTime(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeChannels(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeGuests(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeOccupancy(f, style, reports) },
		func(f *excelize.File, style int) error { return e.writeGaps(f, style, reports) },
	}
	for _, step := range steps {
		if err := step(f, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func newSheet(f *excelize.File, name string) error {
	if name == "KPI" {
		return nil // renamed default sheet
	}
	_, err := f.NewSheet(name)
	if err != nil {
		return fmt.Errorf("new sheet %q: %w", name, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, style int, header []any, rows [][]any) error {
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	end, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func (e *Exporter) writeKPI(f *excelize.File, style int, reports *calculator.ReportSet) error {
	k := reports.KPI
	rows := [][]any{
		{"Boekingen (platform)", k.PlatformBookings},
		{"Boekingen (eigenaar)", k.OwnerBookings},
		{"Nachten (platform)", k.PlatformNights},
		{"Nachten (eigenaar)", k.OwnerNights},
		{"Bruto omzet", k.GrossRevenue},
		{"Netto omzet", k.NetRevenue},
	}
	if k.GrossPerNight != nil {
		rows = append(rows, []any{"Bruto per nacht", *k.GrossPerNight})
	}
	if k.NetPerNight != nil {
		rows = append(rows, []any{"Netto per nacht", *k.NetPerNight})
	}
	return writeRows(f, "KPI", style, []any{"KPI", "Waarde"}, rows)
}

func (e *Exporter) writeBookings(f *excelize.File, style int, bookings []model.Booking) error {
	cols := e.cfg.Columns

	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival.Before(sorted[j].Arrival)
	})

	rows := make([][]any, 0, len(sorted))
	for i := range sorted {
		b := &sorted[i]
		rows = append(rows, []any{
			b.Arrival.Format(dateLayout),
			formatDatePtr(b.Departure),
			b.Nights,
			string(b.Channel),
			rawString(b.Raw, cols.Country),
			b.GuestCount,
			b.GrossRevenue,
			b.NetRevenue,
			rawString(b.Raw, cols.Note),
		})
	}
	header := []any{"Aankomst", "Vertrek", "Nachten", "Kanaal", "Land", "Gasten", "Bruto", "Netto", "Opmerking"}
	return writeRows(f, "Boekingen", style, header, rows)
}

func (e *Exporter) writeMonthly(f *excelize.File, style int, reports *calculator.ReportSet) error {
	rev := reports.MonthlyRevenue
	byMonth := make(map[string]calculator.MonthActivity)
	for _, m := range reports.MonthlyActivity.Months {
		byMonth[m.Month] = m
	}
	rows := make([][]any, 0, len(rev.Months))
	for i, month := range rev.Months {
		act := byMonth[month]
		rows = append(rows, []any{month, rev.MonthTotals[i], act.Bookings, act.Nights})
	}
	header := []any{"Maand", "Omzet", "Boekingen", "Nachten"}
	return writeRows(f, "Per maand", style, header, rows)
}

func (e *Exporter) writeLeadTime(f *excelize.File, style int, reports *calculator.ReportSet) error {
	rows := make([][]any, 0, len(reports.LeadTime.Buckets))
	for _, b := range reports.LeadTime.Buckets {
		rows = append(rows, []any{b.Label, b.Count})
	}
	rows = append(rows, []any{"Totaal", reports.LeadTime.Total})
	return writeRows(f, "Leadtime", style, []any{"Dagen", "Boekingen"}, rows)
}

func (e *Exporter) writeChannels(f *excelize.File, style int, reports *calculator.ReportSet) error {
	rows := make([][]any, 0, len(reports.ChannelRevenue.Channels))
	for _, ch := range reports.ChannelRevenue.Channels {
		rows = append(rows, []any{string(ch.Channel), ch.Revenue})
	}
	return writeRows(f, "Kanalen", style, []any{"Kanaal", "Omzet"}, rows)
}

func (e *Exporter) writeGuests(f *excelize.File, style int, reports *calculator.ReportSet) error {
	rows := make([][]any, 0, len(reports.Guests.Buckets))
	for _, b := range reports.Guests.Buckets {
		label := b.Label
		if label != calculator.OwnerBucket {
			label += " pers."
		}
		rows = append(rows, []any{label, b.Count})
	}
	return writeRows(f, "Gasten", style, []any{"Groep", "Boekingen"}, rows)
}

func (e *Exporter) writeOccupancy(f *excelize.File, style int, reports *calculator.ReportSet) error {
	rows := make([][]any, 0, len(reports.Occupancy.Weeks))
	for _, w := range reports.Occupancy.Weeks {
		rows = append(rows, []any{w.Week, w.Booked, w.Free})
	}
	return writeRows(f, "Bezetting", style, []any{"Week", "Bezet", "Vrij"}, rows)
}

func (e *Exporter) writeGaps(f *excelize.File, style int, reports *calculator.ReportSet) error {
	// largest gaps first, those are the ones worth discounting
	gaps := make([]calculator.Gap, len(reports.Gaps))
	copy(gaps, reports.Gaps)
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Nights > gaps[j].Nights })

	rows := make([][]any, 0, len(gaps))
	for _, g := range gaps {
		rows = append(rows, []any{
			g.Start.Format(dateLayout),
			g.End.Format(dateLayout),
			g.Nights,
			g.Advice,
		})
	}
	header := []any{"Start", "Eind", "Vrije nachten", "Kortingsadvies"}
	return writeRows(f, "Vrije periodes", style, header, rows)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func rawString(raw model.RawRow, key string) string {
	if raw == nil || key == "" {
		return ""
	}
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}
