package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/calculator"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/exporter"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/importer"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/parser"
)

var (
	input    = flag.String("input", "", "bookings workbook (.xlsx)")
	sheet    = flag.String("sheet", "", "sheet name (default: first sheet)")
	cfgPath  = flag.String("config", defaultConfigPath(), "configuration file")
	modeFlag = flag.String("mode", "gross", "revenue mode: gross or net")
	jsonOut  = flag.String("json", "", "write the full report set as JSON to this path")
	xlsxOut  = flag.String("xlsx", "", "write a summary workbook to this path")
)

// defaultConfigPath allows pointing the tool at a config file through the
// environment, e.g. when running from a scheduled job.
func defaultConfigPath() string {
	if v := os.Getenv("LODGESTATS_CONFIG"); v != "" {
		return v
	}
	return "config.toml"
}

func main() {
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: lodgestats -input bookings.xlsx [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	mode := model.Mode(*modeFlag)
	if !mode.Valid() {
		log.Fatalf("invalid -mode %q, want gross or net", *modeFlag)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config %s: %v", *cfgPath, err)
	}

	imp := &importer.Importer{Sheet: *sheet}
	rows, info, err := imp.ReadFile(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}
	fmt.Printf("import %s: sheet %q, %d rows (%s, batch %s)\n",
		info.Filename, info.Sheet, info.RowCount, info.Duration, info.ID)

	bookings := parser.NewNormalizer(cfg).Normalize(rows)
	if dropped := info.RowCount - len(bookings); dropped > 0 {
		log.Printf("dropped %d rows without a parseable arrival date", dropped)
	}

	reports := calculator.NewEngine(cfg).ComputeAll(bookings, mode)
	printKPI(&reports.KPI)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, reports); err != nil {
			log.Fatalf("write %s: %v", *jsonOut, err)
		}
		fmt.Printf("report JSON: %s\n", *jsonOut)
	}

	if *xlsxOut != "" {
		exp := exporter.NewExporter(cfg)
		if err := exp.ExportToFile(*xlsxOut, bookings, reports); err != nil {
			log.Fatalf("write %s: %v", *xlsxOut, err)
		}
		fmt.Printf("summary workbook: %s\n", *xlsxOut)
	}
}

func printKPI(kpi *calculator.KPIReport) {
	fmt.Println("==========================================")
	fmt.Printf("  Boekingen (platform / eigenaar): %d / %d\n", kpi.PlatformBookings, kpi.OwnerBookings)
	fmt.Printf("  Nachten   (platform / eigenaar): %d / %d\n", kpi.PlatformNights, kpi.OwnerNights)
	fmt.Printf("  Omzet bruto: %.2f\n", kpi.GrossRevenue)
	fmt.Printf("  Omzet netto: %.2f\n", kpi.NetRevenue)
	if kpi.GrossPerNight != nil {
		fmt.Printf("  Per nacht bruto: %.2f\n", *kpi.GrossPerNight)
	}
	if kpi.NetPerNight != nil {
		fmt.Printf("  Per nacht netto: %.2f\n", *kpi.NetPerNight)
	}
	fmt.Println("==========================================")
}

func writeJSON(path string, reports *calculator.ReportSet) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
