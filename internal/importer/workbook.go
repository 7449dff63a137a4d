package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// ImportReport describes one workbook read.
type ImportReport struct {
	ID       string        `json:"id"`
	Filename string        `json:"filename"`
	Sheet    string        `json:"sheet"`
	Columns  []string      `json:"columns"`
	RowCount int           `json:"rowCount"`
	Duration time.Duration `json:"duration"`
}

// Importer reads a booking workbook into the ordered raw-row sequence the
// normalizer consumes. When Sheet is empty the first sheet is used.
type Importer struct {
	Sheet string
}

// ReadFile reads the workbook at path.
func (imp *Importer) ReadFile(path string) ([]model.RawRow, *ImportReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return imp.read(f, filepath.Base(path))
}

// Read reads a workbook from r; filename is informational only.
func (imp *Importer) Read(r io.Reader, filename string) ([]model.RawRow, *ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return imp.read(f, filename)
}

func (imp *Importer) read(f *excelize.File, filename string) ([]model.RawRow, *ImportReport, error) {
	start := time.Now()

	sheet := imp.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := make([]string, 0, len(rows[0]))
	for _, name := range rows[0] {
		header = append(header, strings.TrimSpace(name))
	}

	rawRows := make([]model.RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(model.RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			// missing trailing cells read as the empty string, so every
			// header key is always present on every row
			if i < len(row) {
				raw[name] = row[i]
			} else {
				raw[name] = ""
			}
		}
		rawRows = append(rawRows, raw)
	}

	report := &ImportReport{
		ID:       uuid.New().String(),
		Filename: filename,
		Sheet:    sheet,
		Columns:  header,
		RowCount: len(rawRows),
		Duration: time.Since(start),
	}
	return rawRows, report, nil
}
