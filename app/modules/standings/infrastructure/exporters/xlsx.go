package exporters

import (
	"fmt"
	"io"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/xuri/excelize/v2"
)

// StandingsSheet is the worksheet name used in XLSX exports.
const StandingsSheet = "Standings"

// XLSXExporter writes standings to a single-sheet workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSX exporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes a header row and one numeric row per club.
func (e *XLSXExporter) Export(w io.Writer, standings []standingsdomain.Standing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StandingsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(standingsdomain.StandingsHeader))
	for i, h := range standingsdomain.StandingsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(StandingsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, s := range standings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Club, int(s.Points)}
		if err := f.SetSheetRow(StandingsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SetColWidth(StandingsSheet, "A", "A", 32); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}
