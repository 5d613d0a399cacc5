package exporters

import (
	"encoding/csv"
	"fmt"
	"io"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVExporter writes the "Club Name,Points" table.
type CSVExporter struct {
	BOMPrefix bool
}

// Export writes the header and one row per club. Empty standings give the header alone.
func (e *CSVExporter) Export(w io.Writer, standings []standingsdomain.Standing) error {
	if e.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	for i, row := range standingsdomain.StandingsRows(standings) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
