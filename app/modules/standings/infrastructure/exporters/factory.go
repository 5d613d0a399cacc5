package exporters

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
)

// ErrUnsupportedFormat is returned for destinations no exporter can write.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter renders ranked standings to a stream.
type Exporter interface {
	Export(w io.Writer, standings []standingsdomain.Standing) error
}

// ExporterFactory defines the interface for choosing an exporter.
type ExporterFactory interface {
	GetExporter(filename string) (Exporter, error)
}

// Factory picks an exporter from the destination's extension.
type Factory struct {
	Options Options
}

// Options tunes the exporters a Factory builds.
type Options struct {
	BOMPrefix  bool // prefix CSV output with a UTF-8 BOM for Excel
	ChartLimit int  // clubs drawn in PNG charts, 0 for the default
}

// NewFactory creates a new exporter factory
func NewFactory(opts Options) *Factory {
	return &Factory{Options: opts}
}

// GetExporter returns the exporter for filename. No extension means CSV.
func (f *Factory) GetExporter(filename string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv", "":
		return &CSVExporter{BOMPrefix: f.Options.BOMPrefix}, nil
	case ".xlsx":
		return NewXLSXExporter(), nil
	case ".png":
		return NewChartExporter(f.Options.ChartLimit, DefaultChartPalette()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteFile exports standings to path, creating parent folders as needed.
func WriteFile(logger *slog.Logger, path string, exporter Exporter, standings []standingsdomain.Standing) (err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Writing standings",
		slog.String("path", path),
		slog.Int("clubs", len(standings)),
	)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err := exporter.Export(file, standings); err != nil {
		return fmt.Errorf("failed to export standings: %w", err)
	}
	return nil
}
