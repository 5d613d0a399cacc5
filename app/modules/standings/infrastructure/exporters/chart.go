package exporters

import (
	"fmt"
	"io"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultChartLimit is how many clubs a chart shows when no limit is set.
const DefaultChartLimit = 15

// ChartPalette holds the colours of a standings chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	TextColor  drawing.Color
}

// DefaultChartPalette is a light palette suitable for printing.
func DefaultChartPalette() ChartPalette {
	return ChartPalette{
		Background: drawing.ColorWhite,
		Bar:        drawing.ColorFromHex("1f6f8b"),
		TextColor:  drawing.ColorFromHex("222222"),
	}
}

// ChartExporter draws the leading clubs as a PNG bar chart.
type ChartExporter struct {
	limit   int
	palette ChartPalette
}

// NewChartExporter creates a chart exporter showing at most limit clubs.
func NewChartExporter(limit int, palette ChartPalette) *ChartExporter {
	if limit <= 0 {
		limit = DefaultChartLimit
	}
	return &ChartExporter{limit: limit, palette: palette}
}

// Export renders the chart, or a placeholder when there is nothing to draw.
func (e *ChartExporter) Export(w io.Writer, standings []standingsdomain.Standing) error {
	if len(standings) == 0 {
		return e.renderNoDataPlaceholder(w)
	}

	shown := standings
	if len(shown) > e.limit {
		shown = shown[:e.limit]
	}

	bars := make([]chart.Value, len(shown))
	for i, s := range shown {
		bars[i] = chart.Value{
			Label: s.Club,
			Value: float64(s.Points),
			Style: chart.Style{
				FillColor:   e.palette.Bar,
				StrokeColor: e.palette.Bar,
			},
		}
	}

	// Standings are sorted, so the first bar is the tallest.
	top := float64(shown[0].Points)
	if top < 1 {
		top = 1
	}

	graph := chart.BarChart{
		Title:      "Club Standings",
		Width:      max(400, 100*len(bars)+160),
		Height:     480,
		BarWidth:   48,
		BarSpacing: 24,
		Background: chart.Style{FillColor: e.palette.Background},
		Canvas:     chart.Style{FillColor: e.palette.Background},
		TitleStyle: chart.Style{FontColor: e.palette.TextColor},
		XAxis:      chart.Style{FontColor: e.palette.TextColor, TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  "Points",
			Style: chart.Style{FontColor: e.palette.TextColor},
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// renderNoDataPlaceholder draws a single empty bar, since go-chart refuses
// to render a chart without data.
func (e *ChartExporter) renderNoDataPlaceholder(w io.Writer) error {
	graph := chart.BarChart{
		Title:      "Club Standings",
		Width:      400,
		Height:     240,
		BarWidth:   48,
		BarSpacing: 24,
		Background: chart.Style{FillColor: e.palette.Background},
		Canvas:     chart.Style{FillColor: e.palette.Background},
		TitleStyle: chart.Style{FontColor: e.palette.TextColor},
		XAxis:      chart.Style{FontColor: e.palette.TextColor},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: e.palette.TextColor},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: []chart.Value{{Label: "No races found", Value: 0}},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render placeholder: %w", err)
	}
	return nil
}
