package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	standingsservice "github.com/Black-And-White-Club/lif-standings/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/exporters"
	standingsmetrics "github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/metrics"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/parsers"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/sources"
	"github.com/Black-And-White-Club/lif-standings/config"
	"github.com/Black-And-White-Club/lif-standings/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App wires the standings service with its sources, exporters and telemetry.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Registry  *prometheus.Registry
	Tracing   *observability.Tracing
	Service   standingsservice.Service
	Exporters exporters.ExporterFactory
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat, nil)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	metrics, err := standingsmetrics.NewPrometheusMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	tracing, err := observability.NewTracing(cfg.Observability.TraceStdout, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if _, err := parsers.NewLIFParser(cfg.Source.Charset); err != nil {
		return nil, err
	}

	maxDepth := sources.MaxTraversalDepth
	if cfg.Source.MaxDepth != nil {
		maxDepth = *cfg.Source.MaxDepth
	}

	service := standingsservice.NewStandingsService(
		sources.NewDirectorySource(maxDepth, logger),
		parsers.NewFactory(cfg.Source.Charset),
		logger,
		metrics,
		tracing.Tracer,
	)

	logger.DebugContext(ctx, "Application initialized",
		slog.String("source_dir", cfg.Source.Dir),
		slog.String("charset", cfg.Source.Charset),
		slog.Int("workers", cfg.Source.Workers),
		slog.String("years", cfg.Filter.String()),
	)

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Registry: registry,
		Tracing:  tracing,
		Service:  service,
		Exporters: exporters.NewFactory(exporters.Options{
			BOMPrefix:  cfg.Export.BOMPrefix,
			ChartLimit: cfg.Export.ChartLimit,
		}),
	}, nil
}

// Compute runs the configured source folder through the service.
func (app *App) Compute(ctx context.Context, years standingsdomain.YearRange) (*standingsservice.ComputeResult, error) {
	return app.Service.ComputeStandings(ctx, standingsservice.ComputeRequest{
		Root:    app.Cfg.Source.Dir,
		Years:   years,
		Workers: app.Cfg.Source.Workers,
	})
}

// Export writes standings to path with the exporter its extension selects.
func (app *App) Export(path string, standings []standingsdomain.Standing) error {
	exporter, err := app.Exporters.GetExporter(path)
	if err != nil {
		return err
	}
	return exporters.WriteFile(app.Logger, path, exporter, standings)
}

// Close flushes spans and writes the metrics textfile when one is configured.
func (app *App) Close(ctx context.Context) error {
	var errs []error
	if err := app.Tracing.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush traces: %w", err))
	}
	if path := app.Cfg.Observability.MetricsFile; path != "" {
		if err := prometheus.WriteToTextfile(path, app.Registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics file: %w", err))
		}
	}
	return errors.Join(errs...)
}
