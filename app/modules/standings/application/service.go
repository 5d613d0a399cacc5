package standingsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	standingsmetrics "github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/metrics"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/parsers"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/sources"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "StandingsService"

// Service computes club standings from LIF result files.
type Service interface {
	ComputeStandings(ctx context.Context, req ComputeRequest) (*ComputeResult, error)
	ScoreFiles(ctx context.Context, files []sources.SourceFile, workers int) (*ComputeResult, error)
	InspectFile(ctx context.Context, path string) (*FileInspection, error)
}

// FileSource enumerates and reads result files.
type FileSource interface {
	Enumerate(ctx context.Context, root string, years standingsdomain.YearRange) (*sources.Enumeration, error)
	ReadFile(path string) ([]byte, error)
}

// StandingsService implements the Service interface.
type StandingsService struct {
	source  FileSource
	parsers parsers.ParserFactory
	logger  *slog.Logger
	metrics standingsmetrics.StandingsMetrics
	tracer  trace.Tracer
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	source FileSource,
	parserFactory parsers.ParserFactory,
	logger *slog.Logger,
	metrics standingsmetrics.StandingsMetrics,
	tracer trace.Tracer,
) *StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = standingsmetrics.NewNoop()
	}
	return &StandingsService{
		source:  source,
		parsers: parserFactory,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// ComputeStandings enumerates the eligible files under req.Root and scores them.
func (s *StandingsService) ComputeStandings(ctx context.Context, req ComputeRequest) (*ComputeResult, error) {
	return withTelemetry(s, ctx, "ComputeStandings", req.Root, func(ctx context.Context) (*ComputeResult, error) {
		if err := req.Years.Validate(); err != nil {
			return nil, err
		}

		enumeration, err := s.source.Enumerate(ctx, req.Root, req.Years)
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate %s: %w", req.Root, err)
		}

		s.logger.InfoContext(ctx, "Source enumerated",
			slog.String("root", req.Root),
			slog.String("years", req.Years.String()),
			slog.Int("files", len(enumeration.Files)),
			slog.Int("folders_included", len(enumeration.Included)),
			slog.Int("folders_excluded", len(enumeration.Excluded)),
		)

		result, err := s.scoreFiles(ctx, enumeration.Files, req.Workers)
		if err != nil {
			return nil, err
		}
		result.Summary.FoldersIncluded = enumeration.Included
		result.Summary.FoldersExcluded = enumeration.Excluded
		return result, nil
	})
}

// ScoreFiles scores an already enumerated file set.
func (s *StandingsService) ScoreFiles(ctx context.Context, files []sources.SourceFile, workers int) (*ComputeResult, error) {
	return withTelemetry(s, ctx, "ScoreFiles", fmt.Sprintf("%d files", len(files)), func(ctx context.Context) (*ComputeResult, error) {
		return s.scoreFiles(ctx, files, workers)
	})
}

// InspectFile segments and scores a single file without aggregating it.
func (s *StandingsService) InspectFile(ctx context.Context, path string) (*FileInspection, error) {
	return withTelemetry(s, ctx, "InspectFile", path, func(ctx context.Context) (*FileInspection, error) {
		lines, err := s.loadLines(path)
		if err != nil {
			return nil, err
		}

		races := standingsdomain.SegmentRaces(lines)
		return &FileInspection{
			Path:          path,
			TotalLines:    len(lines),
			Races:         races,
			Contributions: standingsdomain.ScoreRaces(races),
		}, nil
	})
}

// loadLines reads and decodes one file.
func (s *StandingsService) loadLines(path string) ([]string, error) {
	parser, err := s.parsers.GetParser(path)
	if err != nil {
		return nil, err
	}
	data, err := s.source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return parsed.Lines, nil
}

// -----------------------------------------------------------------------------
// Generic Helpers (Defined as functions because methods cannot have type params)
// -----------------------------------------------------------------------------

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *StandingsService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operationFunc[T],
) (result T, err error) {

	// Start span
	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, "Operation triggered",
		slog.String("operation", operationName),
		slog.String("identifier", identifier),
	)

	// Panic recovery
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	s.logger.DebugContext(ctx, "Operation completed successfully",
		slog.String("operation", operationName),
		slog.String("identifier", identifier),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)

	return result, nil
}
