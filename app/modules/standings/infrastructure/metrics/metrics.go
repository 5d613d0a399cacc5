package standingsmetrics

import (
	"context"
	"time"
)

// StandingsMetrics records what a standings run did.
type StandingsMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)

	RecordFileScored(ctx context.Context, races, contributions int)
	RecordFileSkipped(ctx context.Context, reason string)
	RecordStandingsSize(ctx context.Context, clubs int)
}

type noop struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() StandingsMetrics {
	return noop{}
}

func (noop) RecordOperationAttempt(context.Context, string, string) {}
func (noop) RecordOperationSuccess(context.Context, string, string) {}
func (noop) RecordOperationFailure(context.Context, string, string) {}
func (noop) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (noop) RecordFileScored(context.Context, int, int) {}
func (noop) RecordFileSkipped(context.Context, string) {}
func (noop) RecordStandingsSize(context.Context, int) {}
