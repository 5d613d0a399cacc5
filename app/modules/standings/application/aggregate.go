package standingsservice

import (
	"context"
	"fmt"
	"log/slog"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/sources"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// fileOutcome is what scoring one file produced.
type fileOutcome struct {
	file    sources.SourceFile
	scores  *standingsdomain.ClubScoreMap
	tally   standingsdomain.FileTally
	warning *Warning
}

// scoreFiles folds every file into one ClubScoreMap and ranks it.
func (s *StandingsService) scoreFiles(ctx context.Context, files []sources.SourceFile, workers int) (*ComputeResult, error) {
	runID := uuid.NewString()
	logger := s.logger.With(slog.String("run_id", runID))

	result := &ComputeResult{
		RunID:  runID,
		Scores: standingsdomain.NewClubScoreMap(),
	}

	var err error
	if workers > 1 {
		err = s.scoreConcurrently(ctx, logger, files, workers, result)
	} else {
		err = s.scoreSequentially(ctx, logger, files, result)
	}
	if err != nil {
		return nil, err
	}

	if result.Summary.Races == 0 {
		result.Warnings = append(result.Warnings, Warning{
			Kind:    WarningEmptyResultSet,
			Message: "no races found in any eligible file",
		})
		logger.WarnContext(ctx, "No races found across eligible files", slog.Int("files", len(files)))
	}

	result.Standings = standingsdomain.RankStandings(result.Scores)
	result.Summary.Clubs = len(result.Standings)
	s.metrics.RecordStandingsSize(ctx, result.Summary.Clubs)

	logger.InfoContext(ctx, "Standings computed",
		slog.Int("files_scored", result.Summary.FilesScored),
		slog.Int("files_skipped", result.Summary.FilesSkipped),
		slog.Int("races", result.Summary.Races),
		slog.Int("clubs", result.Summary.Clubs),
	)
	return result, nil
}

// scoreSequentially adds each file straight into the shared map.
func (s *StandingsService) scoreSequentially(ctx context.Context, logger *slog.Logger, files []sources.SourceFile, result *ComputeResult) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.record(ctx, logger, result, s.scoreFile(file, result.Scores))
	}
	return nil
}

// scoreConcurrently scores files into per-file maps, then merges them in
// enumeration order so first-seen ordering matches the sequential path.
func (s *StandingsService) scoreConcurrently(ctx context.Context, logger *slog.Logger, files []sources.SourceFile, workers int, result *ComputeResult) error {
	outcomes := make([]fileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.scoreFile(file, standingsdomain.NewClubScoreMap())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("scoring interrupted: %w", err)
	}

	for _, outcome := range outcomes {
		result.Scores.Merge(outcome.scores)
		s.record(ctx, logger, result, outcome)
	}
	return nil
}

// scoreFile reads one file and tallies it into into.
func (s *StandingsService) scoreFile(file sources.SourceFile, into *standingsdomain.ClubScoreMap) fileOutcome {
	outcome := fileOutcome{file: file, scores: into}

	lines, err := s.loadLines(file.Path)
	if err != nil {
		outcome.scores = nil
		outcome.warning = &Warning{
			Kind:    WarningMissingFile,
			Path:    file.Path,
			Message: err.Error(),
		}
		return outcome
	}

	outcome.tally = standingsdomain.Tally(into, lines)
	if outcome.tally.Races == 0 {
		outcome.warning = &Warning{
			Kind:    WarningNoRaces,
			Path:    file.Path,
			Message: "no races found in this file",
		}
	}
	return outcome
}

// record updates the summary, warnings, logs and metrics for one outcome.
func (s *StandingsService) record(ctx context.Context, logger *slog.Logger, result *ComputeResult, outcome fileOutcome) {
	if outcome.warning != nil {
		result.Warnings = append(result.Warnings, *outcome.warning)
	}

	if outcome.warning != nil && outcome.warning.Kind == WarningMissingFile {
		result.Summary.FilesSkipped++
		s.metrics.RecordFileSkipped(ctx, string(WarningMissingFile))
		logger.WarnContext(ctx, "Skipping unreadable file",
			slog.String("path", outcome.file.Path),
			slog.String("reason", outcome.warning.Message),
		)
		return
	}

	result.Summary.FilesScored++
	result.Summary.Races += outcome.tally.Races
	result.Summary.Contributions += outcome.tally.Contributions
	s.metrics.RecordFileScored(ctx, outcome.tally.Races, outcome.tally.Contributions)

	logger.DebugContext(ctx, "File scored",
		slog.String("path", outcome.file.Path),
		slog.String("folder", outcome.file.Folder),
		slog.Int("races", outcome.tally.Races),
		slog.Int("contributions", outcome.tally.Contributions),
	)
	if outcome.tally.Races == 0 {
		logger.InfoContext(ctx, "No races found in file", slog.String("path", outcome.file.Path))
	}
}
