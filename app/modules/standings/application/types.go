package standingsservice

import (
	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
)

// ComputeRequest selects the files of one standings run.
type ComputeRequest struct {
	Root    string
	Years   standingsdomain.YearRange
	Workers int // files scored concurrently; values below 2 score sequentially
}

// WarningKind classifies a recoverable notice raised during a run.
type WarningKind string

const (
	// WarningMissingFile means a file could not be opened or decoded and was skipped.
	WarningMissingFile WarningKind = "missing_file"
	// WarningNoRaces means a file was read but held no race blocks.
	WarningNoRaces WarningKind = "no_races"
	// WarningEmptyResultSet means no race blocks were found in any eligible file.
	WarningEmptyResultSet WarningKind = "empty_result_set"
)

// Warning is a recoverable notice for the caller.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Path    string      `json:"path,omitempty"`
	Message string      `json:"message"`
}

// Summary counts what a run touched.
type Summary struct {
	FilesScored     int      `json:"files_scored"`
	FilesSkipped    int      `json:"files_skipped"`
	Races           int      `json:"races"`
	Contributions   int      `json:"contributions"`
	Clubs           int      `json:"clubs"`
	FoldersIncluded []string `json:"folders_included,omitempty"`
	FoldersExcluded []string `json:"folders_excluded,omitempty"`
}

// ComputeResult is the outcome of one standings run.
type ComputeResult struct {
	RunID     string                        `json:"run_id"`
	Scores    *standingsdomain.ClubScoreMap `json:"-"`
	Standings []standingsdomain.Standing    `json:"standings"`
	Warnings  []Warning                     `json:"warnings,omitempty"`
	Summary   Summary                       `json:"summary"`
}

// HasWarning reports whether a warning of kind was raised.
func (r *ComputeResult) HasWarning(kind WarningKind) bool {
	for _, w := range r.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// FileInspection is the segmented view of a single file.
type FileInspection struct {
	Path          string
	TotalLines    int
	Races         []standingsdomain.RaceBlock
	Contributions []standingsdomain.Contribution
}
