package sources

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/parsers"
)

// MaxTraversalDepth is how many levels of subfolders below the root are scanned.
const MaxTraversalDepth = 1

// SourceFile is one result file selected for scoring.
type SourceFile struct {
	Path   string
	Folder string // base name of the containing folder
	Depth  int    // 0 for files directly in the root
}

// Enumeration is the outcome of scanning a source tree.
type Enumeration struct {
	Files    []SourceFile
	Included []string // folders whose files were taken
	Excluded []string // folders rejected by the year filter
}

// DirectorySource enumerates .lif files on the local filesystem.
type DirectorySource struct {
	maxDepth int
	logger   *slog.Logger
}

// NewDirectorySource creates a source scanning maxDepth levels of subfolders.
// A negative depth falls back to MaxTraversalDepth.
func NewDirectorySource(maxDepth int, logger *slog.Logger) *DirectorySource {
	if maxDepth < 0 {
		maxDepth = MaxTraversalDepth
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectorySource{maxDepth: maxDepth, logger: logger}
}

type pendingDir struct {
	path  string
	depth int
}

// Enumerate lists the files under root whose folders pass years.
// The root's own files count only when the root's base name passes the filter.
// Subfolders are visited breadth first, each in directory order; an excluded
// subfolder is not descended into. A relative root is resolved first so its
// real base name is filtered.
func (s *DirectorySource) Enumerate(ctx context.Context, root string, years standingsdomain.YearRange) (*Enumeration, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source folder: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open source folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory", root)
	}

	result := &Enumeration{}
	queue := []pendingDir{{path: filepath.Clean(root), depth: 0}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			if dir.depth == 0 {
				return nil, fmt.Errorf("failed to read source folder %s: %w", dir.path, err)
			}
			s.logger.WarnContext(ctx, "Skipping unreadable folder",
				slog.String("folder", dir.path),
				slog.Any("error", err),
			)
			continue
		}

		name := filepath.Base(dir.path)
		included := years.Includes(name)
		if included {
			result.Included = append(result.Included, name)
			for _, entry := range entries {
				if entry.IsDir() || !parsers.IsLIFFile(entry.Name()) {
					continue
				}
				result.Files = append(result.Files, SourceFile{
					Path:   filepath.Join(dir.path, entry.Name()),
					Folder: name,
					Depth:  dir.depth,
				})
			}
		} else {
			result.Excluded = append(result.Excluded, name)
			s.logger.DebugContext(ctx, "Folder excluded by year filter",
				slog.String("folder", name),
				slog.String("years", years.String()),
			)
		}

		// Only the root is descended into when excluded.
		if dir.depth >= s.maxDepth || (!included && dir.depth > 0) {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				queue = append(queue, pendingDir{path: filepath.Join(dir.path, entry.Name()), depth: dir.depth + 1})
			}
		}
	}

	return result, nil
}

// ReadFile returns the raw content of a source file.
func (s *DirectorySource) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
