package standingsservice

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/sources"
)

// ------------------------
// Fake File Source
// ------------------------

type FakeFileSource struct {
	mu    sync.Mutex
	trace []string

	Files map[string]string

	EnumerateFunc func(ctx context.Context, root string, years standingsdomain.YearRange) (*sources.Enumeration, error)
}

func NewFakeFileSource(files map[string]string) *FakeFileSource {
	return &FakeFileSource{
		trace: []string{},
		Files: files,
	}
}

func (f *FakeFileSource) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeFileSource) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeFileSource) Enumerate(ctx context.Context, root string, years standingsdomain.YearRange) (*sources.Enumeration, error) {
	f.record("Enumerate")
	if f.EnumerateFunc != nil {
		return f.EnumerateFunc(ctx, root, years)
	}
	return &sources.Enumeration{}, nil
}

func (f *FakeFileSource) ReadFile(path string) ([]byte, error) {
	f.record("ReadFile " + path)
	content, ok := f.Files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", path, os.ErrNotExist)
	}
	return []byte(content), nil
}

// ------------------------
// Fake Metrics
// ------------------------

type FakeMetrics struct {
	mu sync.Mutex

	Attempts      map[string]int
	Successes     map[string]int
	Failures      map[string]int
	FilesScored   int
	FilesSkipped  map[string]int
	Races         int
	Contributions int
	Clubs         int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		Attempts:     map[string]int{},
		Successes:    map[string]int{},
		Failures:     map[string]int{},
		FilesSkipped: map[string]int{},
	}
}

func (m *FakeMetrics) RecordOperationAttempt(_ context.Context, operation, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts[operation]++
}

func (m *FakeMetrics) RecordOperationSuccess(_ context.Context, operation, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes[operation]++
}

func (m *FakeMetrics) RecordOperationFailure(_ context.Context, operation, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[operation]++
}

func (m *FakeMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

func (m *FakeMetrics) RecordFileScored(_ context.Context, races, contributions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilesScored++
	m.Races += races
	m.Contributions += contributions
}

func (m *FakeMetrics) RecordFileSkipped(_ context.Context, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilesSkipped[reason]++
}

func (m *FakeMetrics) RecordStandingsSize(_ context.Context, clubs int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clubs = clubs
}
