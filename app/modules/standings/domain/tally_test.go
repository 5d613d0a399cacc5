package standingsdomain

import (
	"slices"
	"testing"

	"github.com/Black-And-White-Club/lif-standings/internal/testutils"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubScoreMap(t *testing.T) {
	m := NewClubScoreMap()
	m.Add("B", 7)
	m.Add("A", 10)
	m.Add("B", 3)

	assert.Equal(t, Points(10), m.Get("B"))
	assert.Equal(t, Points(10), m.Get("A"))
	assert.Equal(t, Points(0), m.Get("unseen"))
	assert.Equal(t, []string{"B", "A"}, m.Clubs())
	assert.Equal(t, 2, m.Len())

	other := NewClubScoreMap()
	other.Add("C", 1)
	other.Add("A", 5)
	m.Merge(other)
	m.Merge(nil)

	assert.Equal(t, map[string]Points{"A": 15, "B": 10, "C": 1}, m.Totals())
	assert.Equal(t, []string{"B", "A", "C"}, m.Clubs())
}

func TestTally(t *testing.T) {
	m := NewClubScoreMap()
	lines := []string{
		"preamble",
		"045-Champ Final-01",
		"1,1,1,Smith,Ann,A",
		"2,2,2,Smith,Bo,B",
		"3,3,3,Smith,Cy,",
		"4,4,4,Smith,Di,C",
		"5,5,5,Smith,Ed,D",
		"046-Open Final-01",
		"047-Open Final-02",
		"1,1,1,Smith,Fi,D",
		"2,2,2,short",
	}

	got := Tally(m, lines)

	assert.Equal(t, FileTally{Races: 3, Contributions: 5}, got)
	assert.Equal(t, map[string]Points{"A": 10, "B": 7, "C": 3, "D": 11}, m.Totals())
}

func TestTallyIsOrderIndependent(t *testing.T) {
	gen := testutils.NewLIFGenerator(42)
	pool := gen.Clubs(12)

	files := make([][]string, 20)
	for i := range files {
		files[i] = gen.RandomFile(6, pool)
	}

	forward := NewClubScoreMap()
	for _, f := range files {
		Tally(forward, f)
	}

	reversed := NewClubScoreMap()
	for _, f := range slices.Backward(files) {
		Tally(reversed, f)
	}

	merged := NewClubScoreMap()
	for _, f := range files {
		local := NewClubScoreMap()
		Tally(local, f)
		merged.Merge(local)
	}

	require.Positive(t, forward.Len(), "seed %d produced no scores", gen.Seed())
	if diff := cmp.Diff(forward.Totals(), reversed.Totals()); diff != "" {
		t.Fatalf("reversed order changed totals (-forward +reversed):\n%s", diff)
	}
	if diff := cmp.Diff(forward.Totals(), merged.Totals()); diff != "" {
		t.Fatalf("per-file merge changed totals (-forward +merged):\n%s", diff)
	}
	assert.Equal(t, forward.Clubs(), merged.Clubs())
}

func TestTallyMatchesPerBlockSum(t *testing.T) {
	gen := testutils.NewLIFGenerator(7)
	pool := gen.Clubs(5)
	lines := gen.RandomFile(10, pool)

	want := map[string]Points{}
	for _, race := range SegmentRaces(lines) {
		for i, line := range race.Lines {
			if i >= len(PointsTable) {
				break
			}
			if club, ok := ExtractClub(line); ok {
				want[club] += PointsTable[i]
			}
		}
	}

	m := NewClubScoreMap()
	Tally(m, lines)
	assert.Equal(t, want, m.Totals())
}
