package standingsdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func resultLine(club string) string {
	return "1,101,1,Smith,Ann," + club + ",2:10.5"
}

func TestScoreRace(t *testing.T) {
	t.Run("blank club consumes its place", func(t *testing.T) {
		race := RaceBlock{
			Marker: "045-Champ Final-01",
			Lines: []string{
				resultLine("A"),
				resultLine("B"),
				resultLine(""),
				resultLine("C"),
				resultLine("D"),
			},
		}

		want := []Contribution{
			{Club: "A", Points: 10, Place: 1},
			{Club: "B", Points: 7, Place: 2},
			{Club: "C", Points: 3, Place: 4},
			{Club: "D", Points: 1, Place: 5},
		}
		if diff := cmp.Diff(want, ScoreRace(race)); diff != "" {
			t.Fatalf("ScoreRace() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("only the first five places score", func(t *testing.T) {
		race := RaceBlock{Marker: "m Final"}
		for _, club := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			race.Lines = append(race.Lines, resultLine(club))
		}

		got := ScoreRace(race)
		assert.Len(t, got, ScoredPlaces)
		assert.Equal(t, "E", got[4].Club)
		assert.Equal(t, Points(1), got[4].Points)
	})

	t.Run("marker only block scores nothing", func(t *testing.T) {
		assert.Empty(t, ScoreRace(RaceBlock{Marker: "001-Open Final-01"}))
	})

	t.Run("five field lines score nothing", func(t *testing.T) {
		race := RaceBlock{Marker: "m Final", Lines: []string{"1,2,3,4,A", "1,2,3,4,B"}}
		assert.Empty(t, ScoreRace(race))
	})
}

func TestPointsTable(t *testing.T) {
	assert.Equal(t, [...]Points{10, 7, 5, 3, 1}, PointsTable)
	assert.Equal(t, 5, ScoredPlaces)
}
