package standingsdomain

// Points uses a custom type so point totals never mix with other integers.
type Points int

// PointsTable maps finishing offset (0 = first place) to points.
var PointsTable = [...]Points{10, 7, 5, 3, 1}

// ScoredPlaces is the number of finishers per race that earn points.
const ScoredPlaces = len(PointsTable)

// Contribution is the points one club earns from one finishing position.
type Contribution struct {
	Club   string
	Points Points
	Place  int // 1-based finishing place
}

// ScoreRace converts the first five result lines of a race into contributions.
//
// A line without a club still consumes its place, so the clubs after it keep
// the points of their own offset.
func ScoreRace(race RaceBlock) []Contribution {
	var contributions []Contribution

	for i, line := range race.Lines {
		if i >= ScoredPlaces {
			break
		}
		club, ok := ExtractClub(line)
		if !ok {
			continue
		}
		contributions = append(contributions, Contribution{
			Club:   club,
			Points: PointsTable[i],
			Place:  i + 1,
		})
	}

	return contributions
}

// ScoreRaces scores every race in order.
func ScoreRaces(races []RaceBlock) []Contribution {
	var contributions []Contribution
	for _, race := range races {
		contributions = append(contributions, ScoreRace(race)...)
	}
	return contributions
}
