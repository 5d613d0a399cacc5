package standingsdomain

import (
	"cmp"
	"slices"
	"strconv"
)

// StandingsHeader is the header row of every exported table.
var StandingsHeader = []string{"Club Name", "Points"}

// Standing is one ranked row.
type Standing struct {
	Rank   int    `json:"rank"`
	Club   string `json:"club"`
	Points Points `json:"points"`
}

// RankStandings orders clubs by points descending.
// Equal totals keep first-seen order; tied clubs share the rank of the first of them.
func RankStandings(m *ClubScoreMap) []Standing {
	if m == nil || m.Len() == 0 {
		return []Standing{}
	}

	standings := make([]Standing, 0, m.Len())
	for _, club := range m.order {
		standings = append(standings, Standing{Club: club, Points: m.totals[club]})
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		return cmp.Compare(b.Points, a.Points)
	})

	for i := range standings {
		if i > 0 && standings[i].Points == standings[i-1].Points {
			standings[i].Rank = standings[i-1].Rank
			continue
		}
		standings[i].Rank = i + 1
	}

	return standings
}

// StandingsRows renders standings as string rows, header first.
func StandingsRows(standings []Standing) [][]string {
	rows := make([][]string, 0, len(standings)+1)
	rows = append(rows, slices.Clone(StandingsHeader))
	for _, s := range standings {
		rows = append(rows, []string{s.Club, strconv.Itoa(int(s.Points))})
	}
	return rows
}
