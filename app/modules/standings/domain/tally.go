package standingsdomain

// ClubScoreMap accumulates points per club for one aggregation run.
// It remembers the order in which clubs were first seen.
type ClubScoreMap struct {
	totals map[string]Points
	order  []string
}

// NewClubScoreMap returns an empty accumulator.
func NewClubScoreMap() *ClubScoreMap {
	return &ClubScoreMap{totals: make(map[string]Points)}
}

// Add increases a club's total; unseen clubs start at zero.
func (m *ClubScoreMap) Add(club string, points Points) {
	if _, seen := m.totals[club]; !seen {
		m.order = append(m.order, club)
	}
	m.totals[club] += points
}

// AddAll folds a batch of contributions into the map.
func (m *ClubScoreMap) AddAll(contributions []Contribution) {
	for _, c := range contributions {
		m.Add(c.Club, c.Points)
	}
}

// Merge adds every total of other into m, in other's first-seen order.
func (m *ClubScoreMap) Merge(other *ClubScoreMap) {
	if other == nil {
		return
	}
	for _, club := range other.order {
		m.Add(club, other.totals[club])
	}
}

// Get returns a club's total, zero when unseen.
func (m *ClubScoreMap) Get(club string) Points {
	return m.totals[club]
}

// Len is the number of distinct clubs.
func (m *ClubScoreMap) Len() int {
	return len(m.order)
}

// Clubs returns clubs in first-seen order.
func (m *ClubScoreMap) Clubs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Totals returns a copy of the club totals.
func (m *ClubScoreMap) Totals() map[string]Points {
	out := make(map[string]Points, len(m.totals))
	for club, pts := range m.totals {
		out[club] = pts
	}
	return out
}

// FileTally is what one file contributed to a run.
type FileTally struct {
	Races         int
	Contributions int
}

// Tally segments and scores one file's lines into m.
func Tally(m *ClubScoreMap, lines []string) FileTally {
	races := SegmentRaces(lines)
	contributions := ScoreRaces(races)
	m.AddAll(contributions)

	return FileTally{
		Races:         len(races),
		Contributions: len(contributions),
	}
}
