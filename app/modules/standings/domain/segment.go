package standingsdomain

import "strings"

// MarkerToken is the text that opens a new race block.
const MarkerToken = "Final"

// RaceBlock is one segmented race: the marker line followed by its candidate result lines.
type RaceBlock struct {
	Marker string
	Lines  []string
}

// IsMarkerLine reports whether a line starts a new race block.
//
// The match is an unanchored substring test, so a result row that happens to
// contain "Final" in any field also opens a block.
func IsMarkerLine(line string) bool {
	return strings.Contains(line, MarkerToken)
}

// SegmentRaces splits the lines of one file into race blocks in file order.
// Lines are trimmed before use. Lines ahead of the first marker are dropped.
func SegmentRaces(lines []string) []RaceBlock {
	var (
		races   []RaceBlock
		current *RaceBlock
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if IsMarkerLine(line) {
			if current != nil {
				races = append(races, *current)
			}
			current = &RaceBlock{Marker: line}
			continue
		}

		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}

	if current != nil {
		races = append(races, *current)
	}

	return races
}
