package standingsdomain

import "strings"

// ClubFieldIndex is the zero-based column holding the club identifier.
const ClubFieldIndex = 5

// SplitResultFields splits a result line on commas without trimming.
func SplitResultFields(line string) []string {
	return strings.Split(line, ",")
}

// ExtractClub returns the trimmed club identifier of a result line.
// ok is false when the line has too few fields or the club is blank.
func ExtractClub(line string) (club string, ok bool) {
	fields := SplitResultFields(line)
	if len(fields) <= ClubFieldIndex {
		return "", false
	}
	club = strings.TrimSpace(fields[ClubFieldIndex])
	return club, club != ""
}
