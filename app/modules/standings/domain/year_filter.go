package standingsdomain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidYearRange is returned when a year range cannot be satisfied.
var ErrInvalidYearRange = errors.New("invalid year range")

// YearRange is an optional inclusive bound on folder years.
// A nil bound leaves that side open.
type YearRange struct {
	Min *int `yaml:"min_year" json:"min_year,omitempty"`
	Max *int `yaml:"max_year" json:"max_year,omitempty"`
}

// NewYearRange builds a range from optional bounds.
func NewYearRange(minYear, maxYear *int) YearRange {
	return YearRange{Min: minYear, Max: maxYear}
}

// Unbounded reports whether neither bound is set.
func (r YearRange) Unbounded() bool {
	return r.Min == nil && r.Max == nil
}

// Validate rejects negative bounds and a minimum above the maximum.
func (r YearRange) Validate() error {
	if r.Min != nil && *r.Min < 0 {
		return fmt.Errorf("%w: min_year %d is negative", ErrInvalidYearRange, *r.Min)
	}
	if r.Max != nil && *r.Max < 0 {
		return fmt.Errorf("%w: max_year %d is negative", ErrInvalidYearRange, *r.Max)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: min_year %d is after max_year %d", ErrInvalidYearRange, *r.Min, *r.Max)
	}
	return nil
}

// Includes decides whether a folder's files should be scored.
// Folders whose name does not reduce to a year are excluded whenever a bound is set.
func (r YearRange) Includes(folderName string) bool {
	if r.Unbounded() {
		return true
	}

	year, ok := ExtractYear(folderName)
	if !ok {
		return false
	}
	if r.Min != nil && year < *r.Min {
		return false
	}
	if r.Max != nil && year > *r.Max {
		return false
	}
	return true
}

// String renders the range for logs, e.g. "2016..2018" or "*..2018".
func (r YearRange) String() string {
	bound := func(v *int) string {
		if v == nil {
			return "*"
		}
		return strconv.Itoa(*v)
	}
	return bound(r.Min) + ".." + bound(r.Max)
}

// ExtractYear concatenates every digit in name, in order, and parses the result.
// "2017 WakaNats" gives 2017; "Day 2 2017" gives 22017.
func ExtractYear(name string) (int, bool) {
	var digits strings.Builder
	for _, r := range name {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	year, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return year, true
}
