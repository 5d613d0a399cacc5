package standingsdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestYearRangeIncludes(t *testing.T) {
	between := NewYearRange(intPtr(2016), intPtr(2018))

	tests := []struct {
		name   string
		r      YearRange
		folder string
		want   bool
	}{
		{name: "inside range", r: between, folder: "2017 WakaNats", want: true},
		{name: "below range", r: between, folder: "2015 Champs", want: false},
		{name: "lower bound is inclusive", r: between, folder: "WakaNats2016", want: true},
		{name: "upper bound is inclusive", r: between, folder: "Nats-2018", want: true},
		{name: "no digits", r: between, folder: "NoYearHere", want: false},
		{name: "no digits with min only", r: NewYearRange(intPtr(2000), nil), folder: "NoYearHere", want: false},
		{name: "no digits with max only", r: NewYearRange(nil, intPtr(3000)), folder: "NoYearHere", want: false},
		{name: "unbounded includes everything", r: YearRange{}, folder: "NoYearHere", want: true},
		{name: "digits are concatenated", r: between, folder: "Day 2 2017", want: false},
		{name: "min only", r: NewYearRange(intPtr(2016), nil), folder: "2030 Sprints", want: true},
		{name: "max only", r: NewYearRange(nil, intPtr(2016)), folder: "2017 Sprints", want: false},
		{name: "overflowing digits are excluded", r: NewYearRange(intPtr(0), nil), folder: "99999999999999999999999", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Includes(tt.folder))
		})
	}
}

func TestExtractYear(t *testing.T) {
	year, ok := ExtractYear("WakaNats 2017")
	require.True(t, ok)
	assert.Equal(t, 2017, year)

	year, ok = ExtractYear("v2-2019")
	require.True(t, ok)
	assert.Equal(t, 22019, year)

	_, ok = ExtractYear("")
	assert.False(t, ok)
}

func TestYearRangeValidate(t *testing.T) {
	assert.NoError(t, YearRange{}.Validate())
	assert.NoError(t, NewYearRange(intPtr(2016), intPtr(2016)).Validate())
	assert.ErrorIs(t, NewYearRange(intPtr(2019), intPtr(2016)).Validate(), ErrInvalidYearRange)
	assert.ErrorIs(t, NewYearRange(intPtr(-1), nil).Validate(), ErrInvalidYearRange)
	assert.ErrorIs(t, NewYearRange(nil, intPtr(-5)).Validate(), ErrInvalidYearRange)
}

func TestYearRangeString(t *testing.T) {
	assert.Equal(t, "*..*", YearRange{}.String())
	assert.Equal(t, "2016..*", NewYearRange(intPtr(2016), nil).String())
	assert.Equal(t, "2016..2018", NewYearRange(intPtr(2016), intPtr(2018)).String())
}
