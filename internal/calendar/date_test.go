package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)

	_, err = ParseDate("2023-02-29")
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("29/02/2024")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseMonth(t *testing.T) {
	d, err := ParseMonth("2026-10")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.October, Day: 1}, d)

	_, err = ParseMonth("2026-13")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{Date{2024, time.February, 10}, 29},
		{Date{2023, time.February, 10}, 28},
		{Date{1900, time.February, 1}, 28},
		{Date{2000, time.February, 1}, 29},
		{Date{2026, time.April, 30}, 30},
		{Date{2026, time.December, 31}, 31},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.DaysInMonth())
		})
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	jan31 := Date{2024, time.January, 31}

	assert.Equal(t, Date{2024, time.February, 29}, jan31.AddMonths(1))
	assert.Equal(t, Date{2023, time.December, 31}, jan31.AddMonths(-1))
	assert.Equal(t, Date{2025, time.January, 31}, jan31.AddMonths(12))
}

func TestAddDaysCrossesYear(t *testing.T) {
	assert.Equal(t, Date{2027, time.January, 1}, Date{2026, time.December, 31}.AddDays(1))
	assert.Equal(t, Date{2026, time.December, 25}, Date{2027, time.January, 1}.AddDays(-7))
}

func TestBefore(t *testing.T) {
	d := Date{2026, time.October, 16}

	assert.True(t, Date{2025, time.December, 31}.Before(d))
	assert.True(t, Date{2026, time.September, 30}.Before(d))
	assert.True(t, Date{2026, time.October, 15}.Before(d))
	assert.False(t, d.Before(d))
	assert.False(t, Date{2026, time.October, 17}.Before(d))
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	instant := time.Date(2026, time.October, 16, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, Date{2026, time.October, 17}, DateOf(instant.In(loc)))
	assert.Equal(t, Date{2026, time.October, 16}, DateOf(instant))
}

func TestNewDateNormalizes(t *testing.T) {
	assert.Equal(t, Date{2023, time.March, 2}, NewDate(2023, time.February, 30))
	assert.Equal(t, Date{2025, time.December, 1}, NewDate(2026, 0, 1))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "0987-03-05", Date{987, time.March, 5}.String())
	assert.True(t, Date{}.IsZero())
}
