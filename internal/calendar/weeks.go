package calendar

import (
	"fmt"
	"strings"
	"time"
)

// WeeksInMonth returns how many week rows are needed to show every day of
// date's month when weeks begin on weekStart. The answer is 4, 5 or 6.
func WeeksInMonth(date Date, weekStart time.Weekday) int {
	first := date.MonthStart()
	return (LeadingDays(first, weekStart) + first.DaysInMonth() + 6) / 7
}

// LeadingDays returns the number of blank cells before the first of date's
// month in a week row starting on weekStart.
func LeadingDays(date Date, weekStart time.Weekday) int {
	return (int(date.MonthStart().Weekday()) - int(weekStart) + 7) % 7
}

// WeeksInMonth returns the number of week rows for date's month using the
// grid's week start.
func (g *Grid) WeeksInMonth(date Date) int {
	return WeeksInMonth(date, g.weekStart)
}

// Weekdays returns the seven weekdays in display order beginning at start.
func Weekdays(start time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday((int(start) + i) % 7)
	}
	return days
}

// ParseWeekday accepts a full or three-letter English weekday name.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
