// Package calendar maps calendar dates onto a paged month grid.
//
// The grid is a window of years centered on "today". Each year is a section and
// each month a row within it. All mapping functions take today's date as an
// argument instead of reading a clock, so callers decide when the window moves.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Date is a day on the proleptic Gregorian calendar with no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given components, normalizing overflow
// the same way time.Date does (e.g. Feb 30 becomes Mar 1 or Mar 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// ParseMonth parses a YYYY-MM string and returns the first day of that month.
func ParseMonth(s string) (Date, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date, which stands for "no date".
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the length of d's month, accounting for leap years.
func (d Date) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months. The day is clamped to the length of
// the target month rather than overflowing into the next one.
func (d Date) AddMonths(n int) Date {
	target := NewDate(d.Year, d.Month+time.Month(n), 1)
	if days := target.DaysInMonth(); d.Day > days {
		target.Day = days
	} else {
		target.Day = d.Day
	}
	return target
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// SameMonth reports whether d and other fall in the same month of the same year.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// Format formats d using a time layout string.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
