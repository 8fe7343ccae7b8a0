package calendar

import (
	"errors"
	"fmt"
	"time"
)

// MonthsPerYear is the number of rows in every section of the grid.
const MonthsPerYear = 12

// ErrInvalidWindow is returned when a grid is built with a non-positive year count.
var ErrInvalidWindow = errors.New("year window must contain at least one year")

// Coordinate addresses one month in the grid. Section is the zero-based year
// offset into the window and Row the zero-based month (0 = January).
type Coordinate struct {
	Section int
	Row     int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("section=%d row=%d", c.Section, c.Row)
}

// Grid is a fixed-size window of years centered on today's year.
type Grid struct {
	years     int
	weekStart time.Weekday
}

// NewGrid returns a grid spanning years sections whose week rows begin on weekStart.
func NewGrid(years int, weekStart time.Weekday) (*Grid, error) {
	if years < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, years)
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return nil, fmt.Errorf("invalid week start %d", weekStart)
	}
	return &Grid{years: years, weekStart: weekStart}, nil
}

// Sections returns the number of years in the window.
func (g *Grid) Sections() int { return g.years }

// WeekStart returns the first day of each week row.
func (g *Grid) WeekStart() time.Weekday { return g.weekStart }

// Center returns the section today's year maps to.
func (g *Grid) Center() int { return g.years / 2 }

// CoordinateFor returns the grid position of date's month. The result is not
// range checked: a year outside the window yields a section below zero or at
// or beyond Sections, and callers use Contains before displaying it.
func (g *Grid) CoordinateFor(date, today Date) Coordinate {
	return Coordinate{
		Section: g.Center() - (today.Year - date.Year),
		Row:     int(date.Month) - 1,
	}
}

// DateAt returns the first day of the month at c.
func (g *Grid) DateAt(c Coordinate, today Date) Date {
	return Date{
		Year:  today.Year + c.Section - g.Center(),
		Month: time.Month(c.Row + 1),
		Day:   1,
	}
}

// Contains reports whether c addresses a month inside the window.
func (g *Grid) Contains(c Coordinate) bool {
	return c.Section >= 0 && c.Section < g.years && c.Row >= 0 && c.Row < MonthsPerYear
}

// ContainsDate reports whether date's month lies inside the window.
func (g *Grid) ContainsDate(date, today Date) bool {
	return g.Contains(g.CoordinateFor(date, today))
}

// YearRange returns the first and last year addressable from today.
func (g *Grid) YearRange(today Date) (first, last int) {
	first = today.Year - g.Center()
	return first, first + g.years - 1
}

// Len returns the total number of months in the window.
func (g *Grid) Len() int { return g.years * MonthsPerYear }

// Index flattens c into a linear month index counted from the first month
// of the window.
func (g *Grid) Index(c Coordinate) int {
	return c.Section*MonthsPerYear + c.Row
}

// CoordinateAt is the inverse of Index for non-negative indexes.
func (g *Grid) CoordinateAt(index int) Coordinate {
	return Coordinate{Section: index / MonthsPerYear, Row: index % MonthsPerYear}
}

// Step moves c by n months, clamping the result to the window.
func (g *Grid) Step(c Coordinate, n int) Coordinate {
	i := g.Index(c) + n
	if i < 0 {
		i = 0
	}
	if last := g.Len() - 1; i > last {
		i = last
	}
	return g.CoordinateAt(i)
}
