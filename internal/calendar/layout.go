package calendar

// Layout sizes grid rows. A month occupies a header followed by one band per
// displayed week, so months needing six weeks are taller than those needing four.
type Layout struct {
	HeaderHeight int
	WeekHeight   int
}

// DefaultLayout is one line for the month title, one for the weekday names and
// one per week.
var DefaultLayout = Layout{HeaderHeight: 2, WeekHeight: 1}

// MonthHeight returns the height of date's month.
func (l Layout) MonthHeight(g *Grid, date Date) int {
	return l.HeaderHeight + g.WeeksInMonth(date)*l.WeekHeight
}

// RowHeight returns the height of the month at c.
func (l Layout) RowHeight(g *Grid, c Coordinate, today Date) int {
	return l.MonthHeight(g, g.DateAt(c, today))
}

// Between returns the combined height of the months in [from, to). It is zero
// when to does not come after from.
func (l Layout) Between(g *Grid, from, to Coordinate, today Date) int {
	h := 0
	for i := g.Index(from); i < g.Index(to); i++ {
		h += l.RowHeight(g, g.CoordinateAt(i), today)
	}
	return h
}

// Offset returns the distance from the top of the grid to the top of c.
func (l Layout) Offset(g *Grid, c Coordinate, today Date) int {
	return l.Between(g, Coordinate{}, c, today)
}

// Height returns the height of the whole window.
func (l Layout) Height(g *Grid, today Date) int {
	return l.Between(g, Coordinate{}, g.CoordinateAt(g.Len()), today)
}
