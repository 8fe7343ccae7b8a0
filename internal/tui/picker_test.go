package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/calpick/internal/calendar"
)

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type recorder struct {
	picked  []calendar.Date
	cancels int
}

func (r *recorder) OnDaySelected(d calendar.Date) { r.picked = append(r.picked, d) }
func (r *recorder) OnCancel()                     { r.cancels++ }

func newTestPicker(t *testing.T, years int, mutate func(*Options)) (*Picker, *recorder) {
	t.Helper()

	g, err := calendar.NewGrid(years, time.Sunday)
	require.NoError(t, err)

	rec := &recorder{}
	opts := Options{
		Grid:        g,
		Title:       "Pick a day",
		CancelLabel: "Cancel",
		Listener:    rec,
		Clock:       func() time.Time { return now },
	}
	if mutate != nil {
		mutate(&opts)
	}

	p, err := NewPicker(opts)
	require.NoError(t, err)
	return p, rec
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, p *Picker, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = p.Update(keyPress(k))
		require.Same(t, p, m)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// plainView renders p without escape codes.
func plainView(p *Picker) string {
	return ansi.Strip(p.View())
}

func date(y int, m time.Month, d int) calendar.Date {
	return calendar.Date{Year: y, Month: m, Day: d}
}

func TestNewPickerRequiresGrid(t *testing.T) {
	_, err := NewPicker(Options{})
	require.Error(t, err)
}

func TestNewPickerStartsOnToday(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)

	assert.Equal(t, date(2026, time.October, 16), p.Cursor())
	_, ok := p.Selection().Selected()
	assert.False(t, ok)

	today := calendar.DateOf(now)
	c := p.grid.CoordinateFor(p.Cursor(), today)
	assert.LessOrEqual(t, p.grid.Index(p.Top()), p.grid.Index(c))
	assert.LessOrEqual(t, p.layout.Between(p.grid, p.Top(), c, today)+p.layout.RowHeight(p.grid, c, today), p.bodyHeight())
}

func TestNewPickerStartsOnDefault(t *testing.T) {
	p, rec := newTestPicker(t, 100, func(o *Options) {
		o.Default = date(2026, time.December, 24)
	})

	assert.Equal(t, date(2026, time.December, 24), p.Cursor())
	assert.Empty(t, rec.picked)
}

func TestNewPickerIgnoresDefaultOutsideWindow(t *testing.T) {
	p, _ := newTestPicker(t, 3, func(o *Options) {
		o.Default = date(1990, time.May, 1)
	})

	assert.Equal(t, date(2026, time.October, 16), p.Cursor())
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		keys []string
		want calendar.Date
	}{
		{[]string{"l"}, date(2026, time.October, 17)},
		{[]string{"h"}, date(2026, time.October, 15)},
		{[]string{"j"}, date(2026, time.October, 23)},
		{[]string{"k"}, date(2026, time.October, 9)},
		{[]string{"]"}, date(2026, time.November, 16)},
		{[]string{"["}, date(2026, time.September, 16)},
		{[]string{"}"}, date(2027, time.October, 16)},
		{[]string{"{"}, date(2025, time.October, 16)},
		{[]string{"j", "j", "j"}, date(2026, time.November, 6)},
		{[]string{"]", "]", "]"}, date(2027, time.January, 16)},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, ""), func(t *testing.T) {
			p, _ := newTestPicker(t, 100, nil)
			press(t, p, tt.keys...)
			assert.Equal(t, tt.want, p.Cursor())
		})
	}
}

func TestCursorStaysInsideWindow(t *testing.T) {
	p, _ := newTestPicker(t, 1, func(o *Options) {
		o.Default = date(2026, time.January, 1)
	})

	press(t, p, "h", "k", "[", "{")
	assert.Equal(t, date(2026, time.January, 1), p.Cursor())

	p.goTo(date(2026, time.December, 31))
	press(t, p, "l", "j", "]", "}")
	assert.Equal(t, date(2026, time.December, 31), p.Cursor())
}

func TestSelectNotifiesAndQuits(t *testing.T) {
	p, rec := newTestPicker(t, 100, func(o *Options) { o.QuitOnSelect = true })

	cmd := press(t, p, "l", "enter")

	assert.True(t, isQuit(cmd))
	assert.Equal(t, []calendar.Date{date(2026, time.October, 17)}, rec.picked)
	got, ok := p.Selection().Selected()
	assert.True(t, ok)
	assert.Equal(t, date(2026, time.October, 17), got)
}

func TestSelectWithoutQuit(t *testing.T) {
	p, rec := newTestPicker(t, 100, nil)

	cmd := press(t, p, "enter")

	assert.Nil(t, cmd)
	assert.Len(t, rec.picked, 1)
}

func TestSelectPastDayWhenDisabled(t *testing.T) {
	p, rec := newTestPicker(t, 100, func(o *Options) {
		o.DisablePast = true
		o.QuitOnSelect = true
	})

	cmd := press(t, p, "h", "enter")

	assert.Nil(t, cmd)
	assert.Empty(t, rec.picked)
	_, ok := p.Selection().Selected()
	assert.False(t, ok)
	assert.Contains(t, plainView(p), "is in the past")

	cmd = press(t, p, "l", "enter")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, []calendar.Date{date(2026, time.October, 16)}, rec.picked)
}

func TestCancelKeepsSelectionAndQuits(t *testing.T) {
	p, rec := newTestPicker(t, 100, nil)

	press(t, p, "enter")
	cmd := press(t, p, "esc")

	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1, rec.cancels)
	got, ok := p.Selection().Selected()
	assert.True(t, ok)
	assert.Equal(t, date(2026, time.October, 16), got)
}

func TestJumpToTodayAndSelected(t *testing.T) {
	p, _ := newTestPicker(t, 100, func(o *Options) {
		o.Default = date(2026, time.December, 24)
	})

	press(t, p, "t")
	assert.Equal(t, date(2026, time.October, 16), p.Cursor())

	press(t, p, "}", "}")
	press(t, p, "s")
	assert.Equal(t, date(2026, time.December, 24), p.Cursor())
}

func TestJumpToSelectedFallsBackToToday(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)

	press(t, p, "]", "]", "s")
	assert.Equal(t, date(2026, time.October, 16), p.Cursor())
}

func TestScrollFollowsCursor(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)
	p.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	// Header (title, readout, blank), status and one help line leave 7 lines.
	require.Equal(t, 7, p.bodyHeight())
	assert.Equal(t, calendar.Coordinate{Section: 50, Row: 9}, p.Top())

	press(t, p, "]")
	assert.Equal(t, calendar.Coordinate{Section: 50, Row: 10}, p.Top())

	press(t, p, "[", "[")
	assert.Equal(t, calendar.Coordinate{Section: 50, Row: 8}, p.Top())
}

func TestViewShowsTitleAndMonths(t *testing.T) {
	p, _ := newTestPicker(t, 100, func(o *Options) { o.CancelLabel = "Dismiss" })

	view := plainView(p)
	assert.Contains(t, view, "Pick a day")
	assert.Contains(t, view, "October 2026")
	assert.Contains(t, view, "Friday, October 16, 2026")
	assert.Contains(t, view, " Sun  Mon  Tue ")
	assert.Contains(t, view, "Dismiss")
}

func TestViewHidesEmptyLabels(t *testing.T) {
	p, _ := newTestPicker(t, 100, func(o *Options) {
		o.Title = ""
		o.CancelLabel = ""
	})

	view := plainView(p)
	assert.NotContains(t, view, "Pick a day")
	assert.NotContains(t, view, "esc")
}

func TestRenderMonthHeight(t *testing.T) {
	layouts := []calendar.Layout{
		calendar.DefaultLayout,
		{HeaderHeight: 1, WeekHeight: 1},
		{HeaderHeight: 3, WeekHeight: 2},
	}
	today := calendar.DateOf(now)

	for _, l := range layouts {
		p, _ := newTestPicker(t, 3, func(o *Options) { o.Layout = l })
		for i := 0; i < p.grid.Len(); i++ {
			c := p.grid.CoordinateAt(i)
			block := p.renderMonth(c, today)
			assert.Equal(t, l.RowHeight(p.grid, c, today), strings.Count(block, "\n")+1, "%+v %s", l, c)
		}
	}
}

func TestRenderMonthWeekStart(t *testing.T) {
	g, err := calendar.NewGrid(100, time.Monday)
	require.NoError(t, err)
	p, err := NewPicker(Options{Grid: g, Clock: func() time.Time { return now }})
	require.NoError(t, err)

	today := calendar.DateOf(now)
	block := p.renderMonth(g.CoordinateFor(date(2015, time.February, 1), today), today)
	lines := strings.Split(ansi.Strip(block), "\n")

	require.Len(t, lines, 2+5)
	assert.Equal(t, "February 2015", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " Mon "))
	assert.True(t, strings.HasSuffix(lines[2], "  1"), "first week ends on Sunday the 1st: %q", lines[2])
}

func TestRefreshClearsRenderCache(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)

	p.View()
	require.NotEmpty(t, p.cache)

	press(t, p, "enter")
	assert.Empty(t, p.cache)

	p.View()
	assert.NotEmpty(t, p.cache)
	p.Selection().SetDisablePastDates(true)
	assert.Empty(t, p.cache)
}

func TestCopyReturnsCommand(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)

	assert.NotNil(t, press(t, p, "y"))
}

func TestHelpToggle(t *testing.T) {
	p, _ := newTestPicker(t, 100, nil)
	short := p.bodyHeight()

	press(t, p, "?")
	assert.True(t, p.help.ShowAll)
	assert.Less(t, p.bodyHeight(), short)
}
