package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/tui/styles"
)

// View implements tea.Model.
func (p *Picker) View() string {
	today := p.today()

	lines := p.headerLines(today)
	lines = append(lines, p.bodyLines(today, p.bodyHeight())...)
	lines = append(lines, p.statusLine(), p.help.View(p.keys))
	return strings.Join(lines, "\n")
}

func (p *Picker) headerLines(today calendar.Date) []string {
	var lines []string
	if p.title != "" {
		lines = append(lines, styles.Title.Render(p.truncate(p.title)))
	}

	// Month of the first visible row, followed by the day under the cursor.
	showing := p.grid.DateAt(p.top, today).Format("January 2006")
	readout := fmt.Sprintf("%s │ %s", showing, p.cursor.Format("Monday, January 2, 2006"))
	if d, ok := p.sel.Selected(); ok {
		readout += " │ picked " + d.String()
	}
	lines = append(lines, styles.Subtitle.Render(p.truncate(readout)), "")
	return lines
}

func (p *Picker) statusLine() string {
	switch {
	case p.status.err != nil:
		return styles.StatusError.Render(p.truncate(p.status.err.Error()))
	case p.status.msg != "":
		return styles.StatusSuccess.Render(p.truncate(p.status.msg))
	}
	return ""
}

// bodyHeight is the number of lines left for months after the header,
// status line and help.
func (p *Picker) bodyHeight() int {
	used := 2 + 1 + lipgloss.Height(p.help.View(p.keys))
	if p.title != "" {
		used++
	}
	if h := p.height - used; h > 0 {
		return h
	}
	return 1
}

// bodyLines renders months from the top coordinate until height is filled or
// the window ends.
func (p *Picker) bodyLines(today calendar.Date, height int) []string {
	if p.cacheDay != today {
		p.invalidate()
		p.cacheDay = today
	}

	lines := make([]string, 0, height)
	cursor := p.cursorCoordinate()
	for c := p.top; len(lines) < height; c = p.grid.Step(c, 1) {
		block, ok := p.cache[c]
		if !ok || c == cursor {
			block = p.renderMonth(c, today)
			if c != cursor {
				p.cache[c] = block
			}
		}
		lines = append(lines, strings.Split(block, "\n")...)
		if p.grid.Index(c) == p.grid.Len()-1 {
			break
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// renderMonth draws the month at c using exactly Layout.RowHeight lines.
func (p *Picker) renderMonth(c calendar.Coordinate, today calendar.Date) string {
	first := p.grid.DateAt(c, today)
	weekStart := p.grid.WeekStart()

	lines := make([]string, 0, p.layout.RowHeight(p.grid, c, today))
	lines = append(lines, styles.CalendarHeader.Render(first.Format("January 2006")))

	if p.layout.HeaderHeight > 1 {
		var b strings.Builder
		for _, wd := range calendar.Weekdays(weekStart) {
			b.WriteString(styles.CalendarWeekday.Render(fmt.Sprintf(" %s ", wd.String()[:3])))
		}
		lines = append(lines, b.String())
	}
	for i := 2; i < p.layout.HeaderHeight; i++ {
		lines = append(lines, "")
	}

	lead := calendar.LeadingDays(first, weekStart)
	daysInMonth := first.DaysInMonth()
	weeks := p.grid.WeeksInMonth(first)

	for week := 0; week < weeks; week++ {
		var b strings.Builder
		for col := 0; col < 7; col++ {
			day := week*7 + col - lead + 1
			if day < 1 || day > daysInMonth {
				b.WriteString("     ")
				continue
			}

			d := calendar.Date{Year: first.Year, Month: first.Month, Day: day}
			b.WriteString(p.dayStyle(d, today).Render(fmt.Sprintf(" %2d ", day)))
			b.WriteString(" ")
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
		for i := 1; i < p.layout.WeekHeight; i++ {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

func (p *Picker) dayStyle(d, today calendar.Date) lipgloss.Style {
	switch {
	case d == p.cursor:
		return styles.CalendarDayCursor
	case p.sel.IsSelected(d):
		return styles.CalendarDaySelected
	case d == today:
		return styles.CalendarDayToday
	case !p.sel.Selectable(d, today):
		return styles.CalendarDayDisabled
	case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
		return styles.CalendarDayWeekend
	}
	return styles.CalendarDay
}

// truncate shortens s to the terminal width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func (p *Picker) truncate(s string) string {
	maxLen := p.width
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}
	return s
}
