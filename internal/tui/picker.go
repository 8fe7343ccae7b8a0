package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hy4ri/calpick/internal/calendar"
)

// defaultHeight is used until the terminal reports its size.
const defaultHeight = 24

// Options configures a Picker.
type Options struct {
	Grid        *calendar.Grid
	Layout      calendar.Layout // zero value uses calendar.DefaultLayout
	Title       string          // empty hides the title line
	CancelLabel string          // empty hides the cancel hint

	Default     calendar.Date // preselected day, not reported to Listener
	DisablePast bool
	Listener    calendar.Listener

	// QuitOnSelect ends the program after a day is picked. Cancel always quits.
	QuitOnSelect bool

	Clock  func() time.Time // defaults to time.Now
	Logger *zerolog.Logger
}

type statusMsg struct {
	msg string
	err error
}

// Picker is a bubbletea model showing the grid's months stacked vertically,
// one month per row with a height that follows its week count.
type Picker struct {
	grid   *calendar.Grid
	layout calendar.Layout
	sel    *calendar.Selection
	keys   keyMap
	help   help.Model
	clock  func() time.Time
	logger zerolog.Logger

	title        string
	quitOnSelect bool

	cursor        calendar.Date
	top           calendar.Coordinate
	width, height int
	status        statusMsg

	// Rendered months keyed by position, valid for cacheDay only.
	cache    map[calendar.Coordinate]string
	cacheDay calendar.Date
}

// NewPicker creates a Picker positioned on the default day, or today when no
// default is set or the default lies outside the window.
func NewPicker(opts Options) (*Picker, error) {
	if opts.Grid == nil {
		return nil, errors.New("picker requires a grid")
	}

	p := &Picker{
		grid:         opts.Grid,
		layout:       opts.Layout,
		keys:         defaultKeyMap(opts.CancelLabel),
		help:         help.New(),
		clock:        opts.Clock,
		logger:       zerolog.Nop(),
		title:        opts.Title,
		quitOnSelect: opts.QuitOnSelect,
		height:       defaultHeight,
		cache:        make(map[calendar.Coordinate]string),
	}
	if p.layout == (calendar.Layout{}) {
		p.layout = calendar.DefaultLayout
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if opts.Logger != nil {
		p.logger = *opts.Logger
	}

	p.sel = calendar.NewSelection(
		calendar.WithDefault(opts.Default),
		calendar.WithListener(opts.Listener),
		calendar.WithDisablePastDates(opts.DisablePast),
		calendar.WithRefresh(p.invalidate),
		calendar.WithLogger(p.logger),
	)

	p.goTo(p.selectedOrToday())
	return p, nil
}

// Selection exposes the picker's selection state.
func (p *Picker) Selection() *calendar.Selection { return p.sel }

// Cursor returns the day under the cursor.
func (p *Picker) Cursor() calendar.Date { return p.cursor }

// Top returns the first visible month.
func (p *Picker) Top() calendar.Coordinate { return p.top }

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.help.Width = msg.Width
		p.center()
	case statusMsg:
		p.status = msg
	case tea.KeyMsg:
		return p.handleKeyMsg(msg)
	}
	return p, nil
}

// handleKeyMsg processes keyboard input for calendar navigation.
func (p *Picker) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Left):
		p.moveCursor(p.cursor.AddDays(-1))
	case key.Matches(msg, p.keys.Right):
		p.moveCursor(p.cursor.AddDays(1))
	case key.Matches(msg, p.keys.Up):
		p.moveCursor(p.cursor.AddDays(-7))
	case key.Matches(msg, p.keys.Down):
		p.moveCursor(p.cursor.AddDays(7))
	case key.Matches(msg, p.keys.PrevMonth):
		p.moveCursor(p.cursor.AddMonths(-1))
	case key.Matches(msg, p.keys.NextMonth):
		p.moveCursor(p.cursor.AddMonths(1))
	case key.Matches(msg, p.keys.PrevYear):
		p.moveCursor(p.cursor.AddMonths(-calendar.MonthsPerYear))
	case key.Matches(msg, p.keys.NextYear):
		p.moveCursor(p.cursor.AddMonths(calendar.MonthsPerYear))
	case key.Matches(msg, p.keys.Today):
		p.goTo(p.today())
	case key.Matches(msg, p.keys.Selected):
		p.goTo(p.selectedOrToday())
	case key.Matches(msg, p.keys.Select):
		return p, p.pick()
	case key.Matches(msg, p.keys.Copy):
		return p, copyDate(p.cursor)
	case key.Matches(msg, p.keys.Cancel):
		p.sel.Cancel()
		return p, tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
		p.ensureVisible()
	}
	return p, nil
}

func (p *Picker) pick() tea.Cmd {
	if !p.sel.Selectable(p.cursor, p.today()) {
		p.status = statusMsg{err: fmt.Errorf("%s is in the past", p.cursor.Format("Jan 2, 2006"))}
		return nil
	}
	p.status = statusMsg{}
	p.sel.SelectDay(p.cursor)
	if p.quitOnSelect {
		return tea.Quit
	}
	return nil
}

func copyDate(d calendar.Date) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(d.String()); err != nil {
			return statusMsg{err: fmt.Errorf("failed to copy: %w", err)}
		}
		return statusMsg{msg: "Copied " + d.String()}
	}
}

// today is read from the clock on every call so the window follows the date.
func (p *Picker) today() calendar.Date {
	return calendar.DateOf(p.clock())
}

func (p *Picker) selectedOrToday() calendar.Date {
	if d, ok := p.sel.Selected(); ok && p.grid.ContainsDate(d, p.today()) {
		return d
	}
	return p.today()
}

func (p *Picker) invalidate() {
	clear(p.cache)
}

// moveCursor moves to d if its month is inside the window.
func (p *Picker) moveCursor(d calendar.Date) {
	if !p.grid.ContainsDate(d, p.today()) {
		p.logger.Debug().Str("day", d.String()).Msg("cursor move outside window ignored")
		return
	}
	p.cursor = d
	p.ensureVisible()
}

// goTo moves the cursor to d and scrolls its month to the middle of the screen.
func (p *Picker) goTo(d calendar.Date) {
	p.cursor = d
	p.center()
}

func (p *Picker) cursorCoordinate() calendar.Coordinate {
	return p.grid.CoordinateFor(p.cursor, p.today())
}

func (p *Picker) center() {
	today := p.today()
	c := p.cursorCoordinate()
	budget := (p.bodyHeight() - p.layout.RowHeight(p.grid, c, today)) / 2

	top := c
	for p.grid.Index(top) > 0 {
		prev := p.grid.Step(top, -1)
		h := p.layout.RowHeight(p.grid, prev, today)
		if h > budget {
			break
		}
		budget -= h
		top = prev
	}
	p.top = top
}

// ensureVisible scrolls the least distance that shows the whole cursor month.
func (p *Picker) ensureVisible() {
	today := p.today()
	c := p.cursorCoordinate()
	if p.grid.Index(c) < p.grid.Index(p.top) {
		p.top = c
		return
	}

	h := p.layout.RowHeight(p.grid, c, today)
	for p.top != c && p.layout.Between(p.grid, p.top, c, today)+h > p.bodyHeight() {
		p.top = p.grid.Step(p.top, 1)
	}
}
