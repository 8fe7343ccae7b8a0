// Package styles provides Lip Gloss styles for the picker.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the selected day
	Highlight = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Title is the style for the picker title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for the month/day readout under the title
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)

// Calendar styles
var (
	// CalendarHeader is for the month/year line above each month
	CalendarHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// CalendarWeekday is for day-of-week headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	CalendarDay = lipgloss.NewStyle()

	// CalendarDayCursor marks the day the cursor is on
	CalendarDayCursor = lipgloss.NewStyle().
				Reverse(true)

	// CalendarDaySelected is for the picked day
	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(lipgloss.Color("#ffffff"))

	// CalendarDayToday is for today's date
	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// CalendarDayDisabled is for days that cannot be picked
	CalendarDayDisabled = lipgloss.NewStyle().
				Faint(true).
				Strikethrough(true)

	CalendarDayWeekend = lipgloss.NewStyle().
				Foreground(Subtle)
)
