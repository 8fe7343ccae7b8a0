package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/notify"
	"github.com/hy4ri/calpick/internal/tui"
)

// ErrCancelled is returned when the picker is dismissed without a pick.
var ErrCancelled = errors.New("no date selected")

type PickCmd struct {
	flags *Flags

	years       int
	weekStart   string
	disablePast bool
	defaultDate string
	title       string
}

// NewPickCmd creates the interactive picker command.
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Flags returns the picker flags for registration on the root command. They
// override the matching config values for every command.
func (cmd *PickCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "years",
			Usage:       "number of years reachable in the picker, centered on this year",
			Sources:     cli.EnvVars("CALPICK_YEARS"),
			Destination: &cmd.years,
		},
		&cli.StringFlag{
			Name:        "week-start",
			Usage:       "first day of each week row (sunday, monday, ...)",
			Sources:     cli.EnvVars("CALPICK_WEEK_START"),
			Destination: &cmd.weekStart,
		},
		&cli.BoolFlag{
			Name:        "disable-past",
			Usage:       "grey out and refuse days before today",
			Destination: &cmd.disablePast,
		},
		&cli.StringFlag{
			Name:        "default",
			Aliases:     []string{"d"},
			Usage:       "preselected date (YYYY-MM-DD)",
			Destination: &cmd.defaultDate,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "title shown above the calendar",
			Destination: &cmd.title,
		},
	}
}

// ApplyOverrides copies explicitly set flags onto the loaded config.
func (cmd *PickCmd) ApplyOverrides(c *cli.Command) {
	cfg := cmd.flags.Config
	if c.IsSet("years") {
		cfg.Calendar.TotalYears = cmd.years
	}
	if c.IsSet("week-start") {
		cfg.Calendar.WeekStart = cmd.weekStart
	}
	if c.IsSet("disable-past") {
		cfg.Calendar.DisablePastDates = cmd.disablePast
	}
	if c.IsSet("default") {
		cfg.Calendar.DefaultDate = cmd.defaultDate
	}
	if c.IsSet("title") {
		cfg.UI.Title = cmd.title
	}
}

// Run executes the picker. Exported for use as default command.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	grid, err := cfg.Grid()
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	def, err := cfg.DefaultSelected()
	if err != nil {
		return err
	}

	var notifier *notify.Notifier
	if cfg.UI.NotifyOnSelect {
		notifier = notify.New("calpick", log.Logger)
	}

	var (
		picked calendar.Date
		done   bool
	)
	listener := calendar.ListenerFuncs{
		DaySelected: func(d calendar.Date) {
			picked, done = d, true
			log.Info().Str("day", d.String()).Msg("day selected")
			if notifier != nil {
				notifier.DaySelected(d)
			}
		},
		Cancel: func() {
			log.Info().Msg("picker cancelled")
		},
	}

	logger := log.With().Str("component", "picker").Logger()
	picker, err := tui.NewPicker(tui.Options{
		Grid:         grid,
		Layout:       cfg.Layout(),
		Title:        cfg.UI.Title,
		CancelLabel:  cfg.UI.CancelLabel,
		Default:      def,
		DisablePast:  cfg.Calendar.DisablePastDates,
		Listener:     listener,
		QuitOnSelect: true,
		Clock:        cmd.flags.Now,
		Logger:       &logger,
	})
	if err != nil {
		return err
	}

	// The picker draws on stderr so stdout carries only the result.
	p := tea.NewProgram(picker, tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	if !done {
		return ErrCancelled
	}

	if cfg.UI.CopyOnSelect {
		if err := clipboard.WriteAll(picked.String()); err != nil {
			log.Warn().Err(err).Msg("failed to copy date to clipboard")
		}
	}

	_, _ = fmt.Fprintln(c.Root().Writer, picked)
	return nil
}
