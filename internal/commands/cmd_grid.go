package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/hy4ri/calpick/internal/calendar"
)

// GridCmd exposes the date/coordinate mapping without starting the picker.
type GridCmd struct {
	flags *Flags
}

// NewGridCmd creates the grid inspection commands.
func NewGridCmd(flags *Flags) *GridCmd {
	return &GridCmd{flags: flags}
}

// Register adds the locate, month, weeks and window commands to the application.
func (cmd *GridCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "locate",
			Usage:     "Print the grid section and row of a date",
			UsageText: "calpick locate YYYY-MM-DD",
			Action:    cmd.runLocate,
		},
		&cli.Command{
			Name:      "month",
			Usage:     "Print the first day of the month at a grid section and row",
			UsageText: "calpick month SECTION ROW",
			Action:    cmd.runMonth,
		},
		&cli.Command{
			Name:      "weeks",
			Usage:     "Print the number of week rows and the row height of a month",
			UsageText: "calpick weeks YYYY-MM",
			Action:    cmd.runWeeks,
		},
		&cli.Command{
			Name:      "window",
			Usage:     "Print the range of years reachable in the picker",
			UsageText: "calpick window",
			Action:    cmd.runWindow,
		},
	)
	return app
}

func (cmd *GridCmd) grid() (*calendar.Grid, error) {
	g, err := cmd.flags.Config.Grid()
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	return g, nil
}

func (cmd *GridCmd) runLocate(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one date argument")
	}
	d, err := calendar.ParseDate(c.Args().First())
	if err != nil {
		return err
	}
	g, err := cmd.grid()
	if err != nil {
		return err
	}

	coord := g.CoordinateFor(d, cmd.flags.Today())
	_, _ = fmt.Fprintf(c.Root().Writer, "%s in_window=%t\n", coord, g.Contains(coord))
	return nil
}

func (cmd *GridCmd) runMonth(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected SECTION and ROW arguments")
	}
	section, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid section %q: %w", c.Args().Get(0), err)
	}
	row, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid row %q: %w", c.Args().Get(1), err)
	}
	g, err := cmd.grid()
	if err != nil {
		return err
	}

	coord := calendar.Coordinate{Section: section, Row: row}
	if !g.Contains(coord) {
		return fmt.Errorf("%s is outside the %d-year window", coord, g.Sections())
	}
	_, _ = fmt.Fprintln(c.Root().Writer, g.DateAt(coord, cmd.flags.Today()))
	return nil
}

func (cmd *GridCmd) runWeeks(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one YYYY-MM argument")
	}
	d, err := calendar.ParseMonth(c.Args().First())
	if err != nil {
		return err
	}
	g, err := cmd.grid()
	if err != nil {
		return err
	}

	weeks := g.WeeksInMonth(d)
	height := cmd.flags.Config.Layout().MonthHeight(g, d)
	_, _ = fmt.Fprintf(c.Root().Writer, "weeks=%d height=%d\n", weeks, height)
	return nil
}

func (cmd *GridCmd) runWindow(_ context.Context, c *cli.Command) error {
	g, err := cmd.grid()
	if err != nil {
		return err
	}

	first, last := g.YearRange(cmd.flags.Today())
	_, _ = fmt.Fprintf(c.Root().Writer, "first=%d last=%d sections=%d center=%d\n", first, last, g.Sections(), g.Center())
	return nil
}
