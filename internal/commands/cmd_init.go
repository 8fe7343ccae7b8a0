package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

const configTemplate = `# calpick configuration

calendar:
  # Years reachable by scrolling, centered on the current year.
  total_years: 100
  # First day of each week row: sunday, monday, ... (or sun, mon, ...)
  week_start: sunday
  # Grey out and refuse days before today.
  disable_past_dates: false
  # Preselected day (YYYY-MM-DD). Not reported as picked until confirmed.
  # default_date: "2026-01-01"

ui:
  title: "Select a date"
  # Help text for the cancel key; leave empty to hide it.
  cancel_label: "Cancel"
  copy_on_select: false
  notify_on_select: false
  layout:
    # Lines for the month title and weekday names.
    header_height: 2
    # Lines per week row.
    week_height: 1
`

type InitCmd struct {
	flags *Flags
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a template config file",
		UsageText: "calpick init [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Config file created: %s\n", path)
	return nil
}
