// Package main is the entry point for the calpick date picker.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hy4ri/calpick/internal/commands"
	"github.com/hy4ri/calpick/internal/config"
	"github.com/hy4ri/calpick/internal/logging"
)

const version = "0.1.0"

func main() {
	var logCloser func()

	flags := &commands.Flags{}
	pickCmd := commands.NewPickCmd(flags)

	app := &cli.Command{
		Name:      "calpick",
		Usage:     "Pick a date from a scrolling month calendar",
		UsageText: "calpick [global options] [command [command options]]",
		Description: `calpick shows every month of a window of years centered on today and prints
the day you pick as YYYY-MM-DD on stdout. Cancelling exits with status 1.

Run 'calpick init' to create a config template.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CALPICK_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("CALPICK_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CALPICK_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg
			pickCmd.ApplyOverrides(c)

			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid config: %w", err)
			}

			log.Debug().Str("config", flags.ConfigPath).Int("years", cfg.Calendar.TotalYears).Msg("config loaded")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewGridCmd(flags).Register(app)

	app.Flags = append(app.Flags, pickCmd.Flags()...)

	// Picking is the default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'calpick --help' for usage", c.Args().First())
		}
		return pickCmd.Run(ctx, c)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
