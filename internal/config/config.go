// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/calpick/internal/calendar"
)

// Config represents the application configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	UI       UIConfig       `yaml:"ui"`
}

// CalendarConfig holds the grid and selection settings.
type CalendarConfig struct {
	// TotalYears is the number of years reachable by scrolling, centered on
	// the current year.
	TotalYears int `yaml:"total_years"`

	// WeekStart is the weekday each week row starts on ("sunday", "mon", ...).
	WeekStart string `yaml:"week_start"`

	// DisablePastDates greys out days before today.
	DisablePastDates bool `yaml:"disable_past_dates"`

	// DefaultDate preselects a day (YYYY-MM-DD) without reporting it as picked.
	DefaultDate string `yaml:"default_date,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Title          string       `yaml:"title"`
	CancelLabel    string       `yaml:"cancel_label"` // empty hides the hint
	CopyOnSelect   bool         `yaml:"copy_on_select"`
	NotifyOnSelect bool         `yaml:"notify_on_select"`
	Layout         LayoutConfig `yaml:"layout"`
}

// LayoutConfig sizes each month in terminal lines.
type LayoutConfig struct {
	HeaderHeight int `yaml:"header_height"`
	WeekHeight   int `yaml:"week_height"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			TotalYears: 100,
			WeekStart:  "sunday",
		},
		UI: UIConfig{
			Title:       "Select a date",
			CancelLabel: "Cancel",
			Layout: LayoutConfig{
				HeaderHeight: calendar.DefaultLayout.HeaderHeight,
				WeekHeight:   calendar.DefaultLayout.WeekHeight,
			},
		},
	}
}

// DefaultPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "calpick", "config.yaml")
}

// Load reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WeekStartDay returns the configured week start.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	return calendar.ParseWeekday(c.Calendar.WeekStart)
}

// Grid builds the month grid described by the calendar settings.
func (c *Config) Grid() (*calendar.Grid, error) {
	start, err := c.WeekStartDay()
	if err != nil {
		return nil, err
	}
	return calendar.NewGrid(c.Calendar.TotalYears, start)
}

// Layout returns the month sizing.
func (c *Config) Layout() calendar.Layout {
	return calendar.Layout{
		HeaderHeight: c.UI.Layout.HeaderHeight,
		WeekHeight:   c.UI.Layout.WeekHeight,
	}
}

// DefaultSelected returns the preselected day, or the zero Date when none is set.
func (c *Config) DefaultSelected() (calendar.Date, error) {
	if c.Calendar.DefaultDate == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseDate(c.Calendar.DefaultDate)
}
