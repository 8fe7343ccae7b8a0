package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hy4ri/calpick/internal/calendar"
)

// Validate checks the configuration for values the picker cannot work with.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("calendar.total_years", c.Calendar.TotalYears, atLeastOne),
		criterio.Run("calendar.week_start", c.Calendar.WeekStart, weekdayName),
		criterio.Run("calendar.default_date", c.Calendar.DefaultDate, optionalDate),
		criterio.Run("ui.layout.header_height", c.UI.Layout.HeaderHeight, atLeastOne),
		criterio.Run("ui.layout.week_height", c.UI.Layout.WeekHeight, atLeastOne),
	)
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

func weekdayName(s string) error {
	_, err := calendar.ParseWeekday(s)
	return err
}

func optionalDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := calendar.ParseDate(s)
	return err
}
