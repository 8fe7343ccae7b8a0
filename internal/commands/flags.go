package commands

import (
	"time"

	"github.com/hy4ri/calpick/internal/calendar"
	"github.com/hy4ri/calpick/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Now is the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

// Today returns the current date from the configured clock.
func (f *Flags) Today() calendar.Date {
	if f.Now == nil {
		return calendar.DateOf(time.Now())
	}
	return calendar.DateOf(f.Now())
}
