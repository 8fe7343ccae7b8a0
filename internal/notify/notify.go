// Package notify sends desktop notifications for picked dates.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/hy4ri/calpick/internal/calendar"
)

// Notifier posts a desktop notification when a day is picked.
type Notifier struct {
	title  string
	send   func(title, message string) error
	logger zerolog.Logger
}

// New returns a Notifier that uses the system notification service.
func New(title string, logger zerolog.Logger) *Notifier {
	return &Notifier{
		title: title,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		logger: logger,
	}
}

// DaySelected announces day. Delivery failures are logged and dropped.
func (n *Notifier) DaySelected(day calendar.Date) {
	msg := "Selected " + day.Format("Monday, January 2, 2006")
	if err := n.send(n.title, msg); err != nil {
		n.logger.Warn().Err(err).Str("day", day.String()).Msg("failed to send notification")
	}
}
