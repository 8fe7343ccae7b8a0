package calendar

import "github.com/rs/zerolog"

// Listener receives the outcome of a picking session.
type Listener interface {
	OnDaySelected(day Date)
	OnCancel()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are ignored.
type ListenerFuncs struct {
	DaySelected func(day Date)
	Cancel      func()
}

func (f ListenerFuncs) OnDaySelected(day Date) {
	if f.DaySelected != nil {
		f.DaySelected(day)
	}
}

func (f ListenerFuncs) OnCancel() {
	if f.Cancel != nil {
		f.Cancel()
	}
}

// SelectionOption configures a Selection.
type SelectionOption func(*Selection)

// WithDefault starts the selection at day. A zero Date leaves it unselected.
func WithDefault(day Date) SelectionOption {
	return func(s *Selection) { s.selected = day }
}

// WithListener registers the listener notified of selections and cancels.
func WithListener(l Listener) SelectionOption {
	return func(s *Selection) { s.listener = l }
}

// WithRefresh registers fn to be called whenever displayed state changes.
func WithRefresh(fn func()) SelectionOption {
	return func(s *Selection) { s.refresh = fn }
}

// WithDisablePastDates sets the initial past-date display policy.
func WithDisablePastDates(disable bool) SelectionOption {
	return func(s *Selection) { s.disablePast = disable }
}

// WithLogger sets the logger used for selection events.
func WithLogger(l zerolog.Logger) SelectionOption {
	return func(s *Selection) { s.logger = l }
}

// Selection holds the picked day for a single picker. It is not safe for
// concurrent use; the owning controller is its only caller.
type Selection struct {
	selected    Date
	disablePast bool
	listener    Listener
	refresh     func()
	logger      zerolog.Logger
}

// NewSelection returns an unselected Selection unless WithDefault is given.
func NewSelection(opts ...SelectionOption) *Selection {
	s := &Selection{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectDay records a user's choice of day and notifies the listener.
func (s *Selection) SelectDay(day Date) {
	s.selected = day
	s.logger.Debug().Str("day", day.String()).Msg("day selected")
	s.requestRefresh()
	if s.listener != nil {
		s.listener.OnDaySelected(day)
	}
}

// SetDefault sets the selection without notifying the listener. Passing the
// zero Date clears it.
func (s *Selection) SetDefault(day Date) {
	s.selected = day
	s.logger.Debug().Str("day", day.String()).Msg("default selection set")
	s.requestRefresh()
}

// Cancel tells the listener the picker was dismissed. The selection is kept.
func (s *Selection) Cancel() {
	s.logger.Debug().Msg("selection cancelled")
	if s.listener != nil {
		s.listener.OnCancel()
	}
}

// Selected returns the selected day and whether one is set.
func (s *Selection) Selected() (Date, bool) {
	return s.selected, !s.selected.IsZero()
}

// IsSelected reports whether day is the selected day.
func (s *Selection) IsSelected(day Date) bool {
	return !s.selected.IsZero() && s.selected == day
}

// DisablePastDates reports whether days before today are shown as disabled.
func (s *Selection) DisablePastDates() bool {
	return s.disablePast
}

// SetDisablePastDates changes the past-date display policy.
func (s *Selection) SetDisablePastDates(disable bool) {
	if s.disablePast == disable {
		return
	}
	s.disablePast = disable
	s.requestRefresh()
}

// Selectable reports whether day should be offered for selection given the
// past-date policy. SelectDay itself does not consult it.
func (s *Selection) Selectable(day, today Date) bool {
	return !s.disablePast || !day.Before(today)
}

func (s *Selection) requestRefresh() {
	if s.refresh != nil {
		s.refresh()
	}
}
