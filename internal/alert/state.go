// Package alert holds the single live user-facing alert.
//
// The state machine has exactly two states: Idle (no alert, nothing
// renders) and Active (one alert shown). Raise moves to Active and
// replaces whatever was there; Clear moves back to Idle and reports
// which field should regain focus. There is no queueing.
package alert

import "github.com/iudanet/notekeeper/internal/models"

// State is the alert container. It is mutated only by the single active
// view, so no locking discipline is needed.
type State struct {
	current *models.Alert
}

// NewState returns an idle alert state.
func NewState() *State {
	return &State{}
}

// Raise replaces the current alert with a.
func (s *State) Raise(a models.Alert) {
	s.current = &a
}

// Active returns the live alert, or nil when the state is idle.
// Rendering must be suppressed entirely when nil.
func (s *State) Active() *models.Alert {
	return s.current
}

// Clear dismisses the current alert and returns the identifier of the
// field that triggered it, so the form can restore focus there. Returns
// an empty string when the state was already idle or the alert had no
// source field.
func (s *State) Clear() string {
	if s.current == nil {
		return ""
	}
	field := s.current.SourceField
	s.current = nil
	return field
}
