package lookup

import (
	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/phone"
)

// ErrorDescriptor is the user-visible failure state of a lookup attempt:
// a classification bucket plus the message rendered next to it.
type ErrorDescriptor struct {
	Category string
	Message  string
}

// State holds the four transient fields of the lookup form plus the
// identifier of the most recent attempt. Result and Err are never
// simultaneously non-nil: both are cleared when an attempt starts and
// exactly one is populated when it settles.
type State struct {
	// Phone is the current input value, digits only.
	Phone string

	// Result is the record from the last successful attempt. Input
	// edits do not clear it; only the start of a new attempt does.
	Result minutes.BalanceRecord

	// Err describes the last failed attempt, or nil.
	Err *ErrorDescriptor

	// Loading is true exactly while one attempt is in flight.
	Loading bool

	// LatestAttempt identifies the newest attempt. Settlement events
	// carrying an older identifier are stale and discarded, so rapid
	// resubmits resolve last-submit-wins instead of last-to-complete.
	LatestAttempt uint64
}

// Event is a state transition input for Reduce.
type Event interface {
	isEvent()
}

// InputChanged carries a raw keystroke-level edit of the phone field.
type InputChanged struct {
	Raw string
}

// SubmitRejected reports a submit that was refused before any attempt
// started (empty input). No network call is associated with it.
type SubmitRejected struct {
	Message string
}

// AttemptStarted marks the beginning of one lookup attempt.
type AttemptStarted struct {
	ID uint64
}

// AttemptSucceeded settles an attempt with a balance record.
type AttemptSucceeded struct {
	ID     uint64
	Record minutes.BalanceRecord
}

// AttemptFailed settles an attempt with a classified error.
type AttemptFailed struct {
	ID       uint64
	Category string
	Message  string
}

// ErrorDismissed clears the error state, leaving everything else alone.
type ErrorDismissed struct{}

func (InputChanged) isEvent()     {}
func (SubmitRejected) isEvent()   {}
func (AttemptStarted) isEvent()   {}
func (AttemptSucceeded) isEvent() {}
func (AttemptFailed) isEvent()    {}
func (ErrorDismissed) isEvent()   {}

// Reduce applies one event to a state and returns the next state. It is
// a pure function: no I/O, no clock, no randomness, which keeps the
// classification flow and its invariants testable without any rendering
// or transport layer.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case InputChanged:
		s.Phone = phone.Digits(ev.Raw)
		// Edits dismiss a visible error but never a visible result.
		s.Err = nil

	case SubmitRejected:
		s.Err = &ErrorDescriptor{Category: domain.CategoryInvalid, Message: ev.Message}

	case AttemptStarted:
		s.Loading = true
		s.Result = nil
		s.Err = nil
		s.LatestAttempt = ev.ID

	case AttemptSucceeded:
		if ev.ID != s.LatestAttempt {
			return s // stale completion
		}
		s.Loading = false
		s.Result = ev.Record
		s.Err = nil

	case AttemptFailed:
		if ev.ID != s.LatestAttempt {
			return s // stale completion
		}
		s.Loading = false
		s.Result = nil
		s.Err = &ErrorDescriptor{Category: ev.Category, Message: ev.Message}

	case ErrorDismissed:
		s.Err = nil
	}

	return s
}
