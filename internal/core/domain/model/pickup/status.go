package pickup

import (
	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup request.
//
// State transitions:
//
//	Scheduled ──> Confirmed ──> InProgress ──> Completed
//	    ^             │             │
//	    │             │             ├──> Rescheduled ──> Confirmed (again)
//	    │             │             └──> Failed
//	    └── (initial) │
//	  Cancelled <─────┴── (from any state except Completed)
//
// Completed, Failed, and Cancelled are terminal. Rescheduled is a holding
// state equivalent to Scheduled for the purposes of slot confirmation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status: the request exists but holds no
	// confirmed slot yet.
	Scheduled

	// Confirmed indicates the request holds a reserved slot and operator, or
	// an assigned logistics point.
	Confirmed

	// InProgress indicates the operator started the collection.
	InProgress

	// Completed is the terminal success state.
	Completed

	// Failed is the terminal state after the attempt bound is exhausted.
	Failed

	// Cancelled is the terminal state for customer or administrative
	// termination.
	Cancelled

	// Rescheduled indicates a failed attempt freed the request for a new
	// slot.
	Rescheduled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Scheduled:   "Scheduled",
		Confirmed:   "Confirmed",
		InProgress:  "InProgress",
		Completed:   "Completed",
		Failed:      "Failed",
		Cancelled:   "Cancelled",
		Rescheduled: "Rescheduled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < Scheduled || s > Rescheduled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Scheduled), int(Rescheduled)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}

// Confirm transitions the status to Confirmed. Valid from Scheduled and
// Rescheduled.
func (s Status) Confirm() (Status, error) {
	if s != Scheduled && s != Rescheduled {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// Start transitions the status to InProgress. Valid only from Confirmed.
func (s Status) Start() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), InProgress.String())
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), Completed.String())
	}
	return Completed, nil
}

// Fail transitions the status to Failed. Valid only from InProgress.
func (s Status) Fail() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), Failed.String())
	}
	return Failed, nil
}

// Reschedule transitions the status to Rescheduled. Valid from any
// non-terminal state; the aggregate additionally enforces the attempt bound.
func (s Status) Reschedule() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), Rescheduled.String())
	}
	return Rescheduled, nil
}

// Cancel transitions the status to Cancelled. Valid from any non-terminal
// state; completed pickups consumed their capacity and stay completed.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidStateTransitionError("PickupRequest", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
