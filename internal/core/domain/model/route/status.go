package route

import (
	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup route.
// Planned routes accept and reorder pickups; InProgress routes are being
// driven; Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status while the route is being assembled.
	Planned

	// InProgress indicates the operator started driving the route.
	InProgress

	// Completed is the terminal status once every pickup reached a terminal
	// state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < Planned || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Planned), int(Completed)))
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

// Start transitions the status to InProgress. Valid only from Planned.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return 0, errs.NewInvalidStateTransitionError("Route", s.String(), InProgress.String())
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Valid only from InProgress;
// the aggregate additionally requires every pickup to be terminal.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateTransitionError("Route", s.String(), Completed.String())
	}
	return Completed, nil
}
