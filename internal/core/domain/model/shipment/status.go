package shipment

import (
	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a physical shipment once its guide
// exists. It implements a state machine with defined transitions covering the
// happy path and both termination paths.
//
// State transitions:
//
//	Generated ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	    │             │            │  ^            │
//	    │             │            └──┘            │
//	    └─────────────┴───────(Cancelled)──────────┘
//	                  └────────(Returned)──────────┘
//
// Delivered, Returned, and Cancelled are terminal. InTransit permits
// idempotent re-entry so waypoints can be recorded without a state change.
// Returned is the logistics-driven termination path (exhausted delivery
// retries); Cancelled is the customer or administrative path.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Generated is the initial status: the guide exists but the package has
	// not been collected yet.
	Generated

	// PickedUp indicates the package was physically collected.
	PickedUp

	// InTransit indicates the package is moving between facilities.
	InTransit

	// OutForDelivery indicates the package is on the last-mile vehicle.
	OutForDelivery

	// Delivered is the terminal success state.
	Delivered

	// Returned is the terminal state for shipments sent back to origin after
	// delivery retries were exhausted.
	Returned

	// Cancelled is the terminal state for customer or administrative
	// termination.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Generated:      "Generated",
		PickedUp:       "PickedUp",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Returned:       "Returned",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < Generated || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Generated), int(Cancelled)))
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
	return s == Delivered || s == Returned || s == Cancelled
}

// Pickup transitions the status to PickedUp. Valid only from Generated.
func (s Status) Pickup() (Status, error) {
	if s != Generated {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), PickedUp.String())
	}
	return PickedUp, nil
}

// Transit transitions the status to InTransit. Valid from PickedUp (the
// state-changing entry) and from InTransit itself (idempotent re-entry used to
// record waypoints).
func (s Status) Transit() (Status, error) {
	if s != PickedUp && s != InTransit {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), InTransit.String())
	}
	return InTransit, nil
}

// OutForDelivery transitions the status to OutForDelivery. Valid only from
// InTransit.
func (s Status) OutForDelivery() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), OutForDelivery.String())
	}
	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered. Valid only from OutForDelivery.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled. Valid from any non-terminal
// state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// Return transitions the status to Returned. Valid from the physical-handling
// states; the aggregate additionally requires at least one recorded delivery
// attempt before returning to origin.
func (s Status) Return() (Status, error) {
	if s != PickedUp && s != InTransit && s != OutForDelivery {
		return 0, errs.NewInvalidStateTransitionError("Guide", s.String(), Returned.String())
	}
	return Returned, nil
}
