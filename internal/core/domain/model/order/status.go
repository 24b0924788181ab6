package order

import (
	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipping order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow from creation to guide generation.
//
// State transitions:
//
//	Pending ──> Quoted ──> Confirmed ──> WithGuide
//	   │           │            │
//	   └───────────┴────────────┴──> Cancelled
//
// WithGuide and Cancelled are terminal: an order already handed to logistics
// cannot be cancelled through this state machine (the shipment's own lifecycle
// governs it from there).
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for a price quote.
	Pending

	// Quoted indicates a price and delivery estimate have been attached.
	// Orders in this status are waiting for customer confirmation.
	Quoted

	// Confirmed indicates the customer accepted the quote.
	// A guide may be generated exactly once from this status.
	Confirmed

	// WithGuide indicates a guide was generated and the shipment has been
	// handed to logistics. Terminal within the order lifecycle.
	WithGuide

	// Cancelled indicates the order was terminated before guide generation.
	// Terminal; cancellation is not erasure, the order remains on record.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Quoted:    "Quoted",
		Confirmed: "Confirmed",
		WithGuide: "WithGuide",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Quoted:    "Quoted",
		Confirmed: "Confirmed",
		WithGuide: "WithGuide",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Cancelled)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == WithGuide || s == Cancelled
}

// Quote transitions the status to Quoted.
//
// Valid transitions:
//   - Pending -> Quoted
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) Quote() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateTransitionError("Order", s.String(), Quoted.String())
	}
	return Quoted, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Quoted -> Confirmed
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) Confirm() (Status, error) {
	if s != Quoted {
		return 0, errs.NewInvalidStateTransitionError("Order", s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// MarkWithGuide transitions the status to WithGuide.
//
// Valid transitions:
//   - Confirmed -> WithGuide
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) MarkWithGuide() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateTransitionError("Order", s.String(), WithGuide.String())
	}
	return WithGuide, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Quoted -> Cancelled
//   - Confirmed -> Cancelled
//
// Invalid transitions:
//   - WithGuide -> Cancelled (shipment already handed to logistics)
//   - Cancelled -> Cancelled (already terminal)
//
// Returns (0, InvalidStateTransitionError) for any invalid current status.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Quoted && s != Confirmed {
		return 0, errs.NewInvalidStateTransitionError("Order", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
