package incident

import (
	"shipping/internal/pkg/errs"
)

// Status represents the handling state of a reported incident.
//
// State transitions:
//
//	Reported ──> InReview ──> Resolved ──> Closed
//	    │            │            ^
//	    └──> Escalated ───────────┘
//
// Escalation is reachable from Reported and InReview, raises the incident's
// severity and keeps the resolution path open. Closed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Reported is the initial status right after an incident is filed.
	Reported

	// InReview indicates the incident was acknowledged and is being worked.
	InReview

	// Escalated indicates the incident was raised to high severity handling.
	Escalated

	// Resolved indicates a resolution was recorded.
	Resolved

	// Closed is the terminal status after the resolution was confirmed.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Reported:  "Reported",
		InReview:  "InReview",
		Escalated: "Escalated",
		Resolved:  "Resolved",
		Closed:    "Closed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < Reported || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Reported), int(Closed)))
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
	return s == Closed
}

// Acknowledge transitions the status to InReview. Valid only from Reported.
func (s Status) Acknowledge() (Status, error) {
	if s != Reported {
		return 0, errs.NewInvalidStateTransitionError("Incident", s.String(), InReview.String())
	}
	return InReview, nil
}

// Escalate transitions the status to Escalated. Valid from Reported and
// InReview.
func (s Status) Escalate() (Status, error) {
	if s != Reported && s != InReview {
		return 0, errs.NewInvalidStateTransitionError("Incident", s.String(), Escalated.String())
	}
	return Escalated, nil
}

// Resolve transitions the status to Resolved. Valid from InReview and
// Escalated.
func (s Status) Resolve() (Status, error) {
	if s != InReview && s != Escalated {
		return 0, errs.NewInvalidStateTransitionError("Incident", s.String(), Resolved.String())
	}
	return Resolved, nil
}

// Close transitions the status to Closed. Valid only from Resolved.
func (s Status) Close() (Status, error) {
	if s != Resolved {
		return 0, errs.NewInvalidStateTransitionError("Incident", s.String(), Closed.String())
	}
	return Closed, nil
}
