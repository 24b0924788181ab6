package pickup

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// DefaultMaxAttempts bounds how many collection attempts a pickup request
// admits before it fails terminally.
const DefaultMaxAttempts = 3

// Attempt is an immutable record of one collection try.
type Attempt struct {
	number     int
	operatorID kernel.UUID
	succeeded  bool
	reason     string
	notes      string
	evidence   []string
	recordedAt time.Time
}

func newAttempt(number int, operatorID kernel.UUID, succeeded bool,
	reason string, notes string, evidence []string, recordedAt time.Time) (Attempt, error) {
	if err := operatorID.Validate(); err != nil {
		return Attempt{}, errs.NewValueIsInvalidErrorWithCause("operatorID", err)
	}
	if !succeeded && reason == "" {
		return Attempt{}, errs.NewValueIsRequiredError("reason is required for failed attempts")
	}

	copied := make([]string, len(evidence))
	copy(copied, evidence)
	return Attempt{
		number:     number,
		operatorID: operatorID,
		succeeded:  succeeded,
		reason:     reason,
		notes:      notes,
		evidence:   copied,
		recordedAt: recordedAt,
	}, nil
}

// RestoreAttempt reconstructs an attempt from persistence.
func RestoreAttempt(number int, operatorID kernel.UUID, succeeded bool,
	reason string, notes string, evidence []string, recordedAt time.Time) (Attempt, error) {
	return newAttempt(number, operatorID, succeeded, reason, notes, evidence, recordedAt)
}

// Number returns the 1-based attempt sequence number.
func (a Attempt) Number() int { return a.number }

// OperatorID returns the operator that made the attempt.
func (a Attempt) OperatorID() kernel.UUID { return a.operatorID }

// Succeeded reports whether the package was collected.
func (a Attempt) Succeeded() bool { return a.succeeded }

// Reason returns why the attempt failed, empty on success.
func (a Attempt) Reason() string { return a.reason }

// Notes returns the operator's free-form notes.
func (a Attempt) Notes() string { return a.notes }

// Evidence returns a copy of the attempt's evidence references.
func (a Attempt) Evidence() []string {
	evidence := make([]string, len(a.evidence))
	copy(evidence, a.evidence)
	return evidence
}

// RecordedAt returns when the attempt was recorded.
func (a Attempt) RecordedAt() time.Time { return a.recordedAt }
