package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// DefaultMaxDeliveryAttempts is the bound applied to a delivery retry cycle
// when the caller does not specify one.
const DefaultMaxDeliveryAttempts = 3

// DeliveryRetryInterval is how long after a rescheduled attempt the next
// attempt window opens.
const DeliveryRetryInterval = 24 * time.Hour

// ErrDeliveryRetryIsNotConstructed is returned when a DeliveryRetry was not
// created through the NewDeliveryRetry constructor.
var ErrDeliveryRetryIsNotConstructed = errors.New(
	"DeliveryRetry must be created via NewDeliveryRetry constructor")

// AttemptOutcome classifies the result of one delivery attempt.
type AttemptOutcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown AttemptOutcome = iota

	// OutcomeSuccess means the package was handed to the recipient.
	OutcomeSuccess

	// OutcomeFailed means the attempt did not deliver and a failure reason
	// was recorded.
	OutcomeFailed

	// OutcomeRescheduled means the attempt failed and a new attempt window
	// was already proposed when it was recorded.
	OutcomeRescheduled
)

func getOutcomeStrings() map[AttemptOutcome]string {
	return map[AttemptOutcome]string{
		OutcomeUnknown:     "Unknown",
		OutcomeSuccess:     "Success",
		OutcomeFailed:      "Failed",
		OutcomeRescheduled: "Rescheduled",
	}
}

// Validate checks if the AttemptOutcome value is valid.
func (o AttemptOutcome) Validate() error {
	if o != OutcomeSuccess && o != OutcomeFailed && o != OutcomeRescheduled {
		return errs.NewValueIsInvalidErrorWithCause("outcome is invalid",
			fmt.Errorf("%d is not a valid attempt outcome", o))
	}
	return nil
}

// String returns the human-readable name of the outcome.
func (o AttemptOutcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// IsFailure reports whether the outcome counts as a failed delivery.
func (o AttemptOutcome) IsFailure() bool {
	return o == OutcomeFailed || o == OutcomeRescheduled
}

// DeliveryAttempt is an immutable record of one try at final delivery.
type DeliveryAttempt struct {
	number        int
	outcome       AttemptOutcome
	failureReason string
	notes         string
	recordedAt    time.Time
}

// RestoreDeliveryAttempt reconstructs an attempt from persistence.
func RestoreDeliveryAttempt(number int, outcome AttemptOutcome,
	failureReason string, notes string, recordedAt time.Time) (DeliveryAttempt, error) {
	if err := outcome.Validate(); err != nil {
		return DeliveryAttempt{}, err
	}
	if number <= 0 {
		return DeliveryAttempt{}, errs.NewValueIsInvalidError("number")
	}

	return DeliveryAttempt{
		number:        number,
		outcome:       outcome,
		failureReason: failureReason,
		notes:         notes,
		recordedAt:    recordedAt,
	}, nil
}

// Number returns the 1-based sequence number of the attempt.
func (a DeliveryAttempt) Number() int { return a.number }

// Outcome returns the recorded outcome.
func (a DeliveryAttempt) Outcome() AttemptOutcome { return a.outcome }

// FailureReason returns the failure reason, empty for successful attempts.
func (a DeliveryAttempt) FailureReason() string { return a.failureReason }

// Notes returns the free-form notes recorded with the attempt.
func (a DeliveryAttempt) Notes() string { return a.notes }

// RecordedAt returns the time the attempt was recorded.
func (a DeliveryAttempt) RecordedAt() time.Time { return a.recordedAt }

// RetryStatus is the terminal disposition of a delivery retry cycle.
type RetryStatus int

const (
	// RetryOpen means the cycle is still accepting attempts.
	RetryOpen RetryStatus = iota

	// RetryDelivered means an attempt succeeded and the cycle closed.
	RetryDelivered

	// RetryReturned means the bound was exhausted and the shipment goes back
	// to origin.
	RetryReturned

	// RetryAbandoned means the cycle was closed administratively.
	RetryAbandoned
)

func getRetryStatusStrings() map[RetryStatus]string {
	return map[RetryStatus]string{
		RetryOpen:      "Open",
		RetryDelivered: "Delivered",
		RetryReturned:  "Returned",
		RetryAbandoned: "Abandoned",
	}
}

// String returns the human-readable name of the retry status.
func (s RetryStatus) String() string {
	if str, ok := getRetryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeliveryRetry is the bounded retry envelope around delivery attempts for
// one guide. The cycle accepts at most maxAttempts attempts; the attempt that
// reaches the bound with a failure closes the cycle with RetryReturned, a
// successful attempt closes it with RetryDelivered, and any call after the
// cycle closed fails with RetryExhausted without appending an attempt.
type DeliveryRetry struct {
	guideID     kernel.UUID
	maxAttempts int
	attempts    []DeliveryAttempt
	finalStatus RetryStatus
	guard       guard.ConstructorGuard
}

// NewDeliveryRetry creates an open retry cycle for the given guide.
// maxAttempts must be greater than zero; use DefaultMaxDeliveryAttempts for
// the standard policy.
func NewDeliveryRetry(guideID kernel.UUID, maxAttempts int) (*DeliveryRetry, error) {
	if err := guideID.Validate(); err != nil {
		return nil, err
	}
	if maxAttempts <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxAttempts is invalid",
			fmt.Errorf("%d is not greater than 0", maxAttempts))
	}

	return &DeliveryRetry{
		guideID:     guideID,
		maxAttempts: maxAttempts,
		finalStatus: RetryOpen,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryRetry reconstructs a retry cycle from persistence.
func RestoreDeliveryRetry(
	guideID kernel.UUID,
	maxAttempts int,
	attempts []DeliveryAttempt,
	finalStatus RetryStatus,
) (*DeliveryRetry, error) {
	retry, err := NewDeliveryRetry(guideID, maxAttempts)
	if err != nil {
		return nil, err
	}
	if len(attempts) > maxAttempts {
		return nil, errs.NewValueIsInvalidErrorWithCause("attempts are invalid",
			fmt.Errorf("%d attempts exceed the bound of %d", len(attempts), maxAttempts))
	}

	retry.attempts = make([]DeliveryAttempt, len(attempts))
	copy(retry.attempts, attempts)
	retry.finalStatus = finalStatus
	return retry, nil
}

// Validate ensures the DeliveryRetry was properly constructed.
func (r *DeliveryRetry) Validate() error {
	if r == nil {
		return ErrDeliveryRetryIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRetryIsNotConstructed)
}

// GuideID returns the identifier of the guide this cycle belongs to.
func (r *DeliveryRetry) GuideID() kernel.UUID { return r.guideID }

// MaxAttempts returns the attempt bound.
func (r *DeliveryRetry) MaxAttempts() int { return r.maxAttempts }

// Attempts returns a copy of the recorded attempts in order.
func (r *DeliveryRetry) Attempts() []DeliveryAttempt {
	attempts := make([]DeliveryAttempt, len(r.attempts))
	copy(attempts, r.attempts)
	return attempts
}

// AttemptCount returns the number of recorded attempts.
func (r *DeliveryRetry) AttemptCount() int { return len(r.attempts) }

// RemainingAttempts returns how many attempts the cycle still accepts.
func (r *DeliveryRetry) RemainingAttempts() int { return r.maxAttempts - len(r.attempts) }

// FinalStatus returns the cycle's disposition.
func (r *DeliveryRetry) FinalStatus() RetryStatus { return r.finalStatus }

// IsOpen reports whether the cycle still accepts attempts.
func (r *DeliveryRetry) IsOpen() bool { return r.finalStatus == RetryOpen }

// RecordAttempt appends one delivery attempt to the cycle.
//
// Business rules:
//   - The cycle must be open; calls on a closed cycle fail with
//     RetryExhausted and append nothing
//   - Failed and rescheduled outcomes require a failure reason
//   - A successful attempt closes the cycle with RetryDelivered
//   - A failure on the final permitted attempt closes the cycle with
//     RetryReturned
func (r *DeliveryRetry) RecordAttempt(
	outcome AttemptOutcome,
	failureReason string,
	notes string,
	now time.Time,
) (DeliveryAttempt, error) {
	if err := outcome.Validate(); err != nil {
		return DeliveryAttempt{}, err
	}
	if outcome.IsFailure() && failureReason == "" {
		return DeliveryAttempt{}, errs.NewValueIsRequiredError("failureReason is required for failed attempts")
	}

	if !r.IsOpen() || len(r.attempts) >= r.maxAttempts {
		return DeliveryAttempt{}, errs.NewRetryExhaustedError("DeliveryRetry", r.maxAttempts)
	}

	attempt := DeliveryAttempt{
		number:        len(r.attempts) + 1,
		outcome:       outcome,
		failureReason: failureReason,
		notes:         notes,
		recordedAt:    now,
	}
	r.attempts = append(r.attempts, attempt)

	switch {
	case outcome == OutcomeSuccess:
		r.finalStatus = RetryDelivered
	case len(r.attempts) == r.maxAttempts:
		r.finalStatus = RetryReturned
	}

	return attempt, nil
}

// Abandon closes an open cycle administratively. Attempts recorded so far are
// preserved.
func (r *DeliveryRetry) Abandon() error {
	if !r.IsOpen() {
		return errs.NewInvalidStateTransitionError("DeliveryRetry",
			r.finalStatus.String(), RetryAbandoned.String())
	}
	r.finalStatus = RetryAbandoned
	return nil
}
