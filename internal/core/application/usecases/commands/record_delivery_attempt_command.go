package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRecordDeliveryAttemptCommandIsNotConstructed = errors.New(
	"RecordDeliveryAttemptCommand must be created via NewRecordDeliveryAttemptCommand constructor",
)

// RecordDeliveryAttemptCommand reports one attempt to hand the parcel to
// the recipient. A successful attempt delivers the shipment; a failed one
// burns an attempt and, once the retry budget is spent, sends the parcel
// back to origin.
type RecordDeliveryAttemptCommand struct { //nolint:recvcheck //using for validation
	guideID       kernel.UUID
	outcome       shipment.AttemptOutcome
	failureReason string
	notes         string
	recipientName string
	location      string
	evidence      []string

	guard guard.ConstructorGuard
}

// NewRecordDeliveryAttemptCommand creates a command to record a delivery
// attempt. Failed attempts require a failure reason; successful ones
// require the receiving person and the delivery location.
func NewRecordDeliveryAttemptCommand(guideID kernel.UUID,
	outcome shipment.AttemptOutcome, failureReason string, notes string,
	recipientName string, location string, evidence []string,
) (RecordDeliveryAttemptCommand, error) {
	attemptCommand := RecordDeliveryAttemptCommand{
		notes:    notes,
		evidence: evidence,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		attemptCommand.setGuideID(guideID),
		attemptCommand.setOutcome(outcome),
		attemptCommand.setFailureReason(failureReason),
		attemptCommand.setRecipient(recipientName, location),
	); err != nil {
		return RecordDeliveryAttemptCommand{}, err
	}

	return attemptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryAttemptCommandIsNotConstructed)
}

// GuideID returns the identifier of the guide.
func (c RecordDeliveryAttemptCommand) GuideID() kernel.UUID {
	return c.guideID
}

// Outcome returns the result of the attempt.
func (c RecordDeliveryAttemptCommand) Outcome() shipment.AttemptOutcome {
	return c.outcome
}

// FailureReason returns why the attempt failed, empty on success.
func (c RecordDeliveryAttemptCommand) FailureReason() string {
	return c.failureReason
}

// Notes returns free-form courier notes.
func (c RecordDeliveryAttemptCommand) Notes() string {
	return c.notes
}

// RecipientName returns who received the parcel, empty on failure.
func (c RecordDeliveryAttemptCommand) RecipientName() string {
	return c.recipientName
}

// Location returns where the parcel was handed over, empty on failure.
func (c RecordDeliveryAttemptCommand) Location() string {
	return c.location
}

// Evidence returns photo or signature references for the attempt.
func (c RecordDeliveryAttemptCommand) Evidence() []string {
	return c.evidence
}

func (c *RecordDeliveryAttemptCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}

func (c *RecordDeliveryAttemptCommand) setOutcome(outcome shipment.AttemptOutcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}

func (c *RecordDeliveryAttemptCommand) setFailureReason(failureReason string) error {
	if c.outcome.IsFailure() && failureReason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}

	c.failureReason = failureReason
	return nil
}

func (c *RecordDeliveryAttemptCommand) setRecipient(recipientName string, location string) error {
	if c.outcome == shipment.OutcomeSuccess {
		if recipientName == "" {
			return errs.NewValueIsRequiredError("recipientName")
		}
		if location == "" {
			return errs.NewValueIsRequiredError("location")
		}
	}

	c.recipientName = recipientName
	c.location = location
	return nil
}
