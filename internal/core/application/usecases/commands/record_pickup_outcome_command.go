package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRecordPickupOutcomeCommandIsNotConstructed = errors.New(
	"RecordPickupOutcomeCommand must be created via NewRecordPickupOutcomeCommand constructor",
)

// RecordPickupOutcomeCommand reports what happened when the operator
// attempted the collection. A successful outcome completes the pickup and
// moves the shipment into the network; a failed outcome burns one attempt
// and may trigger an automatic reschedule.
type RecordPickupOutcomeCommand struct { //nolint:recvcheck //using for validation
	pickupID   kernel.UUID
	operatorID kernel.UUID
	succeeded  bool
	reason     string
	notes      string
	evidence   []string
	location   string

	guard guard.ConstructorGuard
}

// NewRecordPickupOutcomeCommand creates a command to record a collection
// outcome. Failed outcomes require a reason; successful outcomes require
// the location where the parcel entered the network.
func NewRecordPickupOutcomeCommand(pickupID kernel.UUID, operatorID kernel.UUID,
	succeeded bool, reason string, notes string, evidence []string,
	location string) (RecordPickupOutcomeCommand, error) {
	outcomeCommand := RecordPickupOutcomeCommand{
		succeeded: succeeded,
		notes:     notes,
		evidence:  evidence,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		outcomeCommand.setPickupID(pickupID),
		outcomeCommand.setOperatorID(operatorID),
		outcomeCommand.setReason(reason),
		outcomeCommand.setLocation(location),
	); err != nil {
		return RecordPickupOutcomeCommand{}, err
	}

	return outcomeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickupOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickupOutcomeCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup request.
func (c RecordPickupOutcomeCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OperatorID returns the operator who attempted the collection.
func (c RecordPickupOutcomeCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Succeeded reports whether the parcel was collected.
func (c RecordPickupOutcomeCommand) Succeeded() bool {
	return c.succeeded
}

// Reason returns the failure reason, empty on success.
func (c RecordPickupOutcomeCommand) Reason() string {
	return c.reason
}

// Notes returns free-form operator notes.
func (c RecordPickupOutcomeCommand) Notes() string {
	return c.notes
}

// Evidence returns photo or signature references attached to the attempt.
func (c RecordPickupOutcomeCommand) Evidence() []string {
	return c.evidence
}

// Location returns where the parcel entered the network, empty on failure.
func (c RecordPickupOutcomeCommand) Location() string {
	return c.location
}

func (c *RecordPickupOutcomeCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *RecordPickupOutcomeCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operatorID", err)
	}

	c.operatorID = operatorID
	return nil
}

func (c *RecordPickupOutcomeCommand) setReason(reason string) error {
	if !c.succeeded && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *RecordPickupOutcomeCommand) setLocation(location string) error {
	if c.succeeded && location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}
