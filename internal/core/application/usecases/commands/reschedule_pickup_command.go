package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrReschedulePickupCommandIsNotConstructed = errors.New(
	"ReschedulePickupCommand must be created via NewReschedulePickupCommand constructor",
)

// ReschedulePickupCommand moves a pickup request to a different time slot at
// the customer's request. Capacity moves atomically: when the new slot is
// full the old reservation survives untouched.
type ReschedulePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	newSlotID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewReschedulePickupCommand creates a command to move a pickup to a new
// slot. A non-empty reason is required.
func NewReschedulePickupCommand(pickupID kernel.UUID, newSlotID kernel.UUID,
	reason string) (ReschedulePickupCommand, error) {
	rescheduleCommand := ReschedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rescheduleCommand.setPickupID(pickupID),
		rescheduleCommand.setNewSlotID(newSlotID),
		rescheduleCommand.setReason(reason),
	); err != nil {
		return ReschedulePickupCommand{}, err
	}

	return rescheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReschedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrReschedulePickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup request.
func (c ReschedulePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// NewSlotID returns the identifier of the target time slot.
func (c ReschedulePickupCommand) NewSlotID() kernel.UUID {
	return c.newSlotID
}

// Reason returns why the pickup is being moved.
func (c ReschedulePickupCommand) Reason() string {
	return c.reason
}

func (c *ReschedulePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *ReschedulePickupCommand) setNewSlotID(newSlotID kernel.UUID) error {
	if err := newSlotID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("newSlotID", err)
	}

	c.newSlotID = newSlotID
	return nil
}

func (c *ReschedulePickupCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
