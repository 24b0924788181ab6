package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand books a pickup request into an operator time slot.
//
// Example:
//
//	cmd, err := NewSchedulePickupCommand(pickupID, slotID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSchedulePickupCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrCapacityExhausted means the slot is full
//	    return err
//	}
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID kernel.UUID
	slotID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to book a pickup into a slot.
func NewSchedulePickupCommand(pickupID kernel.UUID, slotID kernel.UUID) (SchedulePickupCommand, error) {
	scheduleCommand := SchedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scheduleCommand.setPickupID(pickupID),
		scheduleCommand.setSlotID(slotID),
	); err != nil {
		return SchedulePickupCommand{}, err
	}

	return scheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup request.
func (c SchedulePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// SlotID returns the identifier of the target time slot.
func (c SchedulePickupCommand) SlotID() kernel.UUID {
	return c.slotID
}

func (c *SchedulePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *SchedulePickupCommand) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("slotID", err)
	}

	c.slotID = slotID
	return nil
}
