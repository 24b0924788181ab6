package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCancelPickupCommandIsNotConstructed = errors.New(
	"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
)

// CancelPickupCommand terminates a pickup request and releases its slot
// reservation when one is held.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID    kernel.UUID
	reason      string
	cancelledBy string

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand creates a command to cancel a pickup request.
func NewCancelPickupCommand(pickupID kernel.UUID, reason string,
	cancelledBy string) (CancelPickupCommand, error) {
	cancelCommand := CancelPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setPickupID(pickupID),
		cancelCommand.setReason(reason),
		cancelCommand.setCancelledBy(cancelledBy),
	); err != nil {
		return CancelPickupCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup request.
func (c CancelPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Reason returns the cancellation reason.
func (c CancelPickupCommand) Reason() string {
	return c.reason
}

// CancelledBy returns who requested the cancellation.
func (c CancelPickupCommand) CancelledBy() string {
	return c.cancelledBy
}

func (c *CancelPickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *CancelPickupCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *CancelPickupCommand) setCancelledBy(cancelledBy string) error {
	if cancelledBy == "" {
		return errs.NewValueIsRequiredError("cancelledBy")
	}

	c.cancelledBy = cancelledBy
	return nil
}
