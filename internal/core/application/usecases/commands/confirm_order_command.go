package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand accepts a quoted order on behalf of the customer.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a quoted order.
func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}
