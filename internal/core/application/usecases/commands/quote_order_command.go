package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrQuoteOrderCommandIsNotConstructed = errors.New(
	"QuoteOrderCommand must be created via NewQuoteOrderCommand constructor",
)

// QuoteOrderCommand attaches a calculated price and delivery estimate to a
// pending order.
type QuoteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	price        kernel.Money
	deliveryDays int

	guard guard.ConstructorGuard
}

// NewQuoteOrderCommand creates a command to quote a pending order.
func NewQuoteOrderCommand(orderID kernel.UUID, price kernel.Money,
	deliveryDays int) (QuoteOrderCommand, error) {
	quoteCommand := QuoteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quoteCommand.setOrderID(orderID),
		quoteCommand.setPrice(price),
		quoteCommand.setDeliveryDays(deliveryDays),
	); err != nil {
		return QuoteOrderCommand{}, err
	}

	return quoteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c QuoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being quoted.
func (c QuoteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Price returns the quoted shipping price.
func (c QuoteOrderCommand) Price() kernel.Money {
	return c.price
}

// DeliveryDays returns the estimated delivery time in days.
func (c QuoteOrderCommand) DeliveryDays() int {
	return c.deliveryDays
}

func (c *QuoteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *QuoteOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *QuoteOrderCommand) setDeliveryDays(deliveryDays int) error {
	if deliveryDays <= 0 {
		return errs.NewValueIsInvalidError("deliveryDays")
	}

	c.deliveryDays = deliveryDays
	return nil
}
