package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// QuoteOrderCommandHandler moves a pending order to Quoted with its price
// and delivery estimate.
type QuoteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewQuoteOrderCommandHandler creates a handler for order quoting.
func NewQuoteOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) QuoteOrderCommandHandler {
	return QuoteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, applies the quote and persists the change.
func (h *QuoteOrderCommandHandler) Handle(ctx context.Context, cmd QuoteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quotedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = quotedOrder.Quote(cmd.Price(), cmd.DeliveryDays(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, quotedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
