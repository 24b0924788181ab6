package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// ConfirmOrderCommandHandler moves a quoted order to Confirmed, making it
// eligible for guide generation.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, confirms it and persists the change.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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
	confirmedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = confirmedOrder.Confirm(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, confirmedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
