package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order before logistics take over.
// The aggregate rejects cancellation once a guide exists for the order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, cancels it and persists the change.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
