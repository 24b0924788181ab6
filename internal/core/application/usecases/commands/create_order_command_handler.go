package commands

import (
	"context"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"
)

// CreateOrderCommandHandler registers new orders in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, recipient, dims,
//	    declaredValue, order.ServiceTypeExpress)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates the order and persists it transactionally.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Recipient(),
		cmd.Dimensions(), cmd.DeclaredValue(), cmd.ServiceType(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
