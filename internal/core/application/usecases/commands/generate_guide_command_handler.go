package commands

import (
	"context"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// GenerateGuideCommandHandler generates a guide from a confirmed order.
// In one transaction it creates the Guide aggregate, marks the order as
// handed to logistics and opens a pickup request typed from the customer
// tier. The order aggregate rejects a second guide for the same order.
type GenerateGuideCommandHandler struct {
	uowFactory GenerateGuideUoWFactory
	clock      ports.Clock
}

// NewGenerateGuideCommandHandler creates a handler for guide generation.
func NewGenerateGuideCommandHandler(uowFactory GenerateGuideUoWFactory,
	clock ports.Clock) GenerateGuideCommandHandler {
	return GenerateGuideCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle generates the guide, the pickup request and the order hand-off as
// one unit.
func (h *GenerateGuideCommandHandler) Handle(ctx context.Context, cmd GenerateGuideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pickupType, err := services.DerivePickupType(cmd.CustomerTier())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	now := h.clock.Now()
	guide, err := shipment.NewGuide(cmd.GuideID(), confirmedOrder.ID(),
		confirmedOrder.CustomerID(), cmd.Operator(), now)
	if err != nil {
		return err
	}

	if err = confirmedOrder.MarkWithGuide(guide.ID(), now); err != nil {
		return err
	}

	request, err := pickup.NewPickupRequest(cmd.PickupID(), guide.ID(),
		confirmedOrder.CustomerID(), pickupType, cmd.Priority(),
		cmd.PickupLocation(), now)
	if err != nil {
		return err
	}

	if err = uow.GuideRepository().Add(ctx, guide); err != nil {
		return err
	}

	if err = uow.PickupRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, confirmedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
