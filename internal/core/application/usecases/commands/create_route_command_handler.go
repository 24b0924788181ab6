package commands

import (
	"context"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CreateRouteCommandHandler plans a collection route. The planner validates
// every pickup against the operator and the day, then orders the stops by
// priority and distance from the departure point.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    services.RoutePlanner
	clock      ports.Clock
}

// NewCreateRouteCommandHandler creates a handler for route planning.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory,
	planner services.RoutePlanner, clock ports.Clock) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clock,
	}
}

// Handle loads the pickups, plans the route and persists it.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
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

	pickupRepo := uow.PickupRepository()
	pickups := make([]*pickup.PickupRequest, 0, len(cmd.PickupIDs()))
	for _, id := range cmd.PickupIDs() {
		request, err := pickupRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		pickups = append(pickups, request)
	}

	planned, err := h.planner.PlanRoute(cmd.RouteID(), cmd.OperatorID(),
		cmd.Date(), cmd.StartPoint(), pickups, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, planned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
