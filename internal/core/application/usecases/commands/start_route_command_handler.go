package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// StartRouteCommandHandler moves a planned route to InProgress.
type StartRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      ports.Clock
}

// NewStartRouteCommandHandler creates a handler for starting routes.
func NewStartRouteCommandHandler(uowFactory RouteUoWFactory, clock ports.Clock) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the route, starts it and persists the change.
func (h *StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
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

	routeRepo := uow.RouteRepository()
	planned, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = planned.Start(h.clock.Now()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, planned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
