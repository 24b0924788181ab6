package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// CompleteRouteCommandHandler closes a route. The aggregate refuses to
// close while any stop is still pending.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      ports.Clock
}

// NewCompleteRouteCommandHandler creates a handler for completing routes.
func NewCompleteRouteCommandHandler(uowFactory RouteUoWFactory, clock ports.Clock) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the route, completes it and persists the change.
func (h *CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
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
	active, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = active.Complete(h.clock.Now()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, active); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
