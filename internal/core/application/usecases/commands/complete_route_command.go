package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand closes a route once every stop reached a terminal
// state.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete a route.
func NewCompleteRouteCommand(routeID kernel.UUID) (CompleteRouteCommand, error) {
	completeCommand := CompleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setRouteID(routeID); err != nil {
		return CompleteRouteCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route being completed.
func (c CompleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *CompleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}
