package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand puts a planned route in progress.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start a planned route.
func NewStartRouteCommand(routeID kernel.UUID) (StartRouteCommand, error) {
	startCommand := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setRouteID(routeID); err != nil {
		return StartRouteCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route being started.
func (c StartRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *StartRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}
