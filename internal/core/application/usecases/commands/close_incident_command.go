package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCloseIncidentCommandIsNotConstructed = errors.New(
	"CloseIncidentCommand must be created via NewCloseIncidentCommand constructor",
)

// CloseIncidentCommand confirms a recorded resolution and terminates the
// incident.
type CloseIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseIncidentCommand creates a command to close a resolved incident.
func NewCloseIncidentCommand(incidentID kernel.UUID) (CloseIncidentCommand, error) {
	closeCommand := CloseIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := closeCommand.setIncidentID(incidentID); err != nil {
		return CloseIncidentCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseIncidentCommand) Validate() error {
	return c.guard.Validate(ErrCloseIncidentCommandIsNotConstructed)
}

// IncidentID returns the identifier of the incident being closed.
func (c CloseIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

func (c *CloseIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("incidentID", err)
	}

	c.incidentID = incidentID
	return nil
}
