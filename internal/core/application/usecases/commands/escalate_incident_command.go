package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrEscalateIncidentCommandIsNotConstructed = errors.New(
	"EscalateIncidentCommand must be created via NewEscalateIncidentCommand constructor",
)

// EscalateIncidentCommand raises an open incident to high severity handling.
type EscalateIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewEscalateIncidentCommand creates a command to escalate an incident.
func NewEscalateIncidentCommand(incidentID kernel.UUID,
	reason string) (EscalateIncidentCommand, error) {
	escalateCommand := EscalateIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		escalateCommand.setIncidentID(incidentID),
		escalateCommand.setReason(reason),
	); err != nil {
		return EscalateIncidentCommand{}, err
	}

	return escalateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateIncidentCommand) Validate() error {
	return c.guard.Validate(ErrEscalateIncidentCommandIsNotConstructed)
}

// IncidentID returns the identifier of the incident being escalated.
func (c EscalateIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// Reason returns why the incident was escalated.
func (c EscalateIncidentCommand) Reason() string {
	return c.reason
}

func (c *EscalateIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("incidentID", err)
	}

	c.incidentID = incidentID
	return nil
}

func (c *EscalateIncidentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
