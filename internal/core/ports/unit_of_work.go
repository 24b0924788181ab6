package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control, tracks aggregate changes, and exposes the
// events drained from tracked aggregates after a successful commit.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DrainedEvents returns the domain events drained from tracked
	// aggregates during the last successful Commit, for post-commit
	// publication.
	DrainedEvents() []kernel.DomainEvent

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// GuideRepository returns a GuideRepository bound to the current
	// transaction.
	GuideRepository() GuideRepository

	// PickupRepository returns a PickupRepository bound to the current
	// transaction.
	PickupRepository() PickupRepository

	// CapacityProvider returns a CapacityProvider bound to the current
	// transaction.
	CapacityProvider() CapacityProvider

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository

	// IncidentRepository returns an IncidentRepository bound to the current
	// transaction.
	IncidentRepository() IncidentRepository
}
