// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains a list of aggregates affected by a business transaction
// and coordinates writing out changes as one atomic commit.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit domain event publication
//   - Proper isolation between concurrent operations
//
// Usage Pattern:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PickupRepository().Update(ctx, request); err != nil {
//	    return err
//	}
//	if err := uow.CapacityProvider().SaveSlot(ctx, slot); err != nil {
//	    return err
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	publisher.Publish(ctx, uow.DrainedEvents())
package postgres

import (
	"context"

	"shipping/internal/adapters/out/postgres/guiderepo"
	"shipping/internal/adapters/out/postgres/incidentrepo"
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/pickuprepo"
	"shipping/internal/adapters/out/postgres/routerepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// eventDrainer is satisfied by every aggregate root embedding kernel.EventRecorder.
type eventDrainer interface {
	DrainEvents() []kernel.DomainEvent
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work instance with proper isolation
// from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Aggregates touched through the repositories are
// tracked so their recorded domain events can be drained after a successful
// commit and handed to the event publisher.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	drainedEvents     []kernel.DomainEvent
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and drains
// the domain events recorded by tracked aggregates. After commit, the
// transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		if drainer, ok := tracked.Aggregate.(eventDrainer); ok {
			uow.drainedEvents = append(uow.drainedEvents, drainer.DrainEvents()...)
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DrainedEvents returns the domain events drained from tracked aggregates
// during the last successful Commit.
func (uow *GormUnitOfWork) DrainedEvents() []kernel.DomainEvent {
	return uow.drainedEvents
}

// OrderRepository provides access to order persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise on the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// GuideRepository provides access to guide persistence operations within the
// unit of work.
func (uow *GormUnitOfWork) GuideRepository() ports.GuideRepository {
	return guiderepo.NewGormGuideRepository(uow.conn(), uow)
}

// PickupRepository provides access to pickup request persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) PickupRepository() ports.PickupRepository {
	return pickuprepo.NewGormPickupRepository(uow.conn(), uow)
}

// CapacityProvider provides access to time slot persistence operations within
// the unit of work. Slot reservations commit or roll back together with the
// pickup state they back.
func (uow *GormUnitOfWork) CapacityProvider() ports.CapacityProvider {
	return pickuprepo.NewGormCapacityProvider(uow.conn())
}

// RouteRepository provides access to route persistence operations within the
// unit of work. Restored routes load their stop pickups through the pickup
// repository bound to the same transaction.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	db := uow.conn()
	return routerepo.NewGormRouteRepository(db, uow, pickuprepo.NewGormPickupRepository(db, uow))
}

// IncidentRepository provides access to incident persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) IncidentRepository() ports.IncidentRepository {
	return incidentrepo.NewGormIncidentRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations when aggregates are added or
// updated; the recorded events of tracked aggregates are drained on Commit.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
