package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Narrow views over the unit of work. Each handler declares the smallest
// surface it needs so tests only have to fake what the handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	GuideRepoFactory interface {
		GuideRepository() ports.GuideRepository
	}

	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	CapacityFactory interface {
		CapacityProvider() ports.CapacityProvider
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	IncidentRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	GuideUoW interface {
		TxManager
		GuideRepoFactory
	}

	GuideUoWFactory interface {
		Create() GuideUoW
	}

	GenerateGuideUoW interface {
		TxManager
		OrderRepoFactory
		GuideRepoFactory
		PickupRepoFactory
	}

	GenerateGuideUoWFactory interface {
		Create() GenerateGuideUoW
	}

	PickupUoW interface {
		TxManager
		PickupRepoFactory
		CapacityFactory
	}

	PickupUoWFactory interface {
		Create() PickupUoW
	}

	PickupOutcomeUoW interface {
		TxManager
		PickupRepoFactory
		CapacityFactory
		GuideRepoFactory
	}

	PickupOutcomeUoWFactory interface {
		Create() PickupOutcomeUoW
	}

	RouteUoW interface {
		TxManager
		RouteRepoFactory
		PickupRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	IncidentUoW interface {
		TxManager
		IncidentRepoFactory
		GuideRepoFactory
	}

	IncidentUoWFactory interface {
		Create() IncidentUoW
	}
)
