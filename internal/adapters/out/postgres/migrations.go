package postgres

import (
	"shipping/internal/adapters/out/postgres/guiderepo"
	"shipping/internal/adapters/out/postgres/incidentrepo"
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/pickuprepo"
	"shipping/internal/adapters/out/postgres/routerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every table the adapter
// persists. Child tables follow their parents so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&guiderepo.GuideDTO{},
		&guiderepo.TrackingEventDTO{},
		&guiderepo.DeliveryAttemptDTO{},
		&pickuprepo.TimeSlotDTO{},
		&pickuprepo.PickupRequestDTO{},
		&pickuprepo.PickupAttemptDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteStopDTO{},
		&incidentrepo.IncidentDTO{},
	)
}
