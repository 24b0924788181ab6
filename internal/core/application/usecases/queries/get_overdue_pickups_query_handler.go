package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverduePickupsQueryHandler finds pickups breaching the collection SLA.
// The threshold mirrors pickup.OverdueThreshold so the read side and the
// aggregate agree on what overdue means.
type GetOverduePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverduePickupsQueryHandler creates a handler for overdue pickup
// queries.
func NewGetOverduePickupsQueryHandler(db *gorm.DB) GetOverduePickupsQueryHandler {
	return GetOverduePickupsQueryHandler{db: db}
}

// Handle returns every confirmed or in-progress pickup whose scheduled date
// lies more than the threshold before the query instant, oldest first.
func (h GetOverduePickupsQueryHandler) Handle(
	ctx context.Context,
	query GetOverduePickupsQuery,
) ([]GetOverduePickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := query.AsOf().Add(-pickup.OverdueThreshold)
	overdue := make([]GetOverduePickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			guide_id,
			status,
			scheduled_date
		FROM pickup_requests
		WHERE status IN (?, ?)
		  AND scheduled_date < ?
		ORDER BY scheduled_date
	`, pickup.Confirmed, pickup.InProgress, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, guideID uuid.UUID
		var status int
		var scheduledDate time.Time

		if err = rows.Scan(&id, &guideID, &status, &scheduledDate); err != nil {
			return nil, err
		}

		pickupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		guideUUID, idErr := kernel.UUIDFromBytes(guideID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetOverduePickupsQueryResponse{
			ID:            pickupID,
			GuideID:       guideUUID,
			Status:        pickup.Status(status).String(),
			ScheduledDate: scheduledDate,
			OverdueBy:     query.AsOf().Sub(scheduledDate),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
