package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentTrackingQueryHandler reads a guide's tracking view straight
// from the database, bypassing the aggregate.
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for tracking lookups.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle returns the guide's status and its movement history in recording
// order.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) (GetShipmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	var guideRow struct {
		ID       uuid.UUID
		Status   int
		Operator string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			operator
		FROM guides
		WHERE id = ?
	`, query.GuideID().String()).Scan(&guideRow)
	if result.Error != nil {
		return GetShipmentTrackingQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetShipmentTrackingQueryResponse{},
			errs.NewObjectNotFoundError("guideID", query.GuideID())
	}

	guideID, err := kernel.UUIDFromBytes(guideRow.ID[:])
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	response := GetShipmentTrackingQueryResponse{
		GuideID:  guideID,
		Status:   shipment.Status(guideRow.Status).String(),
		Operator: guideRow.Operator,
		Events:   make([]TrackingEventResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			kind,
			location,
			note,
			recorded_at
		FROM tracking_events
		WHERE guide_id = ?
		ORDER BY seq
	`, query.GuideID().String()).Rows()
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.Kind, &event.Location, &event.Note,
			&event.RecordedAt); err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}
		response.Events = append(response.Events, event)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	return response, nil
}
