package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteSummaryQueryHandler reads a route's progress from the database.
type GetRouteSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteSummaryQueryHandler creates a handler for route progress
// queries.
func NewGetRouteSummaryQueryHandler(db *gorm.DB) GetRouteSummaryQueryHandler {
	return GetRouteSummaryQueryHandler{db: db}
}

// Handle returns the route header plus stop counts grouped by outcome.
func (h GetRouteSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetRouteSummaryQuery,
) (GetRouteSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteSummaryQueryResponse{}, err
	}

	var routeRow struct {
		ID         uuid.UUID
		OperatorID uuid.UUID
		Date       time.Time
		Status     int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			operator_id,
			date,
			status
		FROM routes
		WHERE id = ?
	`, query.RouteID().String()).Scan(&routeRow)
	if result.Error != nil {
		return GetRouteSummaryQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetRouteSummaryQueryResponse{},
			errs.NewObjectNotFoundError("routeID", query.RouteID())
	}

	routeID, err := kernel.UUIDFromBytes(routeRow.ID[:])
	if err != nil {
		return GetRouteSummaryQueryResponse{}, err
	}
	operatorID, err := kernel.UUIDFromBytes(routeRow.OperatorID[:])
	if err != nil {
		return GetRouteSummaryQueryResponse{}, err
	}

	response := GetRouteSummaryQueryResponse{
		RouteID:    routeID,
		OperatorID: operatorID,
		Date:       routeRow.Date,
		Status:     route.Status(routeRow.Status).String(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.status,
			COUNT(*)
		FROM route_stops s
		JOIN pickup_requests p ON p.id = s.pickup_id
		WHERE s.route_id = ?
		GROUP BY p.status
	`, query.RouteID().String()).Rows()
	if err != nil {
		return GetRouteSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetRouteSummaryQueryResponse{}, err
		}

		response.StopCount += count
		switch pickup.Status(status) {
		case pickup.Completed:
			response.CompletedStops += count
		case pickup.Failed, pickup.Cancelled:
			response.FailedStops += count
		default:
			response.PendingStops += count
		}
	}

	if err = rows.Err(); err != nil {
		return GetRouteSummaryQueryResponse{}, err
	}

	return response, nil
}
