package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/pickup"

	"gorm.io/gorm"
)

// GetPickupSummaryQueryHandler counts an operator's pickups by status for
// one calendar day.
type GetPickupSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupSummaryQueryHandler creates a handler for daily pickup
// summaries.
func NewGetPickupSummaryQueryHandler(db *gorm.DB) GetPickupSummaryQueryHandler {
	return GetPickupSummaryQueryHandler{db: db}
}

// Handle groups the operator's pickups scheduled on the query date by
// status.
func (h GetPickupSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPickupSummaryQuery,
) (GetPickupSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickupSummaryQueryResponse{}, err
	}

	dayStart := query.Date().Truncate(24 * time.Hour)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM pickup_requests
		WHERE operator_id = ?
		  AND scheduled_date >= ?
		  AND scheduled_date < ?
		GROUP BY status
	`, query.OperatorID().String(), dayStart, dayEnd).Rows()
	if err != nil {
		return GetPickupSummaryQueryResponse{}, err
	}
	defer rows.Close()

	response := GetPickupSummaryQueryResponse{
		OperatorID: query.OperatorID(),
		Date:       dayStart,
	}

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetPickupSummaryQueryResponse{}, err
		}

		response.Total += count
		switch pickup.Status(status) {
		case pickup.Confirmed:
			response.Confirmed = count
		case pickup.InProgress:
			response.InProgress = count
		case pickup.Completed:
			response.Completed = count
		case pickup.Failed:
			response.Failed = count
		case pickup.Cancelled:
			response.Cancelled = count
		default:
			response.Other += count
		}
	}

	if err = rows.Err(); err != nil {
		return GetPickupSummaryQueryResponse{}, err
	}

	return response, nil
}
