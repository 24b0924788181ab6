// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer.
type OrderDTO struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID        `gorm:"type:uuid;index"`
	Recipient             RecipientDTO     `gorm:"embedded;embeddedPrefix:recipient_"`
	Dimensions            DimensionsDTO    `gorm:"embedded;embeddedPrefix:dim_"`
	DeclaredValue         decimal.Decimal  `gorm:"type:numeric(14,2)"`
	ServiceType           int
	Status                int `gorm:"index"`
	QuotedPrice           *decimal.Decimal `gorm:"type:numeric(14,2)"`
	EstimatedDeliveryDays int
	GuideID               *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents the embedded recipient contact block within the order table.
type RecipientDTO struct {
	Name    string
	Phone   string
	Address string
	Lat     float64
	Lon     float64
}

// DimensionsDTO represents the embedded parcel dimensions block within the order table.
type DimensionsDTO struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
	WeightKg float64
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional quote and guide linkage.
func fromDomain(aggregate *order.Order) OrderDTO {
	var guideID *uuid.UUID
	if id := aggregate.GuideID(); id != nil {
		raw := id.Bytes()
		guideID = &raw
	}

	var quotedPrice *decimal.Decimal
	if price := aggregate.QuotedPrice(); price != nil {
		amount := price.Amount()
		quotedPrice = &amount
	}

	recipient := aggregate.Recipient()
	dims := aggregate.Dimensions()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Recipient: RecipientDTO{
			Name:    recipient.Name(),
			Phone:   recipient.Phone(),
			Address: recipient.Address(),
			Lat:     recipient.Location().Latitude(),
			Lon:     recipient.Location().Longitude(),
		},
		Dimensions: DimensionsDTO{
			LengthCm: dims.LengthCm(),
			WidthCm:  dims.WidthCm(),
			HeightCm: dims.HeightCm(),
			WeightKg: dims.WeightKg(),
		},
		DeclaredValue:         aggregate.DeclaredValue().Amount(),
		ServiceType:           int(aggregate.ServiceType()),
		Status:                int(aggregate.Status()),
		QuotedPrice:           quotedPrice,
		EstimatedDeliveryDays: aggregate.EstimatedDeliveryDays(),
		GuideID:               guideID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, quote and guide linkage using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Recipient.Lat, dto.Recipient.Lon)
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone,
		dto.Recipient.Address, location)
	if err != nil {
		return nil, err
	}

	dims, err := order.NewDimensions(dto.Dimensions.LengthCm, dto.Dimensions.WidthCm,
		dto.Dimensions.HeightCm, dto.Dimensions.WeightKg)
	if err != nil {
		return nil, err
	}

	declared, err := kernel.NewMoney(dto.DeclaredValue)
	if err != nil {
		return nil, err
	}

	var quotedPrice *kernel.Money
	if dto.QuotedPrice != nil {
		price, priceErr := kernel.NewMoney(*dto.QuotedPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		quotedPrice = &price
	}

	var guideID *kernel.UUID
	if dto.GuideID != nil {
		gID, guideErr := kernel.UUIDFromBytes((*dto.GuideID)[:])
		if guideErr != nil {
			return nil, guideErr
		}

		guideID = &gID
	}

	return order.RestoreOrder(id, customerID, recipient, dims, declared,
		order.ServiceType(dto.ServiceType), order.Status(dto.Status),
		quotedPrice, dto.EstimatedDeliveryDays, guideID)
}
