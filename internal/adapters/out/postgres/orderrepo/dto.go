// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking number carries a unique index; the database constraint is the
// source of truth for tracking code uniqueness, and the create path relies on
// it to detect collisions.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName       string     `gorm:"type:varchar(255);not null"`
	CustomerEmail      string     `gorm:"type:varchar(255);not null"`
	CustomerPhone      *string    `gorm:"type:varchar(50)"`
	ShippingAddress    string     `gorm:"type:text;not null"`
	DestinationAddress string     `gorm:"type:text;not null"`
	Status             string     `gorm:"type:varchar(50);not null"`
	EstimatedDelivery  *time.Time `gorm:"type:timestamptz"`
	CreatedAt          time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt          time.Time  `gorm:"type:timestamptz;not null"`
	CreatedBy          *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The empty customer phone and the missing creator map to NULL columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerPhone *string
	if phone := aggregate.CustomerPhone(); phone != "" {
		customerPhone = &phone
	}

	var createdBy *uuid.UUID
	if id := aggregate.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingNumber:     aggregate.TrackingCode().String(),
		CustomerName:       aggregate.CustomerName(),
		CustomerEmail:      aggregate.CustomerEmail(),
		CustomerPhone:      customerPhone,
		ShippingAddress:    aggregate.ShippingAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		Status:             aggregate.Status().String(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		CreatedBy:          createdBy,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var customerPhone string
	if dto.CustomerPhone != nil {
		customerPhone = *dto.CustomerPhone
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		creatorID, creatorErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if creatorErr != nil {
			return nil, creatorErr
		}

		createdBy = &creatorID
	}

	return order.RestoreOrder(
		id,
		trackingCode,
		dto.CustomerName,
		dto.CustomerEmail,
		customerPhone,
		dto.ShippingAddress,
		dto.DestinationAddress,
		status,
		dto.EstimatedDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
		createdBy,
	)
}
