// Package updaterepo provides data transfer objects and mapping functions for
// shipment update persistence. Updates form an append-only log: rows are
// inserted, never modified, and disappear only when the owning order's
// deletion cascades to them.
package updaterepo

import (
	"time"

	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentUpdateDTO represents the database structure for persisting shipment
// updates. Seq is a database-assigned insert sequence used to break ties
// between updates sharing the same event timestamp.
type ShipmentUpdateDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"not null;autoIncrement;uniqueIndex"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Location    string     `gorm:"type:varchar(255);not null"`
	Status      string     `gorm:"type:varchar(50);not null"`
	Description *string    `gorm:"type:text"`
	Timestamp   time.Time  `gorm:"type:timestamptz;not null"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`

	Order orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment update entities.
// Overrides GORM's default naming convention to use "shipment_updates".
func (ShipmentUpdateDTO) TableName() string {
	return "shipment_updates"
}

// fromDomain converts a shipment update to its database representation.
// The empty description and the missing creator map to NULL columns.
func fromDomain(update *shipment.ShipmentUpdate) ShipmentUpdateDTO {
	var description *string
	if text := update.Description(); text != "" {
		description = &text
	}

	var createdBy *uuid.UUID
	if id := update.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	return ShipmentUpdateDTO{
		ID:          update.ID().Bytes(),
		OrderID:     update.OrderID().Bytes(),
		Location:    update.Location(),
		Status:      update.Status().String(),
		Description: description,
		Timestamp:   update.Timestamp(),
		CreatedBy:   createdBy,
	}
}

// toDomain converts a database DTO to a shipment update using RestoreShipmentUpdate.
func toDomain(dto ShipmentUpdateDTO) (*shipment.ShipmentUpdate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		creatorID, creatorErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if creatorErr != nil {
			return nil, creatorErr
		}

		createdBy = &creatorID
	}

	return shipment.RestoreShipmentUpdate(
		id,
		orderID,
		dto.Location,
		status,
		description,
		dto.Timestamp,
		createdBy,
	)
}
