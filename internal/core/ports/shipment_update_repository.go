package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentUpdateRepository defines the persistence contract for the
// append-only update log. There are no edit or delete operations: updates
// are immutable and are removed only by the database cascading an order
// delete.
type ShipmentUpdateRepository interface {
	// Add persists a new shipment update.
	Add(ctx context.Context, update *shipment.ShipmentUpdate) error

	// GetAllForOrder retrieves every update belonging to the given order,
	// ordered by event timestamp ascending with ties broken by insertion
	// order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.ShipmentUpdate, error)
}
