package queries

import (
	"context"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentUpdatesQueryHandler retrieves one order's update history
// from the database. Distinguishes an order with no updates (empty list)
// from an order that does not exist (not found).
type GetShipmentUpdatesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentUpdatesQueryHandler creates a handler for update history
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentUpdatesQueryHandler(db *gorm.DB) GetShipmentUpdatesQueryHandler {
	return GetShipmentUpdatesQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when the order does
// not exist, otherwise the order's updates ordered by event timestamp
// ascending — possibly empty.
func (h GetShipmentUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentUpdatesQuery,
) ([]ShipmentUpdateResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)
	`, query.OrderID().Bytes()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return fetchUpdatesForOrder(ctx, h.db, query.OrderID().Bytes())
}
