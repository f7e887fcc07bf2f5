package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetShipmentUpdatesQueryIsNotConstructed = errors.New(
		"GetShipmentUpdatesQuery must be created via NewGetShipmentUpdatesQuery constructor",
	)
)

// GetShipmentUpdatesQuery retrieves the update history of one order by
// its internal identifier. Used by the authenticated order detail view;
// the public tracking path resolves by tracking code instead.
type GetShipmentUpdatesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentUpdatesQuery creates a query for an order's update
// history. Validates that the order identifier is constructed.
func NewGetShipmentUpdatesQuery(orderID kernel.UUID) (GetShipmentUpdatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentUpdatesQuery{}, err
	}

	return GetShipmentUpdatesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentUpdatesQueryIsNotConstructed if validation fails.
func (q GetShipmentUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentUpdatesQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetShipmentUpdatesQuery) OrderID() kernel.UUID {
	return q.orderID
}
