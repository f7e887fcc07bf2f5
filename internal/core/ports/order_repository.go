// Package ports defines the persistence and identity contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Returns an error when
	// the tracking code collides with an existing row; the create handler
	// regenerates the code and retries in that case.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFound if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by its internal identifier while
	// taking a row-level lock for the duration of the surrounding
	// transaction. The update-append use case relies on this to serialize
	// concurrent appends against the same order, so that the projected
	// status always belongs to the update committed last.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingCode retrieves an order by its public tracking code.
	// The match is exact and case-sensitive; this is the only lookup the
	// public tracking path uses. Returns ObjectNotFound for unknown codes.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error)

	// GetAll retrieves every order, ordered by creation time ascending.
	// Used by the authenticated order list view; no pagination.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
