package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage the transaction lifecycle.
//
// The update-append use case depends on this: inserting the update row and
// projecting its status onto the order row are two writes that commit or
// roll back as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no active transaction exists or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no active transaction exists or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction when one is active.
	OrderRepository() OrderRepository

	// ShipmentUpdateRepository returns a ShipmentUpdateRepository bound to
	// the current transaction when one is active.
	ShipmentUpdateRepository() ShipmentUpdateRepository
}
