// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentUpdateRepoFactory provides access to the update log
	// repository within a transaction.
	ShipmentUpdateRepoFactory interface {
		ShipmentUpdateRepository() ports.ShipmentUpdateRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch nothing but the orders table.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW manages transactions spanning the update log and the
	// orders table. The update-append command needs both: it inserts the
	// update row and writes the projected status back onto the order as a
	// single unit.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		ShipmentUpdateRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
