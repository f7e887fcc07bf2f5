// Package shipment contains the ShipmentUpdate entity, one immutable
// timestamped event in an order's tracking history.
//
// Updates form an append-only log: they are created once, never edited or
// deleted on their own, and disappear only when their owning order is
// deleted (the database cascades the delete). An order's updates are
// totally ordered by event timestamp with ties broken by insertion order.
package shipment
