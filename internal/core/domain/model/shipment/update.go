package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrUpdateIsNotConstructed is returned when a ShipmentUpdate instance
	// was not created through NewShipmentUpdate or RestoreShipmentUpdate.
	ErrUpdateIsNotConstructed = errors.New(
		"ShipmentUpdate must be created via NewShipmentUpdate or RestoreShipmentUpdate",
	)
)

// ShipmentUpdate is one immutable tracking event: where the shipment was,
// what state it was in, and when. The entity has no mutating methods at
// all; appending an update is the only write the update log supports.
type ShipmentUpdate struct {
	id      kernel.UUID
	orderID kernel.UUID

	location string
	status   order.Status
	// description is optional free text shown alongside the event.
	description string

	// timestamp is the event time, not the row insertion time. It defaults
	// to the creation time when the caller supplies a zero value.
	timestamp time.Time

	// createdBy references the staff identity that recorded the update.
	createdBy *kernel.UUID

	isConstructed bool
}

// NewShipmentUpdate creates a new update for the given order with
// validation. A zero timestamp defaults to now.
//
// Returns a ValueIsRequiredError when location is empty and a
// ValueIsInvalidError when status is not a recognized value.
func NewShipmentUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	location string,
	status order.Status,
	description string,
	timestamp time.Time,
	createdBy *kernel.UUID,
) (*ShipmentUpdate, error) {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	update := &ShipmentUpdate{
		description:   description,
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		update.setID(id),
		update.setOrderID(orderID),
		update.setLocation(location),
		update.setStatus(status),
		update.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return update, nil
}

// RestoreShipmentUpdate reconstructs an update from persistence.
func RestoreShipmentUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	location string,
	status order.Status,
	description string,
	timestamp time.Time,
	createdBy *kernel.UUID,
) (*ShipmentUpdate, error) {
	return NewShipmentUpdate(id, orderID, location, status, description, timestamp, createdBy)
}

// Validate ensures the update was constructed through one of the factory
// functions.
func (u *ShipmentUpdate) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUpdateIsNotConstructed
	}

	return nil
}

// IsEqual compares two updates by their unique identifiers.
func (u *ShipmentUpdate) IsEqual(other *ShipmentUpdate) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the update's unique identifier.
func (u *ShipmentUpdate) ID() kernel.UUID {
	return u.id
}

// OrderID returns the identifier of the owning order.
func (u *ShipmentUpdate) OrderID() kernel.UUID {
	return u.orderID
}

// Location returns the free-text location of the event.
func (u *ShipmentUpdate) Location() string {
	return u.location
}

// Status returns the shipment status recorded by this event.
func (u *ShipmentUpdate) Status() order.Status {
	return u.status
}

// Description returns the optional free-text description, empty when none.
func (u *ShipmentUpdate) Description() string {
	return u.description
}

// Timestamp returns the event time.
func (u *ShipmentUpdate) Timestamp() time.Time {
	return u.timestamp
}

// CreatedBy returns the identity that recorded the update, nil when unknown.
func (u *ShipmentUpdate) CreatedBy() *kernel.UUID {
	return u.createdBy
}

func (u *ShipmentUpdate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *ShipmentUpdate) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	u.orderID = orderID
	return nil
}

func (u *ShipmentUpdate) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	u.location = location
	return nil
}

func (u *ShipmentUpdate) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}

func (u *ShipmentUpdate) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return err
		}
	}
	u.createdBy = createdBy
	return nil
}
