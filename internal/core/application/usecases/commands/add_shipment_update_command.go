package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrAddShipmentUpdateCommandIsNotConstructed = errors.New(
		"AddShipmentUpdateCommand must be created via NewAddShipmentUpdateCommand constructor",
	)
)

// AddShipmentUpdateCommand represents a request to append one tracking
// event to an order's update log. Appends are the only write the log
// supports; the handler also projects the event's status onto the order.
type AddShipmentUpdateCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	location    string
	status      order.Status
	description string
	createdBy   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddShipmentUpdateCommand creates a command to append a shipment
// update. Validates that the order identifier is constructed, location is
// non-empty, status is a recognized value, and a caller identity is
// present. description is optional.
func NewAddShipmentUpdateCommand(
	orderID kernel.UUID,
	location string,
	status order.Status,
	description string,
	createdBy kernel.UUID,
) (AddShipmentUpdateCommand, error) {
	updateCommand := AddShipmentUpdateCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setLocation(location),
		updateCommand.setStatus(status),
		updateCommand.setCreatedBy(createdBy),
	); err != nil {
		return AddShipmentUpdateCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddShipmentUpdateCommandIsNotConstructed if validation fails.
func (c AddShipmentUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentUpdateCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the update.
func (c AddShipmentUpdateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Location returns the free-text location of the tracking event.
func (c AddShipmentUpdateCommand) Location() string {
	return c.location
}

// Status returns the shipment status recorded by the event.
func (c AddShipmentUpdateCommand) Status() order.Status {
	return c.status
}

// Description returns the optional free-text description.
func (c AddShipmentUpdateCommand) Description() string {
	return c.description
}

// CreatedBy returns the identity of the caller recording the update.
func (c AddShipmentUpdateCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *AddShipmentUpdateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddShipmentUpdateCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *AddShipmentUpdateCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *AddShipmentUpdateCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause("caller identity is required", err)
	}

	c.createdBy = createdBy
	return nil
}
