package commands

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new shipment order.
// It carries the customer contact details, both addresses, the optional
// delivery estimate, and the identity of the staff member creating the
// order. The tracking code is not part of the command: the handler
// generates it at write time.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Jane Doe", "jane@x.com", "",
//	    "1 Main St, City, ST 00000", "2 Oak Ave, Town, ST 00001",
//	    nil, callerID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName       string
	customerEmail      string
	customerPhone      string
	shippingAddress    string
	destinationAddress string
	estimatedDelivery  *time.Time
	createdBy          kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the required customer and address fields are non-empty and
// that a caller identity accompanies the request. customerPhone and
// estimatedDelivery are optional.
func NewCreateOrderCommand(
	customerName string,
	customerEmail string,
	customerPhone string,
	shippingAddress string,
	destinationAddress string,
	estimatedDelivery *time.Time,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerPhone:     customerPhone,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setDestinationAddress(destinationAddress),
		orderCommand.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the recipient's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the optional phone number, empty when not supplied.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// ShippingAddress returns the origin address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// DestinationAddress returns the delivery destination address.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

// EstimatedDelivery returns the optional estimated delivery time.
func (c CreateOrderCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

// CreatedBy returns the identity of the caller creating the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}

	c.destinationAddress = address
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause("caller identity is required", err)
	}

	c.createdBy = createdBy
	return nil
}
