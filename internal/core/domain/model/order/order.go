package order

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a shipment request in the system. It is the aggregate
// root of the tracking model: shipment updates reference an order, and the
// order's status always mirrors the most recent update.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and tracking code
//   - The tracking code is immutable once assigned
//   - Customer name, email, and both addresses are non-empty
//   - Status defaults to pending and changes only through ApplyUpdate
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; state changes go
// through validated methods.
type Order struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode

	customerName  string
	customerEmail string
	// customerPhone is optional and may be empty.
	customerPhone string

	shippingAddress    string
	destinationAddress string

	// status mirrors the latest shipment update, pending when none exist.
	status Status

	// estimatedDelivery is optional (nil when staff gave no estimate).
	estimatedDelivery *time.Time

	createdAt time.Time
	updatedAt time.Time

	// createdBy references the staff identity that created the order.
	// It is nil for orders restored from legacy rows without a creator.
	createdBy *kernel.UUID

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in pending
// status with createdAt == updatedAt == now; the tracking code passed in is
// assigned permanently.
//
// Returns a ValueIsRequiredError when customerName, customerEmail,
// shippingAddress, or destinationAddress is empty, or when id/trackingCode
// are zero values. customerPhone and estimatedDelivery may be empty/nil.
//
// Example:
//
//	code := kernel.GenerateTrackingCode()
//	order, err := order.NewOrder(
//	    kernel.NewUUID(), code,
//	    "Jane Doe", "jane@x.com", "",
//	    "1 Main St, City, ST 00000", "2 Oak Ave, Town, ST 00001",
//	    nil, &staffID, time.Now().UTC(),
//	)
func NewOrder(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	customerName string,
	customerEmail string,
	customerPhone string,
	shippingAddress string,
	destinationAddress string,
	estimatedDelivery *time.Time,
	createdBy *kernel.UUID,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:            StatusPending,
		customerPhone:     customerPhone,
		estimatedDelivery: estimatedDelivery,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackingCode(trackingCode),
		order.setCustomerName(customerName),
		order.setCustomerEmail(customerEmail),
		order.setShippingAddress(shippingAddress),
		order.setDestinationAddress(destinationAddress),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid stored status and preserves the persisted timestamps.
func RestoreOrder(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	customerName string,
	customerEmail string,
	customerPhone string,
	shippingAddress string,
	destinationAddress string,
	status Status,
	estimatedDelivery *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	createdBy *kernel.UUID,
) (*Order, error) {
	order := &Order{
		customerPhone:     customerPhone,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackingCode(trackingCode),
		order.setCustomerName(customerName),
		order.setCustomerEmail(customerEmail),
		order.setShippingAddress(shippingAddress),
		order.setDestinationAddress(destinationAddress),
		order.setStatus(status),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingCode returns the public tracking code assigned at creation.
func (o *Order) TrackingCode() kernel.TrackingCode {
	return o.trackingCode
}

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the recipient's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the recipient's phone number, empty when not given.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// ShippingAddress returns the origin address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// DestinationAddress returns the delivery destination address.
func (o *Order) DestinationAddress() string {
	return o.destinationAddress
}

// Status returns the order's current status, which always reflects the most
// recent shipment update (or pending when no updates exist).
func (o *Order) Status() Status {
	return o.status
}

// EstimatedDelivery returns the optional estimated delivery time.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modified timestamp. It advances whenever a
// shipment update is projected onto the order.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CreatedBy returns the identity that created the order, nil when unknown.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

// ApplyUpdate overwrites the order's status with the status of a newly
// appended shipment update and refreshes the last-modified timestamp.
//
// No transition validation is performed: any recognized status may follow
// any other. The status value itself must be a recognized enum value.
func (o *Order) ApplyUpdate(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.trackingCode = code
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	o.destinationAddress = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return err
		}
	}
	o.createdBy = createdBy
	return nil
}
