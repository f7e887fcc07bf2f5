package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves an order and its full update history by the
// public tracking code. This is the anonymous tracking path: the code is
// taken as an opaque string, and any code that does not resolve to an
// order — including an empty or malformed one — reads as "not found"
// rather than as a validation failure.
//
// Example:
//
//	query := NewTrackOrderQuery("SM1756600000000A1B2C")
//	handler := NewTrackOrderQueryHandler(db)
//
//	tracked, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracking lookup failed: %w", err)
//	}
//	fmt.Printf("order is %s with %d updates\n", tracked.Status, len(tracked.Updates))
type TrackOrderQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking lookup for the given code. The
// code is not validated here; resolution happens in the handler.
func NewTrackOrderQuery(trackingCode string) TrackOrderQuery {
	return TrackOrderQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingCode returns the raw tracking code being looked up.
func (q TrackOrderQuery) TrackingCode() string {
	return q.trackingCode
}

// TrackOrderQueryResponse is the public tracking read model: the order
// row plus its updates ordered by event timestamp ascending.
type TrackOrderQueryResponse struct {
	ID                 kernel.UUID
	TrackingCode       kernel.TrackingCode
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	ShippingAddress    string
	DestinationAddress string
	Status             order.Status
	EstimatedDelivery  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Updates            []ShipmentUpdateResponse
}

// ShipmentUpdateResponse represents one tracking event in a read model.
type ShipmentUpdateResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Location    string
	Status      order.Status
	Description string
	Timestamp   time.Time
}
