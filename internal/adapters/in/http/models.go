package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the request body for creating an order.
type NewOrderRequest struct {
	CustomerName       string     `json:"customerName"`
	CustomerEmail      string     `json:"customerEmail"`
	CustomerPhone      string     `json:"customerPhone,omitempty"`
	ShippingAddress    string     `json:"shippingAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	EstimatedDelivery  *time.Time `json:"estimatedDelivery,omitempty"`
}

// NewShipmentUpdateRequest is the request body for appending a tracking
// event to an order.
type NewShipmentUpdateRequest struct {
	Location    string `json:"location"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID                 string     `json:"id"`
	TrackingNumber     string     `json:"trackingNumber"`
	CustomerName       string     `json:"customerName"`
	CustomerEmail      string     `json:"customerEmail"`
	CustomerPhone      string     `json:"customerPhone,omitempty"`
	ShippingAddress    string     `json:"shippingAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	Status             string     `json:"status"`
	EstimatedDelivery  *time.Time `json:"estimatedDelivery,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ShipmentUpdate is the JSON representation of one tracking event.
type ShipmentUpdate struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackingResponse is the public tracking payload: the order plus its
// full update history, oldest event first.
type TrackingResponse struct {
	Order   Order            `json:"order"`
	Updates []ShipmentUpdate `json:"updates"`
}

// OrderCreatedResponse wraps a freshly created order.
type OrderCreatedResponse struct {
	Order Order `json:"order"`
}

// OrdersResponse wraps the order list.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// ShipmentUpdatesResponse wraps one order's update history.
type ShipmentUpdatesResponse struct {
	Updates []ShipmentUpdate `json:"updates"`
}

// ShipmentUpdateCreatedResponse acknowledges an appended update.
type ShipmentUpdateCreatedResponse struct {
	Update  ShipmentUpdate `json:"update"`
	Message string         `json:"message"`
}
