package queries

import (
	"context"
	"database/sql"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list from the
// database. Uses direct SQL queries for the read side of the CQRS split.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			customer_name,
			customer_email,
			customer_phone,
			shipping_address,
			destination_address,
			status,
			estimated_delivery,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var trackingNumber, status string
		var customerPhone sql.NullString
		var estimatedDelivery sql.NullTime

		err = rows.Scan(
			&id,
			&trackingNumber,
			&orderResp.CustomerName,
			&orderResp.CustomerEmail,
			&customerPhone,
			&orderResp.ShippingAddress,
			&orderResp.DestinationAddress,
			&status,
			&estimatedDelivery,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		trackingCode, codeErr := kernel.TrackingCodeFromString(trackingNumber)
		if codeErr != nil {
			return nil, codeErr
		}
		orderResp.TrackingCode = trackingCode

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = orderStatus

		orderResp.CustomerPhone = customerPhone.String
		if estimatedDelivery.Valid {
			eta := estimatedDelivery.Time
			orderResp.EstimatedDelivery = &eta
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
