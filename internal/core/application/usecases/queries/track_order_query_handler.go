package queries

import (
	"context"
	"database/sql"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler resolves a public tracking code to an order and
// its update history, reading straight from the database.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db)
//	query := NewTrackOrderQuery(code)
//
//	tracked, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown code
//	}
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for public tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle resolves the tracking code. The match against the stored code is
// exact and case-sensitive. Returns ObjectNotFound when the code is empty
// or no order carries it; the caller cannot distinguish a malformed code
// from an unknown one.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if query.TrackingCode() == "" {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("trackingCode", query.TrackingCode())
	}

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
		WHERE tracking_number = ?
	`, query.TrackingCode()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("trackingCode", query.TrackingCode())
	}

	var resp TrackOrderQueryResponse
	var id uuid.UUID
	var trackingNumber, status string
	var customerPhone sql.NullString
	var estimatedDelivery sql.NullTime

	err = rows.Scan(
		&id,
		&trackingNumber,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&customerPhone,
		&resp.ShippingAddress,
		&resp.DestinationAddress,
		&status,
		&estimatedDelivery,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return TrackOrderQueryResponse{}, idErr
	}
	resp.ID = orderID

	trackingCode, codeErr := kernel.TrackingCodeFromString(trackingNumber)
	if codeErr != nil {
		return TrackOrderQueryResponse{}, codeErr
	}
	resp.TrackingCode = trackingCode

	orderStatus, statusErr := order.StatusFromString(status)
	if statusErr != nil {
		return TrackOrderQueryResponse{}, statusErr
	}
	resp.Status = orderStatus

	resp.CustomerPhone = customerPhone.String
	if estimatedDelivery.Valid {
		eta := estimatedDelivery.Time
		resp.EstimatedDelivery = &eta
	}

	updates, updErr := fetchUpdatesForOrder(ctx, h.db, id)
	if updErr != nil {
		return TrackOrderQueryResponse{}, updErr
	}
	resp.Updates = updates

	return resp, nil
}

// fetchUpdatesForOrder reads the full update history of one order,
// ordered by event timestamp with ties broken by insertion order.
// Shared by the tracking and update-history read paths.
func fetchUpdatesForOrder(
	ctx context.Context,
	db *gorm.DB,
	orderID uuid.UUID,
) ([]ShipmentUpdateResponse, error) {
	updates := make([]ShipmentUpdateResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			location,
			status,
			description,
			timestamp
		FROM shipment_updates
		WHERE order_id = ?
		ORDER BY timestamp, seq
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var update ShipmentUpdateResponse
		var id, owner uuid.UUID
		var status string
		var description sql.NullString
		var timestamp time.Time

		err = rows.Scan(
			&id,
			&owner,
			&update.Location,
			&status,
			&description,
			&timestamp,
		)
		if err != nil {
			return nil, err
		}

		updateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		update.ID = updateID

		ownerID, ownerErr := kernel.UUIDFromBytes(owner[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		update.OrderID = ownerID

		updateStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		update.Status = updateStatus

		update.Description = description.String
		update.Timestamp = timestamp
		updates = append(updates, update)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}
