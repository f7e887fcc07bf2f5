package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// trackingCodeAttempts bounds the retry loop when a freshly generated
// tracking code collides with an existing row. The code embeds the current
// millisecond plus five random characters, so a second collision in a row
// is effectively impossible.
const trackingCodeAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the public tracking code, builds the order in pending status,
// and persists it transactionally.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(
//	    "Jane Doe", "jane@x.com", "", "1 Main St", "2 Oak Ave", nil, callerID,
//	)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s tracked as %s", created.ID(), created.TrackingCode())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// order, including its generated identifier and tracking code.
//
// The tracking code's uniqueness is backed by a database constraint. When
// an insert is rejected as a duplicate, the handler regenerates the code
// and retries in a fresh transaction, up to trackingCodeAttempts times.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range trackingCodeAttempts {
		createdBy := cmd.CreatedBy()
		newOrder, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.GenerateTrackingCode(),
			cmd.CustomerName(),
			cmd.CustomerEmail(),
			cmd.CustomerPhone(),
			cmd.ShippingAddress(),
			cmd.DestinationAddress(),
			cmd.EstimatedDelivery(),
			&createdBy,
			time.Now().UTC(),
		)
		if err != nil {
			return nil, err
		}

		if err = h.persist(ctx, newOrder); err == nil {
			return newOrder, nil
		} else if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		} else {
			lastErr = err
		}
	}

	return nil, lastErr
}

// persist writes the order in its own transaction so that a rejected
// insert leaves nothing behind before a retry.
func (h *CreateOrderCommandHandler) persist(ctx context.Context, newOrder *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
