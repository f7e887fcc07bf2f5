package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
)

// AddShipmentUpdateCommandHandler appends a tracking event to an order's
// update log and projects the event's status onto the order.
//
// The two writes — insert the update row, rewrite the order's status and
// last-modified timestamp — happen inside one transaction, so a failure
// after the insert can never leave the order's projected status stale
// relative to its log. The order row is read with a row-level lock, which
// serializes concurrent appends against the same order: the status that
// sticks is always the one from the append that committed last.
type AddShipmentUpdateCommandHandler struct {
	uowFactory ShipmentUoWFactory
	projector  services.StatusProjector
}

// NewAddShipmentUpdateCommandHandler creates a handler for update appends.
// Requires a ShipmentUoWFactory for transactional persistence and the
// StatusProjector that propagates the update's status onto the order.
func NewAddShipmentUpdateCommandHandler(
	uowFactory ShipmentUoWFactory,
	projector services.StatusProjector,
) AddShipmentUpdateCommandHandler {
	return AddShipmentUpdateCommandHandler{
		uowFactory: uowFactory,
		projector:  projector,
	}
}

// Handle processes the append command and returns the created update.
// Fails with ObjectNotFound when the order does not exist; nothing is
// persisted in that case.
func (h *AddShipmentUpdateCommandHandler) Handle(
	ctx context.Context,
	cmd AddShipmentUpdateCommand,
) (*shipment.ShipmentUpdate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	createdBy := cmd.CreatedBy()
	update, err := shipment.NewShipmentUpdate(
		kernel.NewUUID(),
		trackedOrder.ID(),
		cmd.Location(),
		cmd.Status(),
		cmd.Description(),
		time.Now().UTC(),
		&createdBy,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentUpdateRepository().Add(ctx, update); err != nil {
		return nil, err
	}

	if err = h.projector.Project(trackedOrder, update); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, trackedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return update, nil
}
