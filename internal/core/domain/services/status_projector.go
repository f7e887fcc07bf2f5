package services

import (
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
)

// StatusProjector propagates a shipment update's status onto its owning
// order. The projection is "last write wins": whatever status the latest
// appended update carries becomes the order's status, with no transition
// rules in between.
//
// The interface exists as a seam. A future implementation could reject
// nonsensical sequences (say, "pending" after "delivered") without the
// update-append handler changing at all.
type StatusProjector interface {
	// Project applies the update's status onto the order and refreshes the
	// order's last-modified timestamp. The update must belong to the order.
	Project(order *order.Order, update *shipment.ShipmentUpdate) error
}

// NewStatusProjector creates the default projector.
func NewStatusProjector() StatusProjector {
	return lastWriteWinsProjector{}
}

// lastWriteWinsProjector is the default, rule-free projection.
type lastWriteWinsProjector struct{}

// Project copies the update's status onto the order. The order's
// last-modified timestamp is set to the update's event time so that
// read-your-writes holds immediately after the append commits.
func (lastWriteWinsProjector) Project(o *order.Order, update *shipment.ShipmentUpdate) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := update.Validate(); err != nil {
		return err
	}

	if !update.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("update does not belong to order")
	}

	return o.ApplyUpdate(update.Status(), update.Timestamp())
}
