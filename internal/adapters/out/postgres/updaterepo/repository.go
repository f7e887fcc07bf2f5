package updaterepo

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentUpdateRepository implements ShipmentUpdateRepository using GORM.
type GormShipmentUpdateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentUpdateRepository creates a new GORM shipment update repository.
func NewGormShipmentUpdateRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentUpdateRepository {
	return &GormShipmentUpdateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new shipment update to the log. The owning order row is
// never touched through the association.
func (r *GormShipmentUpdateRepository) Add(ctx context.Context, update *shipment.ShipmentUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	dto := fromDomain(update)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(update.ID(), update)
	return nil
}

// GetAllForOrder retrieves every update belonging to the given order,
// ordered by event timestamp with ties broken by insertion order. Returns
// an empty slice when the order has no updates or does not exist; callers
// that must distinguish the two check the order first.
func (r *GormShipmentUpdateRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*shipment.ShipmentUpdate, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentUpdateDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("timestamp, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	updates := make([]*shipment.ShipmentUpdate, 0, len(dtos))
	for _, dto := range dtos {
		update, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		updates = append(updates, update)
	}

	return updates, nil
}
