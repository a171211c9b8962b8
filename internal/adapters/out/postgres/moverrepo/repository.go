package moverrepo

import (
	"context"
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMoverRepository implements MoverRepository using GORM.
type GormMoverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoverRepository creates a new GORM mover repository.
func NewGormMoverRepository(db *gorm.DB, tracker aggregateTracker) *GormMoverRepository {
	return &GormMoverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mover to the database.
func (r *GormMoverRepository) Add(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing mover to the database, replacing its cargo rows.
// The cargo child rows are rewritten wholesale because a transition may both
// remove and reorder references, which association saves do not handle.
func (r *GormMoverRepository) Update(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Omit("CurrentItems", "CreatedAt").Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("mover_id = ?", dto.ID).
		Delete(&MoverItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.CurrentItems) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.CurrentItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mover by ID with its cargo in load order.
// The mover row is selected FOR UPDATE, so concurrent transitions running in
// their own transactions serialize on the row instead of racing on a stale
// read. Outside a transaction the lock only spans the statement.
func (r *GormMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MoverDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("CurrentItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mover", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
