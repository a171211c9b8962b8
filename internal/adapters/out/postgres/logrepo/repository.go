package logrepo

import (
	"context"

	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityLogRepository implements ActivityLogRepository using GORM.
type GormActivityLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActivityLogRepository creates a new GORM activity log repository.
func NewGormActivityLogRepository(db *gorm.DB, tracker aggregateTracker) *GormActivityLogRepository {
	return &GormActivityLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends one transition record together with its item snapshot.
func (r *GormActivityLogRepository) Add(ctx context.Context, entry *activitylog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
