// Package logrepo provides data transfer objects and mapping functions for the
// transition audit trail. Records are append-only, so the repository only
// ever inserts; reads happen on the query side.
package logrepo

import (
	"time"

	"movers/internal/core/domain/model/activitylog"

	"github.com/google/uuid"
)

// ActivityLogDTO represents the database structure for persisting transition
// records. The item snapshot is stored in a child table.
type ActivityLogDTO struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	MoverID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Action    int                  `gorm:"type:int;not null"`
	Items     []ActivityLogItemDTO `gorm:"foreignKey:ActivityLogID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time            `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for transition records.
func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

// ActivityLogItemDTO represents one item reference within a record's snapshot.
// The position column preserves the snapshot order.
type ActivityLogItemDTO struct {
	ActivityLogID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for snapshot item references.
func (ActivityLogItemDTO) TableName() string {
	return "activity_log_items"
}

// fromDomain converts a transition record to its database representation.
func fromDomain(entry *activitylog.Entry) ActivityLogDTO {
	entryID := entry.ID().Bytes()
	itemIDs := entry.ItemIDs()
	items := make([]ActivityLogItemDTO, 0, len(itemIDs))

	for position, itemID := range itemIDs {
		items = append(items, ActivityLogItemDTO{
			ActivityLogID: entryID,
			Position:      position,
			ItemID:        itemID.Bytes(),
		})
	}

	return ActivityLogDTO{
		ID:      entryID,
		MoverID: entry.MoverID().Bytes(),
		Action:  int(entry.Action()),
		Items:   items,
	}
}
