// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// Items are immutable records, so the repository only ever inserts and reads.
package itemrepo

import (
	"time"

	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting items.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Weight    int       `gorm:"type:int;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items" instead of "item_dtos".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain entity to its database representation.
func fromDomain(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:     it.ID().Bytes(),
		Name:   it.Name(),
		Weight: it.Weight(),
	}
}

// toDomain converts a database DTO to an item domain entity.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, dto.Weight)
}
