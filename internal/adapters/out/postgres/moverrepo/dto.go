// Package moverrepo provides data transfer objects and mapping functions for mover persistence.
// This package implements the repository pattern for the mover domain aggregate, handling
// the conversion between domain entities and database representations.
package moverrepo

import (
	"time"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"

	"github.com/google/uuid"
)

// MoverDTO represents the database structure for persisting mover aggregates.
// Maps mover domain entities to relational database tables with the carried
// item references stored in a child table.
type MoverDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"type:varchar(255);not null"`
	WeightLimit       int            `gorm:"type:int;not null"`
	QuestState        int            `gorm:"type:int;not null"`
	MissionsCompleted int            `gorm:"type:int;not null"`
	CurrentItems      []MoverItemDTO `gorm:"foreignKey:MoverID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for mover entities.
// Overrides GORM's default naming convention to use "movers" instead of "mover_dtos".
func (MoverDTO) TableName() string {
	return "movers"
}

// MoverItemDTO represents one carried item reference within a mover's cargo.
// The position column preserves the order in which items were loaded.
type MoverItemDTO struct {
	MoverID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for carried item references.
func (MoverItemDTO) TableName() string {
	return "mover_items"
}

// fromDomain converts a mover domain aggregate to its database representation.
// Maps the cargo list to child rows with their load positions.
func fromDomain(aggregate *mover.Mover) MoverDTO {
	moverID := aggregate.ID().Bytes()
	items := aggregate.CurrentItems()
	currentItems := make([]MoverItemDTO, 0, len(items))

	for position, itemID := range items {
		currentItems = append(currentItems, MoverItemDTO{
			MoverID:  moverID,
			Position: position,
			ItemID:   itemID.Bytes(),
		})
	}

	return MoverDTO{
		ID:                moverID,
		Name:              aggregate.Name(),
		WeightLimit:       aggregate.WeightLimit(),
		QuestState:        int(aggregate.QuestState()),
		MissionsCompleted: aggregate.MissionsCompleted(),
		CurrentItems:      currentItems,
	}
}

// toDomain converts a database DTO to a mover domain aggregate.
// Reconstructs the complete aggregate including cargo using RestoreMover.
func toDomain(dto MoverDTO) (*mover.Mover, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currentItems := make([]kernel.UUID, 0, len(dto.CurrentItems))
	for _, itemDto := range dto.CurrentItems {
		itemID, itemErr := kernel.UUIDFromBytes(itemDto.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		currentItems = append(currentItems, itemID)
	}

	return mover.RestoreMover(
		id,
		dto.Name,
		dto.WeightLimit,
		mover.QuestState(dto.QuestState),
		currentItems,
		dto.MissionsCompleted,
	)
}
