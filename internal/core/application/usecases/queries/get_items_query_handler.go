package queries

import (
	"context"

	"movers/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemsQueryHandler retrieves all item information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for item retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all items.
// Returns a slice of item read models sorted by name.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]GetItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			weight,
			created_at
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it GetItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&it.Name,
			&it.Weight,
			&it.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		it.ID = itemID
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
