package ports

import (
	"context"

	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for items.
// Items are immutable, so there is no update operation.
type ItemRepository interface {
	// Add persists a new item to storage.
	Add(ctx context.Context, item *item.Item) error

	// Get retrieves an item by its unique identifier.
	// Returns an ObjectNotFoundError when no item has the given id.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByIDs retrieves the items matching the given identifiers.
	// Unresolvable ids are simply absent from the result; callers that
	// require all ids to resolve must compare lengths.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error)
}
