package queries

import (
	"errors"
	"time"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves all registered items.
//
// Example:
//
//	query := NewGetItemsQuery()
//	handler := NewGetItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve items: %w", err)
//	}
//
//	for _, it := range items {
//	    fmt.Printf("%s weighs %d\n", it.Name, it.Weight)
//	}
type GetItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query to retrieve all items.
// This is a parameterless query that fetches the complete item list.
func NewGetItemsQuery() GetItemsQuery {
	return GetItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetItemsQueryIsNotConstructed if validation fails.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// GetItemsQueryResponse represents item information in the read model.
type GetItemsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Weight    int
	CreatedAt time.Time
}
