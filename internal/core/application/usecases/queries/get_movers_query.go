// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"
	"time"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var (
	ErrGetMoversQueryIsNotConstructed = errors.New(
		"GetMoversQuery must be created via NewGetMoversQuery constructor",
	)
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
	ErrLimitIsInvalid  = errors.New("limit must be greater than 0")
)

// GetMoversQuery retrieves a page of movers ranked by completed missions.
// Movers with the most finished missions come first, which answers the
// leaderboard question directly from the listing.
//
// Example:
//
//	query, err := NewGetMoversQuery(0, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid page: %w", err)
//	}
//
//	handler := NewGetMoversQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve movers: %w", err)
//	}
//
//	fmt.Printf("Showing %d of %d movers\n", len(page.Movers), page.Total)
type GetMoversQuery struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetMoversQuery creates a query for one page of the mover listing.
// Validates that the offset is not negative and the limit is positive.
func NewGetMoversQuery(offset, limit int) (GetMoversQuery, error) {
	if offset < 0 {
		return GetMoversQuery{}, fmt.Errorf("%w: %d", ErrOffsetIsInvalid, offset)
	}
	if limit <= 0 {
		return GetMoversQuery{}, fmt.Errorf("%w: %d", ErrLimitIsInvalid, limit)
	}

	return GetMoversQuery{
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMoversQueryIsNotConstructed if validation fails.
func (q GetMoversQuery) Validate() error {
	return q.guard.Validate(ErrGetMoversQueryIsNotConstructed)
}

// Offset returns the number of movers to skip.
func (q GetMoversQuery) Offset() int {
	return q.offset
}

// Limit returns the maximum number of movers to return.
func (q GetMoversQuery) Limit() int {
	return q.limit
}

// MoverReadModel represents one mover in the listing read model.
type MoverReadModel struct {
	ID                kernel.UUID
	Name              string
	WeightLimit       int
	QuestState        string
	CurrentItems      []kernel.UUID
	MissionsCompleted int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// GetMoversQueryResponse is one page of the mover listing together with the
// total number of movers in the system.
type GetMoversQueryResponse struct {
	Movers []MoverReadModel
	Total  int
}
