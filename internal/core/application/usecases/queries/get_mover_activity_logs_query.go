package queries

import (
	"errors"
	"time"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var ErrGetMoverActivityLogsQueryIsNotConstructed = errors.New(
	"GetMoverActivityLogsQuery must be created via NewGetMoverActivityLogsQuery constructor",
)

// GetMoverActivityLogsQuery retrieves the transition history of one mover,
// most recent first. Each record carries the item snapshot taken at the
// moment of the transition.
//
// Example:
//
//	query, err := NewGetMoverActivityLogsQuery(moverID)
//	if err != nil {
//	    return fmt.Errorf("invalid mover id: %w", err)
//	}
//
//	handler := NewGetMoverActivityLogsQueryHandler(db)
//	logs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve logs: %w", err)
//	}
//
//	for _, entry := range logs {
//	    fmt.Printf("%s: %s with %d items\n", entry.CreatedAt, entry.Action, len(entry.ItemIDs))
//	}
type GetMoverActivityLogsQuery struct {
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMoverActivityLogsQuery creates a query for one mover's history.
// Validates that the mover id is valid.
func NewGetMoverActivityLogsQuery(moverID kernel.UUID) (GetMoverActivityLogsQuery, error) {
	if err := moverID.Validate(); err != nil {
		return GetMoverActivityLogsQuery{}, err
	}

	return GetMoverActivityLogsQuery{
		moverID: moverID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMoverActivityLogsQueryIsNotConstructed if validation fails.
func (q GetMoverActivityLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetMoverActivityLogsQueryIsNotConstructed)
}

// MoverID returns the mover whose history is requested.
func (q GetMoverActivityLogsQuery) MoverID() kernel.UUID {
	return q.moverID
}

// GetMoverActivityLogsQueryResponse represents one transition record in the
// read model. The item snapshot is empty for mission completions.
type GetMoverActivityLogsQueryResponse struct {
	ID        kernel.UUID
	MoverID   kernel.UUID
	Action    string
	ItemIDs   []kernel.UUID
	CreatedAt time.Time
}
