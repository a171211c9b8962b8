// Package ports defines repository and unit-of-work interfaces for the movers
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
)

// MoverRepository defines the persistence contract for mover aggregates.
type MoverRepository interface {
	// Add persists a new mover aggregate to storage.
	// The mover must be valid and not already exist in the repository.
	Add(ctx context.Context, mover *mover.Mover) error

	// Update persists changes to an existing mover aggregate, including its
	// current item references.
	// The mover must exist in the repository and be valid.
	Update(ctx context.Context, mover *mover.Mover) error

	// Get retrieves a mover aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no mover has the given id.
	//
	// When called inside an active unit-of-work transaction the mover row is
	// locked for update, so concurrent lifecycle transitions on the same
	// mover serialize at the store rather than racing on a stale read.
	Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error)
}
