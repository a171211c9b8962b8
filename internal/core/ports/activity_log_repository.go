package ports

import (
	"context"

	"movers/internal/core/domain/model/activitylog"
)

// ActivityLogRepository defines the persistence contract for the append-only
// transition audit trail. Entries are immutable: the write side only ever
// inserts, and reads happen on the query side sorted by recency.
type ActivityLogRepository interface {
	// Add appends one transition record. It is called in the same
	// transaction as the mover update it documents.
	Add(ctx context.Context, entry *activitylog.Entry) error
}
