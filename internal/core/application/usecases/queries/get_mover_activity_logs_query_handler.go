package queries

import (
	"context"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMoverActivityLogsQueryHandler retrieves one mover's transition history
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetMoverActivityLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetMoverActivityLogsQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetMoverActivityLogsQueryHandler(db *gorm.DB) GetMoverActivityLogsQueryHandler {
	return GetMoverActivityLogsQueryHandler{db: db}
}

// Handle executes the query for one mover's transition history.
// Returns an ObjectNotFoundError when the mover does not exist, and the
// records sorted newest first otherwise.
func (h GetMoverActivityLogsQueryHandler) Handle(
	ctx context.Context,
	query GetMoverActivityLogsQuery,
) ([]GetMoverActivityLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var moverCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM movers WHERE id = ?`, query.MoverID().Bytes()).
		Scan(&moverCount).Error
	if err != nil {
		return nil, err
	}
	if moverCount == 0 {
		return nil, errs.NewObjectNotFoundError("moverID", query.MoverID().String())
	}

	logs := make([]GetMoverActivityLogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			mover_id,
			action,
			created_at
		FROM activity_logs
		WHERE mover_id = ?
		ORDER BY created_at DESC
	`, query.MoverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entryIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var entry GetMoverActivityLogsQueryResponse
		var id, moverRaw uuid.UUID
		var action int

		err = rows.Scan(
			&id,
			&moverRaw,
			&action,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		moverID, idErr := kernel.UUIDFromBytes(moverRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = entryID
		entry.MoverID = moverID
		entry.Action = mover.QuestState(action).String()
		entry.ItemIDs = make([]kernel.UUID, 0)

		entryIDs = append(entryIDs, id)
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItemSnapshots(ctx, entryIDs, logs); err != nil {
		return nil, err
	}

	return logs, nil
}

// attachItemSnapshots fills in the item snapshots for the fetched records in
// a single query, preserving the order items held within each snapshot.
func (h GetMoverActivityLogsQueryHandler) attachItemSnapshots(
	ctx context.Context,
	entryIDs []uuid.UUID,
	logs []GetMoverActivityLogsQueryResponse,
) error {
	if len(entryIDs) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			activity_log_id,
			item_id
		FROM activity_log_items
		WHERE activity_log_id IN ?
		ORDER BY activity_log_id, position
	`, entryIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	byEntry := make(map[kernel.UUID][]kernel.UUID)
	for rows.Next() {
		var entryRaw, itemRaw uuid.UUID
		if err = rows.Scan(&entryRaw, &itemRaw); err != nil {
			return err
		}

		entryID, idErr := kernel.UUIDFromBytes(entryRaw[:])
		if idErr != nil {
			return idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(itemRaw[:])
		if idErr != nil {
			return idErr
		}
		byEntry[entryID] = append(byEntry[entryID], itemID)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range logs {
		if items, ok := byEntry[logs[i].ID]; ok {
			logs[i].ItemIDs = items
		}
	}

	return nil
}
