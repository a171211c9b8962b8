package queries

import (
	"context"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMoversQueryHandler retrieves the mover listing from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetMoversQueryHandler(db)
//	query, _ := NewGetMoversQuery(0, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get movers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d movers\n", page.Total)
type GetMoversQueryHandler struct {
	db *gorm.DB
}

// NewGetMoversQueryHandler creates a handler for mover listing queries.
// Requires a GORM database connection for query execution.
func NewGetMoversQueryHandler(db *gorm.DB) GetMoversQueryHandler {
	return GetMoversQueryHandler{db: db}
}

// Handle executes the query for one page of the mover listing.
// Movers are sorted by completed missions, most first, with the name as a
// stable tie breaker. Converts database types to domain types for consistency.
func (h GetMoversQueryHandler) Handle(
	ctx context.Context,
	query GetMoversQuery,
) (GetMoversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMoversQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM movers`).Scan(&total).Error; err != nil {
		return GetMoversQueryResponse{}, err
	}

	movers := make([]MoverReadModel, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			weight_limit,
			quest_state,
			missions_completed,
			created_at,
			updated_at
		FROM movers
		ORDER BY missions_completed DESC, name
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return GetMoversQueryResponse{}, err
	}
	defer rows.Close()

	pageIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var readModel MoverReadModel
		var id uuid.UUID
		var questState int

		err = rows.Scan(
			&id,
			&readModel.Name,
			&readModel.WeightLimit,
			&questState,
			&readModel.MissionsCompleted,
			&readModel.CreatedAt,
			&readModel.UpdatedAt,
		)
		if err != nil {
			return GetMoversQueryResponse{}, err
		}

		moverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetMoversQueryResponse{}, idErr
		}
		readModel.ID = moverID
		readModel.QuestState = mover.QuestState(questState).String()
		readModel.CurrentItems = make([]kernel.UUID, 0)

		pageIDs = append(pageIDs, id)
		movers = append(movers, readModel)
	}

	if err = rows.Err(); err != nil {
		return GetMoversQueryResponse{}, err
	}

	if err = h.attachCurrentItems(ctx, pageIDs, movers); err != nil {
		return GetMoversQueryResponse{}, err
	}

	return GetMoversQueryResponse{Movers: movers, Total: int(total)}, nil
}

// attachCurrentItems fills in the carried item references for the page in a
// single query, preserving the load order of each mover's cargo.
func (h GetMoversQueryHandler) attachCurrentItems(
	ctx context.Context,
	pageIDs []uuid.UUID,
	movers []MoverReadModel,
) error {
	if len(pageIDs) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mover_id,
			item_id
		FROM mover_items
		WHERE mover_id IN ?
		ORDER BY mover_id, position
	`, pageIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	byMover := make(map[kernel.UUID][]kernel.UUID)
	for rows.Next() {
		var moverRaw, itemRaw uuid.UUID
		if err = rows.Scan(&moverRaw, &itemRaw); err != nil {
			return err
		}

		moverID, idErr := kernel.UUIDFromBytes(moverRaw[:])
		if idErr != nil {
			return idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(itemRaw[:])
		if idErr != nil {
			return idErr
		}
		byMover[moverID] = append(byMover[moverID], itemID)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range movers {
		if items, ok := byMover[movers[i].ID]; ok {
			movers[i].CurrentItems = items
		}
	}

	return nil
}
