package activitylog

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is an immutable record of one mover state transition. Exactly one
// entry is produced per successful transition; failed transitions produce
// none. Entries are append-only: they are never updated or deleted and
// together form the permanent history of a mover.
//
// The action mirrors the target state of the transition just performed
// (Loading, OnMission, or Resting), and the items field snapshots the item
// references involved at the moment the entry was written. For a mission
// completion the snapshot is taken after the mover's cargo was cleared and
// is therefore empty.
type Entry struct {
	// id uniquely identifies the log entry
	id kernel.UUID
	// moverID references the mover that transitioned
	moverID kernel.UUID
	// action is the target state of the performed transition
	action mover.QuestState
	// itemIDs snapshots the item references involved in the transition
	itemIDs []kernel.UUID
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewEntry creates a log entry for a just-performed transition.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - moverID: The mover that transitioned
//   - action: The target state of the transition (must be a valid state)
//   - itemIDs: The item references involved; may be empty
func NewEntry(id, moverID kernel.UUID, action mover.QuestState, itemIDs []kernel.UUID) (*Entry, error) {
	entry := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setMoverID(moverID),
		entry.setAction(action),
		entry.setItemIDs(itemIDs),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreEntry reconstructs a log entry from persistent storage.
// Entries are immutable, so restoration applies the same validation as creation.
func RestoreEntry(id, moverID kernel.UUID, action mover.QuestState, itemIDs []kernel.UUID) (*Entry, error) {
	return NewEntry(id, moverID, action, itemIDs)
}

// Validate checks if the Entry was properly constructed via NewEntry.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the unique identifier of the entry.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// MoverID returns the identifier of the mover that transitioned.
func (e *Entry) MoverID() kernel.UUID {
	return e.moverID
}

// Action returns the target state of the recorded transition.
func (e *Entry) Action() mover.QuestState {
	return e.action
}

// ItemIDs returns the snapshot of item references involved in the transition.
// The returned slice is a copy to prevent external modification.
func (e *Entry) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(e.itemIDs))
	copy(out, e.itemIDs)
	return out
}

// setID sets the entry's unique identifier with validation.
func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	e.id = id
	return nil
}

// setMoverID sets the mover reference with validation.
func (e *Entry) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	e.moverID = moverID
	return nil
}

// setAction sets the recorded action with validation.
func (e *Entry) setAction(action mover.QuestState) error {
	if err := action.Validate(); err != nil {
		return err
	}

	e.action = action
	return nil
}

// setItemIDs sets the item snapshot with validation. An empty snapshot is
// legal: mission completions log the cargo list after it was cleared.
func (e *Entry) setItemIDs(itemIDs []kernel.UUID) error {
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	e.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(e.itemIDs, itemIDs)
	return nil
}
