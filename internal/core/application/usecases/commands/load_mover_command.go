package commands

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/guard"
)

var ErrLoadMoverCommandIsNotConstructed = errors.New(
	"LoadMoverCommand must be created via NewLoadMoverCommand constructor",
)

// LoadMoverCommand represents a request to load cargo onto a resting mover.
// Carries the target mover id and the ordered list of item references to load.
//
// Example:
//
//	cmd, err := NewLoadMoverCommand(moverID, itemIDs)
//	if err != nil {
//	    return fmt.Errorf("invalid load request: %w", err)
//	}
//
//	handler := NewLoadMoverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // NotFound, CapacityExceeded, or InvalidState
//	    return err
//	}
type LoadMoverCommand struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadMoverCommand creates a command to load items onto a mover.
// Validates that the mover id is valid and that at least one valid item id
// is provided. Repeated item ids collapse to their first occurrence, so an
// item is carried and weighed once.
func NewLoadMoverCommand(moverID kernel.UUID, itemIDs []kernel.UUID) (LoadMoverCommand, error) {
	command := LoadMoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoverID(moverID),
		command.setItemIDs(itemIDs),
	); err != nil {
		return LoadMoverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadMoverCommandIsNotConstructed if validation fails.
func (c LoadMoverCommand) Validate() error {
	return c.guard.Validate(ErrLoadMoverCommandIsNotConstructed)
}

// MoverID returns the target mover id from the command.
func (c LoadMoverCommand) MoverID() kernel.UUID {
	return c.moverID
}

// ItemIDs returns the ordered item references from the command.
func (c LoadMoverCommand) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

func (c *LoadMoverCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}

func (c *LoadMoverCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return mover.ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(itemIDs))
	deduped := make([]kernel.UUID, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[itemID]; ok {
			continue
		}
		seen[itemID] = struct{}{}
		deduped = append(deduped, itemID)
	}

	c.itemIDs = deduped
	return nil
}
