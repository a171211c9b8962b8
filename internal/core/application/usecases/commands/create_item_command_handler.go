package commands

import (
	"context"

	"movers/internal/core/domain/model/item"
)

// CreateItemCommandHandler handles the business logic for item registration.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item registration.
// Requires an ItemUoWFactory for transactional persistence.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item registration command.
// Uses a transaction to ensure the item is properly persisted or rolled
// back on error.
func (h CreateItemCommandHandler) Handle(ctx context.Context, command CreateItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newItem, err := item.NewItem(command.ItemID(), command.Name(), command.Weight())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
