package commands

import (
	"context"

	"movers/internal/core/domain/model/mover"
)

// CreateMoverCommandHandler handles the business logic for mover registration.
// New movers start in the resting state with an empty cargo list.
type CreateMoverCommandHandler struct {
	uowFactory MoverUoWFactory
}

// NewCreateMoverCommandHandler creates a handler for mover registration.
// Requires a MoverUoWFactory for transactional persistence.
func NewCreateMoverCommandHandler(uowFactory MoverUoWFactory) CreateMoverCommandHandler {
	return CreateMoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mover registration command.
// Uses a transaction to ensure the mover is properly persisted or rolled
// back on error.
func (h CreateMoverCommandHandler) Handle(ctx context.Context, command CreateMoverCommand) error {
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

	moverAggregate, err := mover.NewMover(command.MoverID(), command.Name(), command.WeightLimit())
	if err != nil {
		return err
	}

	if err = uow.MoverRepository().Add(ctx, moverAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
