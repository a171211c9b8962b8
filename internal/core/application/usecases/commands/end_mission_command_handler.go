package commands

import (
	"context"

	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/kernel"
)

// EndMissionCommandHandler orchestrates the OnMission -> Resting transition.
// Unloads the cargo, bumps the completed mission counter, and writes the
// audit entry. The entry snapshots the item list after unloading, so a
// completed mission is always recorded with an empty cargo.
type EndMissionCommandHandler struct {
	uowFactory MissionUoWFactory
}

// NewEndMissionCommandHandler creates a handler for completing missions.
func NewEndMissionCommandHandler(uowFactory MissionUoWFactory) EndMissionCommandHandler {
	return EndMissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the end mission command.
// The mover update and the audit entry are written in the same transaction.
func (h EndMissionCommandHandler) Handle(ctx context.Context, command EndMissionCommand) error {
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

	moverRepo := uow.MoverRepository()

	moverAggregate, err := moverRepo.Get(ctx, command.MoverID())
	if err != nil {
		return err
	}

	if err = moverAggregate.EndMission(); err != nil {
		return err
	}

	entry, err := activitylog.NewEntry(
		kernel.NewUUID(),
		moverAggregate.ID(),
		moverAggregate.QuestState(),
		moverAggregate.CurrentItems(),
	)
	if err != nil {
		return err
	}

	if err = moverRepo.Update(ctx, moverAggregate); err != nil {
		return err
	}

	if err = uow.ActivityLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
