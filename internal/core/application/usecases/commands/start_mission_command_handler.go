package commands

import (
	"context"

	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/kernel"
)

// StartMissionCommandHandler orchestrates the Loading -> OnMission transition.
// The mover keeps its cargo for the duration of the mission, and the audit
// entry records the full item snapshot that departed.
type StartMissionCommandHandler struct {
	uowFactory MissionUoWFactory
}

// NewStartMissionCommandHandler creates a handler for starting missions.
func NewStartMissionCommandHandler(uowFactory MissionUoWFactory) StartMissionCommandHandler {
	return StartMissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start mission command.
// The mover update and the audit entry are written in the same transaction.
func (h StartMissionCommandHandler) Handle(ctx context.Context, command StartMissionCommand) error {
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

	if err = moverAggregate.StartMission(); err != nil {
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
