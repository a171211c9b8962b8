package commands_test

import (
	"errors"
	"testing"

	"movers/internal/core/application/usecases/commands"
	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func moverOnMission(t *testing.T, itemIDs []kernel.UUID) *mover.Mover {
	t.Helper()
	m := loadedMover(t, itemIDs)
	require.NoError(t, m.StartMission())
	return m
}

func TestEndMissionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	testMover := moverOnMission(t, itemIDs)

	cmd, err := commands.NewEndMissionCommand(testMover.ID())
	require.NoError(t, err)

	moverRepo := new(MockMissionMoverRepository)
	logRepo := new(MockMissionLogRepository)
	uow := new(MockMissionUoW)

	var loggedEntry *activitylog.Entry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("Get", ctx, testMover.ID()).Return(testMover, nil).Once(),
		moverRepo.On("Update", ctx, mock.AnythingOfType("*mover.Mover")).Return(nil).Once(),
		uow.On("ActivityLogRepository").Return(logRepo).Once(),
		logRepo.On("Add", ctx, mock.AnythingOfType("*activitylog.Entry")).
			Run(func(args mock.Arguments) {
				loggedEntry = args.Get(1).(*activitylog.Entry)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndMissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, mover.Resting, testMover.QuestState())
	assert.Empty(t, testMover.CurrentItems())
	assert.Equal(t, 1, testMover.MissionsCompleted())

	// The entry snapshots the cargo after unloading, so it is empty.
	require.NotNil(t, loggedEntry)
	assert.Equal(t, mover.Resting, loggedEntry.Action())
	assert.Empty(t, loggedEntry.ItemIDs())

	moverRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestEndMissionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.EndMissionCommand{} // not constructed properly

	factory := new(MockMissionUoWFactory)
	handler := commands.NewEndMissionCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrEndMissionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestEndMissionCommandHandler_Handle_MoverNotFound(t *testing.T) {
	ctx := t.Context()

	moverID := kernel.NewUUID()
	cmd, err := commands.NewEndMissionCommand(moverID)
	require.NoError(t, err)

	moverRepo := new(MockMissionMoverRepository)
	uow := new(MockMissionUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MoverRepository").Return(moverRepo).Once()
	moverRepo.On("Get", ctx, moverID).
		Return(nil, errs.NewObjectNotFoundError("moverID", moverID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndMissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestEndMissionCommandHandler_Handle_MoverNotOnMission(t *testing.T) {
	ctx := t.Context()

	testMover := restingMover(t, 50)
	cmd, err := commands.NewEndMissionCommand(testMover.ID())
	require.NoError(t, err)

	moverRepo := new(MockMissionMoverRepository)
	uow := new(MockMissionUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MoverRepository").Return(moverRepo).Once()
	moverRepo.On("Get", ctx, testMover.ID()).Return(testMover, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndMissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "Mover is not currently on a mission")
	assert.Equal(t, 0, testMover.MissionsCompleted())
	uow.AssertNotCalled(t, "Commit", ctx)
	moverRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestEndMissionCommandHandler_Handle_UpdateFails_NoCommit(t *testing.T) {
	ctx := t.Context()

	testMover := moverOnMission(t, []kernel.UUID{kernel.NewUUID()})
	cmd, err := commands.NewEndMissionCommand(testMover.ID())
	require.NoError(t, err)

	moverRepo := new(MockMissionMoverRepository)
	uow := new(MockMissionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("Get", ctx, testMover.ID()).Return(testMover, nil).Once(),
		moverRepo.On("Update", ctx, mock.AnythingOfType("*mover.Mover")).
			Return(errors.New("update failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndMissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update failed")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertCalled(t, "Rollback", ctx)
}
