package commands_test

import (
	"context"
	"errors"
	"testing"

	"movers/internal/core/application/usecases/commands"
	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemUoW struct{ mock.Mock }

func (m *MockItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, "Cauldron", 30)
	require.NoError(t, err)

	itemRepo := new(MockMissionItemRepository)
	uow := new(MockItemUoW)

	var addedItem *item.Item
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).
			Run(func(args mock.Arguments) {
				addedItem = args.Get(1).(*item.Item)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, addedItem)
	assert.Equal(t, itemID, addedItem.ID())
	assert.Equal(t, "Cauldron", addedItem.Name())
	assert.Equal(t, 30, addedItem.Weight())

	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateItemCommand{} // not constructed properly

	factory := new(MockItemUoWFactory)
	handler := commands.NewCreateItemCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateItemCommand(kernel.NewUUID(), "Cauldron", 30)
	require.NoError(t, err)

	itemRepo := new(MockMissionItemRepository)
	uow := new(MockItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
}
