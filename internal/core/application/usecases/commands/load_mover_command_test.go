package commands_test

import (
	"testing"

	"movers/internal/core/application/usecases/commands"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadMoverCommand_ValidInput(t *testing.T) {
	moverID := kernel.NewUUID()
	itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewLoadMoverCommand(moverID, itemIDs)
	require.NoError(t, err)
	assert.Equal(t, moverID, cmd.MoverID())
	assert.Equal(t, itemIDs, cmd.ItemIDs())
}

func TestNewLoadMoverCommand_DuplicateItemIDsCollapse(t *testing.T) {
	wandID := kernel.NewUUID()
	cauldronID := kernel.NewUUID()

	cmd, err := commands.NewLoadMoverCommand(
		kernel.NewUUID(),
		[]kernel.UUID{wandID, cauldronID, wandID},
	)
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{wandID, cauldronID}, cmd.ItemIDs(),
		"repeated ids keep their first position only")
}

func TestNewLoadMoverCommand_InvalidMoverID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewLoadMoverCommand(invalidID, []kernel.UUID{kernel.NewUUID()})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewLoadMoverCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewLoadMoverCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, mover.ErrItemsAreRequired)
}

func TestNewLoadMoverCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewLoadMoverCommand(kernel.NewUUID(), []kernel.UUID{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestLoadMoverCommand_ItemIDsReturnsCopy(t *testing.T) {
	itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	cmd, err := commands.NewLoadMoverCommand(kernel.NewUUID(), itemIDs)
	require.NoError(t, err)

	got := cmd.ItemIDs()
	got[0] = kernel.NewUUID()
	assert.Equal(t, itemIDs, cmd.ItemIDs())
}

func TestLoadMoverCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.LoadMoverCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLoadMoverCommandIsNotConstructed)
}
