package item_test

import (
	"testing"

	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		it, err := item.NewItem(validID, "Wand", 3)

		require.NoError(t, err)
		assert.NotNil(t, it)
		require.NoError(t, it.Validate())
		assert.True(t, it.ID().IsEqual(validID))
		assert.Equal(t, "Wand", it.Name())
		assert.Equal(t, 3, it.Weight())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		it, err := item.NewItem(invalidID, "Wand", 3)

		require.Error(t, err)
		assert.Nil(t, it)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		it, err := item.NewItem(validID, "", 3)

		require.Error(t, err)
		assert.Nil(t, it)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		for _, weight := range []int{0, -3} {
			it, err := item.NewItem(validID, "Wand", weight)

			require.Error(t, err)
			assert.Nil(t, it)
			assert.Contains(t, err.Error(), "weight")
		}
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item is invalid", func(t *testing.T) {
		var it item.Item

		require.ErrorIs(t, it.Validate(), item.ErrItemIsNotConstructed)
	})
}

func TestItem_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	it1, err := item.NewItem(id, "Wand", 3)
	require.NoError(t, err)
	it2, err := item.NewItem(id, "Broom", 7)
	require.NoError(t, err)
	it3, err := item.NewItem(kernel.NewUUID(), "Wand", 3)
	require.NoError(t, err)

	assert.True(t, it1.IsEqual(it2))
	assert.False(t, it1.IsEqual(it3))
	assert.False(t, it1.IsEqual(nil))
}
