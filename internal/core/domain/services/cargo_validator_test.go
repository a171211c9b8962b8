package services_test

import (
	"testing"

	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/services"
	"movers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T, weights ...int) []*item.Item {
	t.Helper()

	items := make([]*item.Item, 0, len(weights))
	for _, w := range weights {
		it, err := item.NewItem(kernel.NewUUID(), "Cargo", w)
		require.NoError(t, err)
		items = append(items, it)
	}
	return items
}

func TestCargoValidator_Validate(t *testing.T) {
	validator := services.NewCargoValidator()

	t.Run("should accept total weight below the limit", func(t *testing.T) {
		err := validator.Validate(makeItems(t, 30, 40), 100)

		require.NoError(t, err)
	})

	t.Run("should accept total weight exactly at the limit", func(t *testing.T) {
		err := validator.Validate(makeItems(t, 30, 20), 50)

		require.NoError(t, err)
	})

	t.Run("should accept an empty item set", func(t *testing.T) {
		err := validator.Validate(nil, 50)

		require.NoError(t, err)
	})

	t.Run("should reject total weight above the limit with both numbers in the message", func(t *testing.T) {
		err := validator.Validate(makeItems(t, 30, 40), 50)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, "Total weight of items (70) exceeds the allowed limit of 50", err.Error())

		var capacityErr *errs.CapacityExceededError
		require.ErrorAs(t, err, &capacityErr)
		assert.Equal(t, 70, capacityErr.TotalWeight)
		assert.Equal(t, 50, capacityErr.WeightLimit)
	})

	t.Run("should reject a single item heavier than the limit", func(t *testing.T) {
		err := validator.Validate(makeItems(t, 51), 50)

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Contains(t, err.Error(), "51")
		assert.Contains(t, err.Error(), "50")
	})

	t.Run("should reject improperly constructed items", func(t *testing.T) {
		err := validator.Validate([]*item.Item{{}}, 50)

		require.ErrorIs(t, err, item.ErrItemIsNotConstructed)
	})
}
