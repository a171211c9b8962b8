package queries_test

import (
	"testing"

	"movers/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetItemsQuery_Validate(t *testing.T) {
	query := queries.NewGetItemsQuery()
	require.NoError(t, query.Validate())
}

func TestGetItemsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetItemsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetItemsQueryIsNotConstructed)
}
