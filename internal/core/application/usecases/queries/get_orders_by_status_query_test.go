package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_CanonicalToken(t *testing.T) {
	query := queries.NewGetOrdersByStatusQuery("in_transit")
	require.NoError(t, query.Validate())
	assert.Equal(t, fulfillment.InTransit, query.Status())
}

func TestNewGetOrdersByStatusQuery_LegacySpelling(t *testing.T) {
	query := queries.NewGetOrdersByStatusQuery("  Sedang Dikirim ")
	require.NoError(t, query.Validate())
	assert.Equal(t, fulfillment.InTransit, query.Status())
}

func TestNewGetOrdersByStatusQuery_UnknownTokenFallsBack(t *testing.T) {
	query := queries.NewGetOrdersByStatusQuery("definitely not a status")
	require.NoError(t, query.Validate())
	assert.Equal(t, fulfillment.AwaitingProcessing, query.Status())
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
