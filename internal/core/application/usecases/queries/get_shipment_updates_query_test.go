package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentUpdatesQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetShipmentUpdatesQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetShipmentUpdatesQuery_UnconstructedOrderID(t *testing.T) {
	_, err := queries.NewGetShipmentUpdatesQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetShipmentUpdatesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentUpdatesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentUpdatesQueryIsNotConstructed)
}
