package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	q, err := queries.NewGetOrderQuery(7)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, int64(7), q.OrderID())
}

func TestNewGetOrderQuery_NegativeOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(-1)
	require.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	q := queries.GetOrderQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetNextOrderIDQuery(t *testing.T) {
	q := queries.NewGetNextOrderIDQuery()
	require.NoError(t, q.Validate())
}

func TestGetNextOrderIDQuery_NotConstructed(t *testing.T) {
	q := queries.GetNextOrderIDQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrGetNextOrderIDQueryIsNotConstructed)
}

func TestNewGetBalanceQuery_ValidInput(t *testing.T) {
	party, err := kernel.NewAddress("0xprovider")
	require.NoError(t, err)

	q, err := queries.NewGetBalanceQuery(party)
	require.NoError(t, err)
	assert.Equal(t, party, q.Party())
}

func TestNewGetBalanceQuery_UnconstructedParty(t *testing.T) {
	_, err := queries.NewGetBalanceQuery(kernel.Address{})
	require.Error(t, err)
}
