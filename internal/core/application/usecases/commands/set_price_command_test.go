package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetPriceCommand_ValidInput(t *testing.T) {
	caller := address(t, "0xprovider")
	cmd, err := commands.NewSetPriceCommand(caller, 3, money(t, 500), money(t, 300))
	require.NoError(t, err)
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, int64(500), cmd.FulfillmentFee().Amount())
	assert.Equal(t, int64(300), cmd.ShipmentFee().Amount())
}

func TestNewSetPriceCommand_NegativeOrderID(t *testing.T) {
	_, err := commands.NewSetPriceCommand(address(t, "0xprovider"), -1, money(t, 500), money(t, 300))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestNewSetPriceCommand_UnconstructedFee(t *testing.T) {
	_, err := commands.NewSetPriceCommand(address(t, "0xprovider"), 0, kernel.Money{}, money(t, 300))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestNewSetPriceCommand_ZeroFeesAllowed(t *testing.T) {
	_, err := commands.NewSetPriceCommand(address(t, "0xprovider"), 0, money(t, 0), money(t, 0))
	require.NoError(t, err)
}
