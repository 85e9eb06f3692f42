package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	caller := address(t, "0xclient")
	cmd, err := commands.NewCreateOrderCommand(caller)
	require.NoError(t, err)
	assert.Equal(t, caller, cmd.Caller())
}

func TestNewCreateOrderCommand_InvalidCaller(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
