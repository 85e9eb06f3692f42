package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkProcessingCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewMarkProcessingCommand(address(t, "0xprovider"), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cmd.OrderID())
}

func TestNewMarkProcessingCommand_NegativeOrderID(t *testing.T) {
	_, err := commands.NewMarkProcessingCommand(address(t, "0xprovider"), -5)
	require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestMarkProcessingCommand_NotConstructed(t *testing.T) {
	cmd := commands.MarkProcessingCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrMarkProcessingCommandIsNotConstructed)
}
