package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
}

func TestNewAdvanceOrderCommand_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := commands.NewAdvanceOrderCommand(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	}
}

func TestAdvanceOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AdvanceOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
}
