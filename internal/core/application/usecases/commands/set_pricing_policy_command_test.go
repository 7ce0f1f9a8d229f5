package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetPricingPolicyCommand(t *testing.T) {
	cmd := commands.NewSetPricingPolicyCommand(true)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.Promotional())

	cmd = commands.NewSetPricingPolicyCommand(false)
	require.NoError(t, cmd.Validate())
	assert.False(t, cmd.Promotional())
}

func TestSetPricingPolicyCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.SetPricingPolicyCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSetPricingPolicyCommandIsNotConstructed)
}
