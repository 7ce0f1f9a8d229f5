package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Tradicional", "Tomate", "Mozzarella", "Normal",
		[]string{"Pepperoni"}, []string{"Orégano"})
	require.NoError(t, err)
	assert.Equal(t, "Tradicional", cmd.Base())
	assert.Equal(t, "Tomate", cmd.Sauce())
	assert.Equal(t, "Mozzarella", cmd.Cheese())
	assert.Equal(t, "Normal", cmd.Crust())
	assert.Equal(t, []string{"Pepperoni"}, cmd.Toppings())
	assert.Equal(t, []string{"Orégano"}, cmd.Seasonings())
}

func TestNewCreateOrderCommand_EmptyLists(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Tradicional", "Tomate", "Mozzarella", "Normal", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Toppings())
	assert.Empty(t, cmd.Seasonings())
}

func TestNewCreateOrderCommand_EmptyBase(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "Tomate", "Mozzarella", "Normal", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBaseIsRequired)
}

func TestNewCreateOrderCommand_EmptySauce(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Tradicional", "", "Mozzarella", "Normal", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSauceIsRequired)
}

func TestNewCreateOrderCommand_EmptyCheese(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Tradicional", "Tomate", "", "Normal", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCheeseIsRequired)
}

func TestNewCreateOrderCommand_EmptyCrust(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Tradicional", "Tomate", "Mozzarella", "", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCrustIsRequired)
}

func TestNewCreateOrderCommand_CollectsAllMissingFields(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "", "Mozzarella", "Normal", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBaseIsRequired)
	assert.ErrorIs(t, err, commands.ErrSauceIsRequired)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
