package commands_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPricingPolicyCommandHandler_Handle_SwitchesFutureOrdersOnly(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t)

	before := registry.Register(pizza.NewDirector(pizza.NewBuilder()).BuildBasic())
	require.InDelta(t, 100.0, before.Total(), 0.001)

	h := commands.NewSetPricingPolicyCommandHandler(registry)
	require.NoError(t, h.Handle(ctx, commands.NewSetPricingPolicyCommand(true)))

	after := registry.Register(pizza.NewDirector(pizza.NewBuilder()).BuildBasic())
	assert.InDelta(t, 90.0, after.Total(), 0.001)

	// Already-priced orders keep their totals.
	assert.InDelta(t, 100.0, before.Total(), 0.001)

	require.NoError(t, h.Handle(ctx, commands.NewSetPricingPolicyCommand(false)))
	restored := registry.Register(pizza.NewDirector(pizza.NewBuilder()).BuildBasic())
	assert.InDelta(t, 100.0, restored.Total(), 0.001)
}
