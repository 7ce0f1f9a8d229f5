package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"
)

// SetPricingPolicyCommandHandler switches the registry's active pricing
// policy. Pricing selection mutates no orders, so no snapshot is written.
type SetPricingPolicyCommandHandler struct {
	registry OrderRegistry
}

// NewSetPricingPolicyCommandHandler creates a handler for pricing policy
// selection.
func NewSetPricingPolicyCommandHandler(registry OrderRegistry) SetPricingPolicyCommandHandler {
	return SetPricingPolicyCommandHandler{registry: registry}
}

// Handle installs the promotional policy when requested, the standard
// policy otherwise.
func (h SetPricingPolicyCommandHandler) Handle(_ context.Context, cmd SetPricingPolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Promotional() {
		h.registry.SetPolicy(services.NewPromotionalPricing())
	} else {
		h.registry.SetPolicy(services.NewStandardPricing())
	}

	return nil
}
