package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrSetPricingPolicyCommandIsNotConstructed = errors.New(
	"SetPricingPolicyCommand must be created via NewSetPricingPolicyCommand constructor",
)

// SetPricingPolicyCommand represents a request to switch the pricing
// policy applied to newly registered orders. Existing orders keep the
// totals they were priced with.
type SetPricingPolicyCommand struct {
	promotional bool

	guard guard.ConstructorGuard
}

// NewSetPricingPolicyCommand creates a command selecting promotional or
// standard pricing.
func NewSetPricingPolicyCommand(promotional bool) SetPricingPolicyCommand {
	return SetPricingPolicyCommand{
		promotional: promotional,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SetPricingPolicyCommand) Validate() error {
	return c.guard.Validate(ErrSetPricingPolicyCommandIsNotConstructed)
}

// Promotional reports whether promotional pricing should be active.
func (c SetPricingPolicyCommand) Promotional() bool {
	return c.promotional
}
