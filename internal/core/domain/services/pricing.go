package services

import (
	"strings"

	"pizzeria/internal/core/domain/model/pizza"
)

const (
	// BasePrice is the fixed fee every pizza starts from.
	BasePrice = 100.0

	// ToppingPrice is the surcharge applied per topping. Seasonings are
	// free and never enter the price.
	ToppingPrice = 15.0

	// StuffedCrustPrice is the extra charge when the dough base is the
	// stuffed variant.
	StuffedCrustPrice = 20.0

	// PromotionDiscount is the fraction taken off the standard price by
	// the promotional policy.
	PromotionDiscount = 0.10

	// stuffedBaseName marks the dough variant that triggers the stuffed
	// surcharge. Matched case-insensitively.
	stuffedBaseName = "rellena"
)

// StandardPricing is the default pricing policy: base fee, per-topping
// surcharge, and a fixed extra for stuffed dough.
//
// Example:
//
//	policy := services.NewStandardPricing()
//	total := policy.Compute(composition) // 100 + 15 per topping
type StandardPricing struct{}

// NewStandardPricing creates the standard pricing policy.
func NewStandardPricing() StandardPricing {
	return StandardPricing{}
}

// Compute returns the standard total for the composition. An empty
// topping list yields the base-only price.
func (StandardPricing) Compute(c pizza.Composition) float64 {
	total := BasePrice

	if strings.EqualFold(c.Base(), stuffedBaseName) {
		total += StuffedCrustPrice
	}

	total += float64(c.ToppingCount()) * ToppingPrice

	return total
}

// PromotionalPricing applies a flat discount on top of the standard
// price. It delegates the base computation to StandardPricing rather than
// duplicating the rules.
type PromotionalPricing struct {
	standard StandardPricing
}

// NewPromotionalPricing creates the promotional pricing policy.
func NewPromotionalPricing() PromotionalPricing {
	return PromotionalPricing{standard: NewStandardPricing()}
}

// Compute returns the standard total reduced by PromotionDiscount.
func (p PromotionalPricing) Compute(c pizza.Composition) float64 {
	return p.standard.Compute(c) * (1 - PromotionDiscount)
}
