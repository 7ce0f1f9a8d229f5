package services_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func buildComposition(base string, toppings ...string) pizza.Composition {
	return pizza.NewBuilder().
		WithBase(base).
		WithSauce("Tomate").
		WithCheese("Mozzarella").
		WithCrust("Normal").
		AddToppings(toppings).
		Build()
}

func TestStandardPricing_Compute(t *testing.T) {
	policy := services.NewStandardPricing()

	t.Run("should charge base price for pizza without toppings", func(t *testing.T) {
		total := policy.Compute(buildComposition("Tradicional"))

		assert.InDelta(t, 100.0, total, 1e-9)
	})

	t.Run("should charge per topping", func(t *testing.T) {
		total := policy.Compute(buildComposition("Tradicional", "Pepperoni", "Champiñones"))

		assert.InDelta(t, 130.0, total, 1e-9)
	})

	t.Run("should charge stuffed dough surcharge", func(t *testing.T) {
		total := policy.Compute(buildComposition("Rellena"))

		assert.InDelta(t, 120.0, total, 1e-9)
	})

	t.Run("should match stuffed dough case-insensitively", func(t *testing.T) {
		for _, base := range []string{"rellena", "RELLENA", "ReLLeNa"} {
			t.Run(base, func(t *testing.T) {
				total := policy.Compute(buildComposition(base, "Pepperoni"))

				assert.InDelta(t, 135.0, total, 1e-9)
			})
		}
	})

	t.Run("should not charge seasonings", func(t *testing.T) {
		c := pizza.NewBuilder().
			WithBase("Tradicional").
			AddSeasoning("Orégano").
			AddSeasoning("Pimienta").
			Build()

		total := policy.Compute(c)

		assert.InDelta(t, 100.0, total, 1e-9)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		c := buildComposition("Rellena", "Pepperoni", "Jamón", "Piña")

		first := policy.Compute(c)
		second := policy.Compute(c)

		assert.Equal(t, first, second)
	})

	t.Run("should never be negative", func(t *testing.T) {
		cases := []pizza.Composition{
			pizza.NewBuilder().Build(),
			buildComposition(""),
			buildComposition("Rellena", "Pepperoni"),
		}

		for i, c := range cases {
			t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
				assert.GreaterOrEqual(t, policy.Compute(c), 0.0)
			})
		}
	})

	t.Run("should not mutate the composition", func(t *testing.T) {
		c := buildComposition("Tradicional", "Pepperoni")

		_ = policy.Compute(c)

		assert.Equal(t, []string{"Pepperoni"}, c.Toppings())
		assert.Equal(t, "Tradicional", c.Base())
	})
}

func TestPromotionalPricing_Compute(t *testing.T) {
	standard := services.NewStandardPricing()
	promotional := services.NewPromotionalPricing()

	t.Run("should apply ten percent discount over standard", func(t *testing.T) {
		c := buildComposition("Tradicional", "Pepperoni", "Champiñones")

		assert.InDelta(t, standard.Compute(c)*0.90, promotional.Compute(c), 1e-9)
		assert.InDelta(t, 117.0, promotional.Compute(c), 1e-9)
	})

	t.Run("should delegate stuffed dough rule to standard policy", func(t *testing.T) {
		c := buildComposition("Rellena")

		assert.InDelta(t, 108.0, promotional.Compute(c), 1e-9)
	})

	t.Run("should discount base-only pizza", func(t *testing.T) {
		c := buildComposition("Tradicional")

		assert.InDelta(t, 90.0, promotional.Compute(c), 1e-9)
	})
}
