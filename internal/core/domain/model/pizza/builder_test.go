package pizza_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("should build composition with all choices", func(t *testing.T) {
		c := pizza.NewBuilder().
			WithBase("Tradicional").
			WithSauce("Tomate").
			WithCheese("Mozzarella").
			WithCrust("Normal").
			AddTopping("Pepperoni").
			AddTopping("Champiñones").
			AddSeasoning("Orégano").
			Build()

		assert.Equal(t, "Tradicional", c.Base())
		assert.Equal(t, "Tomate", c.Sauce())
		assert.Equal(t, "Mozzarella", c.Cheese())
		assert.Equal(t, "Normal", c.Crust())
		assert.Equal(t, []string{"Pepperoni", "Champiñones"}, c.Toppings())
		assert.Equal(t, []string{"Orégano"}, c.Seasonings())
		assert.Equal(t, 2, c.ToppingCount())
	})

	t.Run("should build empty composition", func(t *testing.T) {
		c := pizza.NewBuilder().Build()

		assert.Empty(t, c.Base())
		assert.Empty(t, c.Sauce())
		assert.Empty(t, c.Cheese())
		assert.Empty(t, c.Crust())
		assert.Empty(t, c.Toppings())
		assert.Empty(t, c.Seasonings())
	})

	t.Run("should trim field values", func(t *testing.T) {
		c := pizza.NewBuilder().
			WithBase("  Rellena  ").
			WithSauce(" BBQ ").
			Build()

		assert.Equal(t, "Rellena", c.Base())
		assert.Equal(t, "BBQ", c.Sauce())
	})

	t.Run("should drop blank toppings and seasonings", func(t *testing.T) {
		c := pizza.NewBuilder().
			AddTopping("Pepperoni").
			AddTopping("   ").
			AddTopping("").
			AddSeasoning("\t").
			AddSeasoning("Albahaca").
			Build()

		assert.Equal(t, []string{"Pepperoni"}, c.Toppings())
		assert.Equal(t, []string{"Albahaca"}, c.Seasonings())
	})

	t.Run("should add lists preserving order", func(t *testing.T) {
		c := pizza.NewBuilder().
			AddToppings([]string{"Jamón", "", "Piña"}).
			AddSeasonings([]string{"Orégano", "Pimienta"}).
			Build()

		assert.Equal(t, []string{"Jamón", "Piña"}, c.Toppings())
		assert.Equal(t, []string{"Orégano", "Pimienta"}, c.Seasonings())
	})
}

func TestBuilder_Immutability(t *testing.T) {
	t.Run("source slice mutation does not affect built composition", func(t *testing.T) {
		toppings := []string{"Pepperoni", "Champiñones"}
		b := pizza.NewBuilder().AddToppings(toppings)

		c := b.Build()
		toppings[0] = "Anchoas"

		assert.Equal(t, []string{"Pepperoni", "Champiñones"}, c.Toppings())
	})

	t.Run("builder reuse after Build does not alias earlier composition", func(t *testing.T) {
		b := pizza.NewBuilder().AddTopping("Pepperoni")

		first := b.Build()
		b.AddTopping("Jamón")
		second := b.Build()

		assert.Equal(t, []string{"Pepperoni"}, first.Toppings())
		assert.Equal(t, []string{"Pepperoni", "Jamón"}, second.Toppings())
	})

	t.Run("accessor result mutation does not leak into composition", func(t *testing.T) {
		c := pizza.NewBuilder().AddTopping("Pepperoni").Build()

		got := c.Toppings()
		got[0] = "Anchoas"

		assert.Equal(t, []string{"Pepperoni"}, c.Toppings())
	})
}

func TestDirector_BuildBasic(t *testing.T) {
	t.Run("should assemble the house basic pizza", func(t *testing.T) {
		d := pizza.NewDirector(pizza.NewBuilder())

		c := d.BuildBasic()

		assert.Equal(t, "Tradicional", c.Base())
		assert.Equal(t, "Tomate", c.Sauce())
		assert.Equal(t, "Mozzarella", c.Cheese())
		assert.Equal(t, "Normal", c.Crust())
		assert.Empty(t, c.Toppings())
	})

	t.Run("should drive a replacement builder", func(t *testing.T) {
		d := pizza.NewDirector(pizza.NewBuilder())
		d.SetBuilder(pizza.NewBuilder().AddTopping("Pepperoni"))

		c := d.BuildBasic()

		assert.Equal(t, "Tradicional", c.Base())
		assert.Equal(t, []string{"Pepperoni"}, c.Toppings())
	})
}
