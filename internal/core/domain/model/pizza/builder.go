package pizza

import "strings"

// Builder accumulates the choices for a Composition and produces the
// finished immutable value on Build. All With/Add methods return the
// builder itself for chaining.
//
// Build copies the accumulated topping and seasoning lists, so a builder
// can be reused or discarded without aliasing compositions it already
// produced.
type Builder struct {
	base       string
	sauce      string
	cheese     string
	crust      string
	toppings   []string
	seasonings []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithBase sets the dough type.
func (b *Builder) WithBase(base string) *Builder {
	b.base = strings.TrimSpace(base)
	return b
}

// WithSauce sets the sauce choice.
func (b *Builder) WithSauce(sauce string) *Builder {
	b.sauce = strings.TrimSpace(sauce)
	return b
}

// WithCheese sets the cheese choice.
func (b *Builder) WithCheese(cheese string) *Builder {
	b.cheese = strings.TrimSpace(cheese)
	return b
}

// WithCrust sets the crust choice.
func (b *Builder) WithCrust(crust string) *Builder {
	b.crust = strings.TrimSpace(crust)
	return b
}

// AddTopping appends a topping name. Blank names are dropped.
func (b *Builder) AddTopping(topping string) *Builder {
	if t := strings.TrimSpace(topping); t != "" {
		b.toppings = append(b.toppings, t)
	}
	return b
}

// AddToppings appends each topping name in order, dropping blanks.
func (b *Builder) AddToppings(toppings []string) *Builder {
	for _, t := range toppings {
		b.AddTopping(t)
	}
	return b
}

// AddSeasoning appends a seasoning name. Blank names are dropped.
func (b *Builder) AddSeasoning(seasoning string) *Builder {
	if s := strings.TrimSpace(seasoning); s != "" {
		b.seasonings = append(b.seasonings, s)
	}
	return b
}

// AddSeasonings appends each seasoning name in order, dropping blanks.
func (b *Builder) AddSeasonings(seasonings []string) *Builder {
	for _, s := range seasonings {
		b.AddSeasoning(s)
	}
	return b
}

// Build produces the finished Composition. The returned value holds
// independent copies of the topping and seasoning lists.
func (b *Builder) Build() Composition {
	return Composition{
		base:       b.base,
		sauce:      b.sauce,
		cheese:     b.cheese,
		crust:      b.crust,
		toppings:   copyList(b.toppings),
		seasonings: copyList(b.seasonings),
	}
}

// Director assembles preset compositions using a Builder.
type Director struct {
	builder *Builder
}

// NewDirector creates a Director driving the given builder.
func NewDirector(builder *Builder) *Director {
	return &Director{builder: builder}
}

// SetBuilder replaces the builder the director drives.
func (d *Director) SetBuilder(builder *Builder) {
	d.builder = builder
}

// BuildBasic assembles the house basic pizza: traditional dough, tomato
// sauce, mozzarella and a normal crust, with no extras.
func (d *Director) BuildBasic() Composition {
	return d.builder.
		WithBase("Tradicional").
		WithSauce("Tomate").
		WithCheese("Mozzarella").
		WithCrust("Normal").
		Build()
}
