package pizza

// Composition is the immutable set of choices defining a pizza: dough base,
// sauce, cheese, crust and the optional topping and seasoning lists.
//
// A Composition is only assembled through Builder. Fields may be empty
// strings; an empty choice simply means the customer made no selection,
// matching how compositions round-trip through the text store.
//
// Example:
//
//	c := pizza.NewBuilder().
//	    WithBase("Tradicional").
//	    WithSauce("Tomate").
//	    WithCheese("Mozzarella").
//	    WithCrust("Normal").
//	    AddTopping("Pepperoni").
//	    Build()
type Composition struct {
	base       string
	sauce      string
	cheese     string
	crust      string
	toppings   []string
	seasonings []string
}

// Base returns the dough type.
func (c Composition) Base() string {
	return c.base
}

// Sauce returns the sauce choice.
func (c Composition) Sauce() string {
	return c.sauce
}

// Cheese returns the cheese choice.
func (c Composition) Cheese() string {
	return c.cheese
}

// Crust returns the crust choice.
func (c Composition) Crust() string {
	return c.crust
}

// Toppings returns a copy of the topping names in the order they were added.
func (c Composition) Toppings() []string {
	return copyList(c.toppings)
}

// Seasonings returns a copy of the seasoning names in the order they were added.
func (c Composition) Seasonings() []string {
	return copyList(c.seasonings)
}

// ToppingCount returns the number of toppings without copying the list.
func (c Composition) ToppingCount() int {
	return len(c.toppings)
}

func copyList(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
