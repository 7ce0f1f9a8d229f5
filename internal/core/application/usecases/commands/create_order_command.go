package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrBaseIsRequired   = errors.New("base is required")
	ErrSauceIsRequired  = errors.New("sauce is required")
	ErrCheeseIsRequired = errors.New("cheese is required")
	ErrCrustIsRequired  = errors.New("crust is required")
)

// CreateOrderCommand represents a request to register a new pizza order.
// Encapsulates the full composition choice set taken at the counter.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Tradicional", "Tomate", "Mozzarella", "Normal",
//	    []string{"Pepperoni", "Champiñones"}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	base       string
	sauce      string
	cheese     string
	crust      string
	toppings   []string
	seasonings []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The four base choices are required; topping and seasoning lists may be
// empty or nil. Returns an error if any validation fails.
func NewCreateOrderCommand(
	base, sauce, cheese, crust string,
	toppings, seasonings []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		toppings:   toppings,
		seasonings: seasonings,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBase(base),
		cmd.setSauce(sauce),
		cmd.setCheese(cheese),
		cmd.setCrust(crust),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Base returns the dough type choice.
func (c CreateOrderCommand) Base() string {
	return c.base
}

// Sauce returns the sauce choice.
func (c CreateOrderCommand) Sauce() string {
	return c.sauce
}

// Cheese returns the cheese choice.
func (c CreateOrderCommand) Cheese() string {
	return c.cheese
}

// Crust returns the crust choice.
func (c CreateOrderCommand) Crust() string {
	return c.crust
}

// Toppings returns the requested topping names.
func (c CreateOrderCommand) Toppings() []string {
	return c.toppings
}

// Seasonings returns the requested seasoning names.
func (c CreateOrderCommand) Seasonings() []string {
	return c.seasonings
}

func (c *CreateOrderCommand) setBase(base string) error {
	if base == "" {
		return ErrBaseIsRequired
	}
	c.base = base
	return nil
}

func (c *CreateOrderCommand) setSauce(sauce string) error {
	if sauce == "" {
		return ErrSauceIsRequired
	}
	c.sauce = sauce
	return nil
}

func (c *CreateOrderCommand) setCheese(cheese string) error {
	if cheese == "" {
		return ErrCheeseIsRequired
	}
	c.cheese = cheese
	return nil
}

func (c *CreateOrderCommand) setCrust(crust string) error {
	if crust == "" {
		return ErrCrustIsRequired
	}
	c.crust = crust
	return nil
}
