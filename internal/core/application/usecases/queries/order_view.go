package queries

import (
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// OrderView is the read model returned by the order queries: a flat snapshot
// of one order suitable for boards and tracking screens.
type OrderView struct {
	ID         int64
	Base       string
	Sauce      string
	Cheese     string
	Crust      string
	Toppings   []string
	Seasonings []string
	Total      float64
	State      string
	Terminal   bool
	CreatedAt  time.Time
}

// newOrderView projects a domain order into its read model.
func newOrderView(o *order.Order) OrderView {
	c := o.Composition()
	status := o.Status()

	return OrderView{
		ID:         o.ID(),
		Base:       c.Base(),
		Sauce:      c.Sauce(),
		Cheese:     c.Cheese(),
		Crust:      c.Crust(),
		Toppings:   c.Toppings(),
		Seasonings: c.Seasonings(),
		Total:      o.Total(),
		State:      status.String(),
		Terminal:   status.IsTerminal(),
		CreatedAt:  o.CreatedAt(),
	}
}
