package order

import (
	"sync"

	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
)

// PricingPolicy maps an order's composition to its total price. Compute
// must be pure: deterministic, side-effect free, and non-mutating.
// Concrete policies live in the domain services package; the registry only
// depends on this contract.
type PricingPolicy interface {
	Compute(c pizza.Composition) float64
}

// Registry is the process-wide in-memory store of all orders. It assigns
// sequential IDs, keeps orders in insertion order, and holds the pricing
// policy applied to newly registered orders.
//
// A Registry is explicitly constructed and handed to the service layer by
// the composition root; it is created once at process start and lives for
// the process lifetime. A single mutex covers the read-modify-write of the
// ID counter, the order list, and the active policy, so Register, Advance,
// and Cancel are safe to interleave with the periodic display refresh.
//
// Example:
//
//	registry, err := order.NewRegistry(services.NewStandardPricing())
//	if err != nil {
//	    return err
//	}
//	o := registry.Register(composition) // ID 1, Received, priced by policy
type Registry struct {
	mu      sync.Mutex
	orders  []*Order
	byID    map[int64]*Order
	nextID  int64
	pricing PricingPolicy
}

// NewRegistry creates an empty registry with the given initial pricing
// policy. The first registered order receives ID 1.
func NewRegistry(pricing PricingPolicy) (*Registry, error) {
	if pricing == nil {
		return nil, errs.NewValueIsRequiredError("pricing policy")
	}
	return &Registry{
		byID:    make(map[int64]*Order),
		nextID:  1,
		pricing: pricing,
	}, nil
}

// Register creates an order for the composition, priced by the currently
// active policy, assigns it the next sequential ID, and stores it.
func (r *Registry) Register(composition pizza.Composition) *Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.pricing.Compute(composition)
	o := NewOrder(composition, total)
	o.id = r.nextID
	r.nextID++

	r.orders = append(r.orders, o)
	r.byID[o.id] = o
	return o
}

// RegisterExisting stores an order rehydrated from persistence. The total
// is not recomputed and the ID is not reassigned; when the order's ID is
// at or beyond the next-ID counter, the counter is advanced past it so
// future registrations cannot collide.
func (r *Registry) RegisterExisting(o *Order) {
	if o == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, o)
	r.byID[o.id] = o

	if o.id >= r.nextID {
		r.nextID = o.id + 1
	}
}

// FindByID returns the order with the given ID, or false when absent.
func (r *Registry) FindByID(id int64) (*Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	return o, ok
}

// ListAll returns the orders in insertion order. The returned slice is a
// copy; callers cannot alter the registry through it.
func (r *Registry) ListAll() []*Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*Order, len(r.orders))
	copy(list, r.orders)
	return list
}

// SetPolicy replaces the pricing policy applied to subsequent Register
// calls. Existing orders keep their totals. A nil policy is ignored.
func (r *Registry) SetPolicy(pricing PricingPolicy) {
	if pricing == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pricing = pricing
}

// Advance moves the identified order one step along its lifecycle.
// Unknown IDs and terminal orders are silent no-ops returning false.
// Observer fan-out runs outside the registry lock.
func (r *Registry) Advance(id int64) bool {
	o, ok := r.FindByID(id)
	if !ok {
		return false
	}
	return o.Advance()
}

// Cancel cancels the identified order. Unknown IDs and terminal orders
// are silent no-ops returning false.
func (r *Registry) Cancel(id int64) bool {
	o, ok := r.FindByID(id)
	if !ok {
		return false
	}
	return o.Cancel()
}
