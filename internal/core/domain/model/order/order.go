package order

import (
	"log/slog"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// Observer receives a notification every time an order it is subscribed to
// completes a state transition. Notify runs synchronously on the goroutine
// performing the transition; a panicking observer is logged and never
// affects sibling observers or the caller.
type Observer interface {
	Notify(o *Order)
}

// SubscriptionID is the handle returned by Subscribe and accepted by
// Unsubscribe. Handles are unique per subscription.
type SubscriptionID string

// newSubscriptionID generates a fresh subscription handle.
func newSubscriptionID() SubscriptionID {
	return SubscriptionID(uuid.NewString())
}

// subscription ties a handle to its observer. Subscriptions are kept in
// registration order so fan-out is deterministic.
type subscription struct {
	id       SubscriptionID
	observer Observer
}

// Order represents a pizza order. It is the aggregate root that owns the
// composition, the price snapshot taken at registration time, the
// lifecycle state, and the set of subscribed observers.
//
// Order follows these invariants:
//   - The ID is assigned exactly once by the registry and never reused
//   - The total is computed at creation by the then-active pricing policy
//     and is never recomputed on later state changes
//   - State only moves forward along the fixed sequence, or jumps to
//     Cancelled; terminal states admit no further transitions
//   - Observers are notified only as a side effect of a successful
//     transition, over a snapshot of the subscribers taken at that instant
type Order struct {
	mu sync.Mutex

	id          int64
	composition pizza.Composition
	total       float64
	status      Status
	createdAt   time.Time

	subscriptions []subscription
}

// NewOrder creates an Order in Received status with the given composition
// and total. The ID stays zero until the registry assigns one.
func NewOrder(composition pizza.Composition, total float64) *Order {
	return &Order{
		composition: composition,
		total:       total,
		status:      Received,
		createdAt:   time.Now(),
	}
}

// RestoreOrder reconstructs an order from persisted data. Unlike NewOrder
// it accepts an already-assigned ID and a lifecycle status, and never
// recomputes the total.
//
// Returns an error when the ID is not positive or the status is invalid.
func RestoreOrder(id int64, composition pizza.Composition, total float64, status Status) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id must be positive")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := NewOrder(composition, total)
	o.id = id
	o.status = status
	return o, nil
}

// ID returns the order's unique identifier, or zero before registration.
func (o *Order) ID() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.id
}

// Composition returns the pizza composition owned by the order.
func (o *Order) Composition() pizza.Composition {
	return o.composition
}

// Total returns the price snapshot computed at registration.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order one step along the forward sequence and notifies
// the subscribers. It is a no-op returning false when the order is already
// Delivered or Cancelled.
func (o *Order) Advance() bool {
	o.mu.Lock()
	if o.status.IsTerminal() {
		o.mu.Unlock()
		return false
	}

	next, ok := o.status.Next()
	if !ok {
		o.mu.Unlock()
		return false
	}

	o.status = next
	snapshot := o.snapshotSubscribersLocked()
	o.mu.Unlock()

	o.dispatch(snapshot)
	return true
}

// Cancel forces the order to Cancelled and notifies the subscribers.
// Cancellation bypasses the forward sequence entirely. It is a no-op
// returning false when the order is already Delivered or Cancelled.
func (o *Order) Cancel() bool {
	o.mu.Lock()
	if o.status.IsTerminal() {
		o.mu.Unlock()
		return false
	}

	o.status = Cancelled
	snapshot := o.snapshotSubscribersLocked()
	o.mu.Unlock()

	o.dispatch(snapshot)
	return true
}

// Subscribe registers an observer and returns its subscription handle.
// Subscribing the same observer twice is a no-op that returns the handle
// of the existing subscription.
func (o *Order) Subscribe(observer Observer) SubscriptionID {
	if observer == nil {
		return ""
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, sub := range o.subscriptions {
		if sub.observer == observer {
			return sub.id
		}
	}

	id := newSubscriptionID()
	o.subscriptions = append(o.subscriptions, subscription{id: id, observer: observer})
	return id
}

// Unsubscribe removes the subscription with the given handle.
// Unknown handles are a no-op.
func (o *Order) Unsubscribe(id SubscriptionID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, sub := range o.subscriptions {
		if sub.id == id {
			o.subscriptions = append(o.subscriptions[:i], o.subscriptions[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (o *Order) SubscriberCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subscriptions)
}

// snapshotSubscribersLocked copies the subscription list so in-flight
// fan-out is unaffected by subscribers added or removed during delivery.
// Callers must hold o.mu.
func (o *Order) snapshotSubscribersLocked() []subscription {
	if len(o.subscriptions) == 0 {
		return nil
	}
	snapshot := make([]subscription, len(o.subscriptions))
	copy(snapshot, o.subscriptions)
	return snapshot
}

// dispatch delivers the notification to every subscriber in the snapshot.
// A subscriber unsubscribed while the fan-out is in flight is skipped, and
// each delivery runs behind its own recover boundary so one misbehaving
// observer cannot break the rest or the transition caller.
func (o *Order) dispatch(snapshot []subscription) {
	for _, sub := range snapshot {
		if !o.isSubscribed(sub.id) {
			continue
		}
		o.notifyOne(sub)
	}
}

func (o *Order) isSubscribed(id SubscriptionID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, sub := range o.subscriptions {
		if sub.id == id {
			return true
		}
	}
	return false
}

func (o *Order) notifyOne(sub subscription) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("order observer panicked during notification",
				"order_id", o.id,
				"subscription_id", string(sub.id),
				"panic", r,
			)
		}
	}()

	sub.observer.Notify(o)
}
