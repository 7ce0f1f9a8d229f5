// Package queries contains read-only operations over the order registry.
// Queries never mutate state and never touch persistence; they read the
// in-memory registry, which is the single source of truth while the
// process runs.
package queries

import "pizzeria/internal/core/domain/model/order"

// OrdersReader is the read-only slice of the registry surface the query
// handlers consume.
type OrdersReader interface {
	// FindByID returns the order with the given ID, or false when absent.
	FindByID(id int64) (*order.Order, bool)

	// ListAll returns all orders in insertion order.
	ListAll() []*order.Order
}
