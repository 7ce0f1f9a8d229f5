// Package ports defines the persistence contracts the core depends on.
// Adapters under internal/adapters/out implement them.
package ports

import "pizzeria/internal/core/domain/model/order"

// OrderStore is the snapshot persistence contract for the order registry.
// The store keeps one durable copy of the whole registry; every mutation
// rewrites it in full rather than appending.
type OrderStore interface {
	// LoadAll reads the persisted snapshot and returns the rehydrated
	// orders in stored order. A missing store yields an empty slice and
	// no error; individually malformed records are skipped, not fatal.
	LoadAll() ([]*order.Order, error)

	// SaveAll overwrites the persisted snapshot with the given orders,
	// one record per order, in the order provided.
	SaveAll(orders []*order.Order) error
}
