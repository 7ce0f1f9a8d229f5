// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object handled by a dedicated handler. Every mutating
// handler persists a full registry snapshot after the mutation; a failed
// snapshot write is logged and never rolls back the in-memory change.
package commands

import (
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
)

// OrderRegistry is the slice of the registry surface the command handlers
// mutate through.
type OrderRegistry interface {
	// Register creates, prices, and stores a new order.
	Register(composition pizza.Composition) *order.Order

	// ListAll returns all orders in insertion order, for snapshot writes.
	ListAll() []*order.Order

	// SetPolicy replaces the pricing policy for subsequent registrations.
	SetPolicy(pricing order.PricingPolicy)

	// Advance moves the identified order one lifecycle step.
	// Unknown IDs and terminal orders are silent no-ops.
	Advance(id int64) bool

	// Cancel cancels the identified order.
	// Unknown IDs and terminal orders are silent no-ops.
	Cancel(id int64) bool
}
