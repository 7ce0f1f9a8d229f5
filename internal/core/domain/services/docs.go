// Package services provides domain services for the pizzeria system.
//
// The package includes the pricing policies applied when an order is
// registered:
//   - StandardPricing: base fee plus a per-topping surcharge, with an
//     extra charge for stuffed dough
//   - PromotionalPricing: the standard price with a flat percentage
//     discount, implemented by delegation
//
// Policies are pure functions over a pizza composition; they never mutate
// their input and carry no state, so a single instance can price any
// number of orders.
package services
