// Package order provides domain entities and business logic for pizza order
// management. It implements the Order aggregate root with lifecycle
// management, observer notification, and the in-memory registry that owns
// all orders for the life of the process.
//
// The package includes:
//   - Order: The aggregate root holding identity, composition, price
//     snapshot, lifecycle state, and its subscribers
//   - Status: A state machine with a centralized transition table
//   - Registry: The in-memory store assigning sequential IDs and holding
//     the active pricing policy
//
// Key business rules:
//   - Status only moves forward along Received -> Preparing -> Baking ->
//     Ready -> Delivered, or jumps to Cancelled from any non-terminal state
//   - Delivered and Cancelled are terminal; further transitions are no-ops
//   - Every successful transition notifies the order's subscribers over a
//     defensive snapshot, isolating each subscriber behind a recover
//     boundary
//   - The order total is computed once at registration by the active
//     pricing policy and never recomputed
package order
