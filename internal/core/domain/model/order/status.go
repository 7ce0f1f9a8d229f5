package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a pizza order.
// It implements a state machine with a single centralized transition
// table so the whole lifecycle is checkable in one place.
//
// State transitions:
//
//	Received ──> Preparing ──> Baking ──> Ready ──> Delivered
//	    │            │           │          │
//	    └────────────┴───────────┴──────────┴────> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is a side-channel
// jump available from every non-terminal state, not part of the forward
// sequence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned when an order is registered.
	Received

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Baking indicates the pizza is in the oven.
	Baking

	// Ready indicates the pizza is done and waiting for pickup or delivery.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// The names double as the STATE_NAME field of the text store format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Baking:    "BAKING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Baking:    "BAKING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// forwardSequence is the single source of truth for the linear lifecycle.
// Cancelled never appears here: cancellation is handled separately.
func forwardSequence() map[Status]Status {
	return map[Status]Status{
		Received:  Preparing,
		Preparing: Baking,
		Baking:    Ready,
		Ready:     Delivered,
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the status following s in the forward sequence.
//
// Returns:
//   - (next, true) for Received, Preparing, Baking, Ready
//   - (s, false) for terminal or invalid statuses
//
// Next never yields Cancelled; cancellation is an explicit jump performed
// by Order.Cancel.
func (s Status) Next() (Status, bool) {
	next, ok := forwardSequence()[s]
	if !ok {
		return s, false
	}
	return next, true
}

// ParseStatus resolves a wire name to a Status, case-insensitively and
// ignoring surrounding whitespace. Unrecognized names fall back to
// Received, preserving the tolerant load behavior of the text store.
func ParseStatus(name string) Status {
	wire := strings.ToUpper(strings.TrimSpace(name))
	for status, str := range getValidStatusStrings() {
		if str == wire {
			return status
		}
	}
	return Received
}
