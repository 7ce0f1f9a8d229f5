// Package guard provides the ConstructorGuard defensive pattern used by
// commands and queries to ensure objects are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor
// from zero values. Embedding a guard in a struct and checking it in
// Validate prevents accidental use of uninitialized commands, queries,
// and value objects.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    base  string
//	    guard ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(base string) CreateOrderCommand {
//	    return CreateOrderCommand{base: base, guard: NewConstructorGuard()}
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
