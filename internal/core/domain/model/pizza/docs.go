// Package pizza provides the composition value object describing a pizza
// and the builder used to assemble it.
//
// The package includes:
//   - Composition: An immutable value object holding the fixed set of
//     choices (base, sauce, cheese, crust, toppings, seasonings)
//   - Builder: A fluent accumulator that produces a finished Composition
//   - Director: Preset recipes built on top of Builder
//
// Key rules:
//   - A Composition never changes after Build; accessors hand out copies
//     of the topping and seasoning lists
//   - Blank topping and seasoning entries are trimmed and dropped during
//     construction
//   - Reusing a Builder after Build never aliases previously built values
package pizza
