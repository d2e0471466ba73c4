// Package fluent provides a fluent wrapper around a plain value for building
// synchronous conditional chains using the whatif primitives.
//
// It composes functions like Tee, TeeFunc, Given, and Let behind a convenient
// Subject[T] type. This enables ergonomic builder-style call sites without
// threading the receiver through each step by hand.
//
// Key operations:
// - With: begin a chain from a value
// - WhatIf/DoubleWhatIf: run side effects under a literal condition
// - WhatIfFunc/DoubleWhatIfFunc: same, with a lazily evaluated condition
// - Given/DoubleGiven: condition computed from the wrapped value
// - Map: transform the wrapped value
// - Value: unwrap; Let/DoubleLet: reduce to a value of a different type
package fluent
