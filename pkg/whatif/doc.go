// Package whatif provides conditional-expression helpers: free generic
// functions that run exactly one of one or two caller callbacks based on an
// optional boolean condition, and return either nothing, the original
// receiver (for chaining), or an independent result value.
//
// An optional boolean is a *bool. A nil condition (absent) always takes the
// same branch as false; it is never an error and never a third branch.
//
// Highlights:
// - Given/DoubleGiven: condition computed from the receiver
// - Tee/DoubleTee: literal condition, side effect, receiver passed through
// - TeeFunc/DoubleTeeFunc: lazily evaluated condition, receiver passed through
// - Let/DoubleLet: branch into a value of a different type
// - NotNull/DoubleNotNull/NotNullWith: branch on pointer nilness
// - NotNilValue/DoubleNotNilValue: branch on interface nilness
// - When/DoubleWhen: the optional boolean itself is the receiver
//
// Every operation evaluates its condition and the chosen callback
// synchronously, exactly once, on the calling goroutine. Nothing is retried,
// deferred or recovered: a panic inside a callback propagates to the caller
// and no further callback of the same invocation runs.
//
// For fluent chaining over a wrapped value, see package fluent. For
// non-empty-container conditions, see package coll.
package whatif
