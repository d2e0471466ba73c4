package fluent

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/whatif/pkg/whatif"
)

// Subject wraps a value with a stable identity to enable fluent chaining.
// Every chain step returns a Subject carrying the same id and creation time,
// so a chain can be traced end to end.
type Subject[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
}

// With begins a chain from a value.
func With[T any](v T) Subject[T] {
	return Subject[T]{
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (s Subject[T]) Value() T {
	return s.value
}

func (s Subject[T]) Id() uuid.UUID {
	return s.id
}

// CreatedAt time creation (UTC)
func (s Subject[T]) CreatedAt() time.Time {
	return s.createdAt
}

// WhatIf runs whatIf with the wrapped value when the condition is true.
func (s Subject[T]) WhatIf(given *bool, whatIf func(T)) Subject[T] {
	whatif.Tee(s.value, given, whatIf)
	return s
}

// DoubleWhatIf runs whatIf with the wrapped value when the condition is
// true, otherwise whatIfNot.
func (s Subject[T]) DoubleWhatIf(given *bool, whatIf, whatIfNot func(T)) Subject[T] {
	whatif.DoubleTee(s.value, given, whatIf, whatIfNot)
	return s
}

// WhatIfFunc is WhatIf with a lazily evaluated condition.
func (s Subject[T]) WhatIfFunc(given func() *bool, whatIfDo func(T)) Subject[T] {
	whatif.TeeFunc(s.value, given, whatIfDo)
	return s
}

// DoubleWhatIfFunc is DoubleWhatIf with a lazily evaluated condition.
func (s Subject[T]) DoubleWhatIfFunc(given func() *bool, whatIfDo, whatIfNot func(T)) Subject[T] {
	whatif.DoubleTeeFunc(s.value, given, whatIfDo, whatIfNot)
	return s
}

// Given computes the condition from the wrapped value and runs whatIf when
// it is true.
func (s Subject[T]) Given(given func(T) *bool, whatIf func()) Subject[T] {
	whatif.Given(s.value, given, whatIf)
	return s
}

// DoubleGiven computes the condition from the wrapped value and runs whatIf
// when it is true, otherwise whatIfNot.
func (s Subject[T]) DoubleGiven(given func(T) *bool, whatIf, whatIfNot func()) Subject[T] {
	whatif.DoubleGiven(s.value, given, whatIf, whatIfNot)
	return s
}

// Map transforms the wrapped value, keeping the chain identity.
func (s Subject[T]) Map(f func(T) T) Subject[T] {
	return Subject[T]{
		value:     f(s.value),
		createdAt: s.createdAt,
		id:        s.id,
	}
}

// Let reduces the chain to a value of a different type: whatIf of the
// wrapped value when the condition is true, def otherwise.
func Let[T any, R any](s Subject[T], given *bool, def R, whatIf func(T) R) R {
	return whatif.Let(s.value, given, def, whatIf)
}

// DoubleLet reduces the chain through whatIf when the condition is true,
// otherwise through whatIfNot.
func DoubleLet[T any, R any](s Subject[T], given *bool, whatIf, whatIfNot func(T) R) R {
	return whatif.DoubleLet(s.value, given, whatIf, whatIfNot)
}
