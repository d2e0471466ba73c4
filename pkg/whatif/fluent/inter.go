package fluent

import "time"

type ValueProvider[T any] interface {
	// Value returns the wrapped value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
