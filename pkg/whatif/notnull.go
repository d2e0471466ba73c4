package whatif

import "reflect"

// IsNil reports whether i is nil, including a typed nil pointer stored in an
// interface value.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// NotNull runs whatIf with the pointee when t is non-nil. A nil receiver is
// a no-op.
func NotNull[T any](t *T, whatIf func(T)) {
	if t != nil {
		if whatIf != nil {
			whatIf(*t)
		}
	}
}

// DoubleNotNull runs whatIf with the pointee when t is non-nil, otherwise
// whatIfNot with the original pointer (nil included).
func DoubleNotNull[T any](t *T, whatIf func(T), whatIfNot func(*T)) {
	if t != nil {
		if whatIf != nil {
			whatIf(*t)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(t)
		}
	}
}

// NotNullWith maps the pointee through whatIf when t is non-nil, otherwise
// maps the original pointer through whatIfNot.
func NotNullWith[T any, R any](t *T, whatIf func(T) R, whatIfNot func(*T) R) R {
	if t != nil {
		return whatIf(*t)
	}
	return whatIfNot(t)
}

// NotNilValue runs whatIf with v when v is a non-nil interface value. Typed
// nil pointers count as nil.
func NotNilValue(v any, whatIf func(any)) {
	if !IsNil(v) {
		if whatIf != nil {
			whatIf(v)
		}
	}
}

// DoubleNotNilValue runs whatIf with v when v is a non-nil interface value,
// otherwise whatIfNot with the original v.
func DoubleNotNilValue(v any, whatIf func(any), whatIfNot func(any)) {
	if !IsNil(v) {
		if whatIf != nil {
			whatIf(v)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(v)
		}
	}
}
