package coll

// Slice runs whatIf with s when s is non-nil and non-empty.
func Slice[T any](s []T, whatIf func([]T)) {
	if len(s) > 0 {
		if whatIf != nil {
			whatIf(s)
		}
	}
}

// DoubleSlice runs whatIf with s when s is non-nil and non-empty, otherwise
// whatIfNot with the original (possibly nil) slice.
func DoubleSlice[T any](s []T, whatIf, whatIfNot func([]T)) {
	if len(s) > 0 {
		if whatIf != nil {
			whatIf(s)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(s)
		}
	}
}

// Map runs whatIf with m when m is non-nil and non-empty.
func Map[K comparable, V any](m map[K]V, whatIf func(map[K]V)) {
	if len(m) > 0 {
		if whatIf != nil {
			whatIf(m)
		}
	}
}

// DoubleMap runs whatIf with m when m is non-nil and non-empty, otherwise
// whatIfNot with the original (possibly nil) map.
func DoubleMap[K comparable, V any](m map[K]V, whatIf, whatIfNot func(map[K]V)) {
	if len(m) > 0 {
		if whatIf != nil {
			whatIf(m)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(m)
		}
	}
}

// Str runs whatIf with s when s is non-empty.
func Str(s string, whatIf func(string)) {
	if len(s) > 0 {
		if whatIf != nil {
			whatIf(s)
		}
	}
}

// DoubleStr runs whatIf with s when s is non-empty, otherwise whatIfNot with
// the original string.
func DoubleStr(s string, whatIf, whatIfNot func(string)) {
	if len(s) > 0 {
		if whatIf != nil {
			whatIf(s)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(s)
		}
	}
}

// NotEmpty runs whatIf with c when isEmpty reports false. The predicate runs
// exactly once per call.
func NotEmpty[C any](c C, isEmpty func(C) bool, whatIf func(C)) {
	if !isEmpty(c) {
		if whatIf != nil {
			whatIf(c)
		}
	}
}

// DoubleNotEmpty runs whatIf with c when isEmpty reports false, otherwise
// whatIfNot with the original c.
func DoubleNotEmpty[C any](c C, isEmpty func(C) bool, whatIf, whatIfNot func(C)) {
	if !isEmpty(c) {
		if whatIf != nil {
			whatIf(c)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(c)
		}
	}
}
