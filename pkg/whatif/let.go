package whatif

// Let maps the receiver through whatIf when the condition is true, otherwise
// returns def as-is (no copy, same value identity).
func Let[T any, R any](t T, given *bool, def R, whatIf func(T) R) R {
	if BoolValue(given) {
		return whatIf(t)
	}
	return def
}

// DoubleLet maps the receiver through whatIf when the condition is true,
// otherwise through whatIfNot. Both callbacks receive the receiver.
func DoubleLet[T any, R any](t T, given *bool, whatIf, whatIfNot func(T) R) R {
	if BoolValue(given) {
		return whatIf(t)
	}
	return whatIfNot(t)
}
