package whatif

// Tee runs whatIf with the receiver when the condition is true and returns
// the receiver unchanged, so calls can be placed inside a larger expression.
func Tee[T any](t T, given *bool, whatIf func(T)) T {
	if BoolValue(given) {
		if whatIf != nil {
			whatIf(t)
		}
	}
	return t
}

// DoubleTee runs whatIf with the receiver when the condition is true,
// otherwise whatIfNot, and returns the receiver unchanged.
func DoubleTee[T any](t T, given *bool, whatIf, whatIfNot func(T)) T {
	if BoolValue(given) {
		if whatIf != nil {
			whatIf(t)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(t)
		}
	}
	return t
}

// TeeFunc is Tee with a lazily evaluated condition. The condition callback
// runs exactly once per call.
func TeeFunc[T any](t T, given func() *bool, whatIfDo func(T)) T {
	if BoolValue(given()) {
		if whatIfDo != nil {
			whatIfDo(t)
		}
	}
	return t
}

// DoubleTeeFunc is DoubleTee with a lazily evaluated condition.
func DoubleTeeFunc[T any](t T, given func() *bool, whatIfDo, whatIfNot func(T)) T {
	if BoolValue(given()) {
		if whatIfDo != nil {
			whatIfDo(t)
		}
	} else {
		if whatIfNot != nil {
			whatIfNot(t)
		}
	}
	return t
}
