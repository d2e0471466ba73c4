package whatif

// Given computes the condition from the receiver and runs whatIf when it is
// true. A false or absent condition is a no-op.
func Given[T any](t T, given func(T) *bool, whatIf func()) {
	if BoolValue(given(t)) {
		if whatIf != nil {
			whatIf()
		}
	}
}

// DoubleGiven computes the condition from the receiver and runs whatIf when
// it is true, otherwise whatIfNot. Either callback may be nil.
func DoubleGiven[T any](t T, given func(T) *bool, whatIf, whatIfNot func()) {
	if BoolValue(given(t)) {
		if whatIf != nil {
			whatIf()
		}
	} else {
		if whatIfNot != nil {
			whatIfNot()
		}
	}
}

// When runs whatIf when the optional boolean itself is true.
func When(given *bool, whatIf func()) {
	if BoolValue(given) {
		if whatIf != nil {
			whatIf()
		}
	}
}

// DoubleWhen runs whatIf when the optional boolean itself is true, otherwise
// whatIfNot.
func DoubleWhen(given *bool, whatIf, whatIfNot func()) {
	if BoolValue(given) {
		if whatIf != nil {
			whatIf()
		}
	} else {
		if whatIfNot != nil {
			whatIfNot()
		}
	}
}
