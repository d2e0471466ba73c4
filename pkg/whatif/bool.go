package whatif

// Bool wraps a literal condition into an optional boolean.
func Bool(v bool) *bool {
	return &v
}

// BoolValue unwraps an optional boolean; absent reads as false.
func BoolValue(given *bool) bool {
	return given != nil && *given
}
