package types

// CoerceList normalizes an optional sequence into a canonical one: nil
// becomes an empty slice, a present slice is copied so the result does not
// alias caller-owned data. Order is preserved; elements are never
// deduplicated or sorted.
func CoerceList[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

// optCopy returns a copy of an optional scalar, so getters never hand out
// pointers into frozen state.
func optCopy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// orZero unwraps an optional scalar, defaulting to the zero value.
func orZero[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
