package utils

// Insert places value at index at, shifting every later item right by one.
// at must be in [0, len(items)].
func Insert[T any](items []T, at int, value T) []T {
	Assert(at >= 0 && at <= len(items), "insert index out of bounds")
	var zero T
	items = append(items, zero)
	copy(items[at+1:], items[at:])
	items[at] = value
	return items
}

// Remove deletes the item at index at, shifting every later item left by
// one. The vacated tail slot is zeroed so it does not pin memory.
func Remove[T any](items []T, at int) []T {
	Assert(at >= 0 && at < len(items), "remove index out of bounds")
	copy(items[at:], items[at+1:])
	var zero T
	items[len(items)-1] = zero
	return items[:len(items)-1]
}
