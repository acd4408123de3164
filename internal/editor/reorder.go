package editor

// Move returns a copy of items with the element at from re-inserted at to,
// preserving the relative order of all other elements. Equal or out-of-range
// indexes are a no-op; the original slice is never mutated.
func Move[T any](items []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(items) || to >= len(items) {
		return items
	}

	result := make([]T, 0, len(items))
	result = append(result, items[:from]...)
	result = append(result, items[from+1:]...)

	tail := make([]T, 0, len(items)-to)
	tail = append(tail, result[to:]...)
	result = append(result[:to], items[from])
	result = append(result, tail...)
	return result
}

// RemapActiveIndex keeps the same logical lesson selected across a reorder:
// the moved lesson carries its selection to the target index, and lessons
// between source and destination shift by one.
func RemapActiveIndex(active, from, to int) int {
	if from == to {
		return active
	}
	switch {
	case active == from:
		return to
	case from < active && active <= to:
		return active - 1
	case to <= active && active < from:
		return active + 1
	default:
		return active
	}
}
