package nonempty

import (
	"cmp"
	"maps"
	"slices"
)

// EqualSlices reports whether a and b hold the same elements in the same
// order.
func EqualSlices[T comparable](a, b Slice[T]) bool {
	return slices.Equal(a.s, b.s)
}

// CompareSlices orders a and b lexicographically, like slices.Compare.
func CompareSlices[T cmp.Ordered](a, b Slice[T]) int {
	return slices.Compare(a.s, b.s)
}

// EqualMaps reports whether a and b hold the same entries.
func EqualMaps[K, V comparable](a, b Map[K, V]) bool {
	return maps.Equal(a.m, b.m)
}

// EqualDeques reports whether a and b hold the same elements front to back.
func EqualDeques[T comparable](a, b Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if a.d.At(i) != b.d.At(i) {
			return false
		}
	}
	return true
}

// EqualSortedMaps reports whether a and b hold the same entries.
func EqualSortedMaps[K cmp.Ordered, V comparable](a, b SortedMap[K, V]) bool {
	return maps.Equal(a.entries(), b.entries())
}
