// Package mergesort is the stable reference sort used to cross-check the
// quicksort strategies.
package mergesort

import "cmp"

// Sort returns a new slice holding the elements of s in ascending order.
// s itself is left unmodified.
func Sort[T cmp.Ordered](s []T) []T {
	return SortFunc(s, func(a, b T) bool { return a < b })
}

// SortFunc returns a new slice holding the elements of s ordered by less.
// The sort is stable: when neither element is less than the other, the one
// that came first in s comes first in the result.
func SortFunc[T any](s []T, less func(a, b T) bool) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	copy(out, s)

	if len(out) <= 1 {
		return out
	}

	scratch := make([]T, len(out))
	mergeSort(out, scratch, less)

	return out
}

// mergeSort sorts s using scratch (same length) as merge space.
func mergeSort[T any](s, scratch []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2

	mergeSort(s[:mid], scratch[:mid], less)
	mergeSort(s[mid:], scratch[mid:], less)

	merge(s[:mid], s[mid:], scratch, less)
	copy(s, scratch)
}

// merge writes the sorted union of a and b into out. Ties take from a.
func merge[T any](a, b, out []T, less func(a, b T) bool) {
	i, j, k := 0, 0, 0

	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}

		k++
	}

	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
