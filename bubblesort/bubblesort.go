// Package bubblesort is the quadratic reference sort used to cross-check
// the quicksort strategies.
package bubblesort

import "cmp"

// Sort sorts s in place in ascending order.
func Sort[T cmp.Ordered](s []T) {
	SortFunc(s, func(a, b T) bool { return a < b })
}

// SortFunc sorts s in place using less and returns the number of swaps it
// made. It stops after the first pass that makes no swap, so sorted input
// costs a single pass and zero swaps. Equal elements are never swapped,
// which makes the sort stable.
func SortFunc[T any](s []T, less func(a, b T) bool) int {
	swaps := 0

	for end := len(s) - 1; end > 0; end-- {
		swapped := false

		for j := range end {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
				swaps++
			}
		}

		if !swapped {
			break
		}
	}

	return swaps
}
