package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/prng"
)

// Pivot partitions s in place around a randomly chosen element and returns
// that element's final index p: every element before p is less than s[p],
// and no element after p is. s must not be empty.
//
// Elements equal to the pivot always land after it, so inputs with many
// duplicate keys produce lopsided partitions and quicksort degrades towards
// O(n²) on them.
func Pivot[T cmp.Ordered](s []T, opts ...Option) int {
	return PivotFunc(s, lessOrdered[T], opts...)
}

// PivotFunc is Pivot with a caller-supplied strict less function.
func PivotFunc[T any](s []T, less func(a, b T) bool, opts ...Option) int {
	return partition(s, less, newConfig(opts).source)
}

func lessOrdered[T cmp.Ordered](a, b T) bool {
	return a < b
}

// partition is a single Lomuto pass. The pivot is moved to index 0 and then
// walks right one slot each time a smaller element is found, so it always
// sits at the boundary p: s[:p] < pivot, s[p+1:i] >= pivot.
func partition[T any](s []T, less func(a, b T) bool, src prng.Source) int {
	if len(s) == 0 {
		panic(errors.ErrEmptySequence)
	}

	r := src.Intn(len(s))
	s[0], s[r] = s[r], s[0]

	p := 0

	for i := 1; i < len(s); i++ {
		if less(s[i], s[p]) {
			s[p+1], s[i] = s[i], s[p+1]
			s[p], s[p+1] = s[p+1], s[p]
			p++
		}
	}

	return p
}

// split returns the two halves either side of the pivot. The left half's
// capacity stops at the pivot, so the halves are disjoint even under append.
func split[T any](s []T, p int) ([]T, []T) {
	return s[:p:p], s[p+1:]
}
