// Package sorttest holds helpers shared by the sorting packages' tests:
// order and permutation checks plus reproducible input generators.
package sorttest

import (
	"cmp"

	"github.com/amp-labs/amp-sort/prng"
)

// IsSorted reports whether no element of s is less than its predecessor.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, func(a, b T) bool { return a < b })
}

// IsSortedFunc is IsSorted with a caller-supplied less.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[T]int, len(a))

	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}

	return true
}

// Ints returns n values in [0, limit) drawn from a generator seeded with seed.
func Ints(seed uint64, n, limit int) []int {
	gen := prng.New(seed)
	out := make([]int, n)

	for i := range out {
		out[i] = gen.Intn(limit)
	}

	return out
}

// Record is an element with a sort key and the position it was generated
// at, used to observe stability.
type Record struct {
	Key int
	Seq int
}

// ByKey orders records by key only.
func ByKey(a, b Record) bool {
	return a.Key < b.Key
}

// Records returns n records whose keys are drawn from [0, keys), so with
// keys much smaller than n there are many duplicates.
func Records(seed uint64, n, keys int) []Record {
	gen := prng.New(seed)
	out := make([]Record, n)

	for i := range out {
		out[i] = Record{Key: gen.Intn(keys), Seq: i}
	}

	return out
}

// IsStable reports whether records with equal keys appear in increasing Seq
// order.
func IsStable(s []Record) bool {
	for i := 1; i < len(s); i++ {
		if s[i].Key == s[i-1].Key && s[i].Seq < s[i-1].Seq {
			return false
		}
	}

	return true
}
