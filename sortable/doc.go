// Package sortable defines the element contract used by the sorting packages
// and a few ready-made element types.
//
// Every sort in this module needs only a strict less-than. Ordered built-in
// types get it from the < operator via the non-Func entry points. Anything
// else either passes its own less function, or implements [Sortable] and
// passes [Less]:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool   { return j == other }
//	func (j Job) LessThan(other Job) bool { return j.Priority < other.Priority }
//
//	quicksort.SortFunc(jobs, sortable.Less[Job])
//
// # Partial orders
//
// [Float] follows IEEE-754: NaN is neither less than nor greater than any
// value. The sorts treat such pairs as "not less than", so NaNs end up
// wherever the partition leaves them rather than in a canonical position.
//
// # Natural ordering
//
// [NaturalString] compares digit runs numerically ("file9" < "file10"),
// using the same natsort ordering the set package applies to string sets.
package sortable
