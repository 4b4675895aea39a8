package sortable

// Sortable is implemented by element types that can order themselves.
// LessThan must be a strict order: irreflexive and transitive. It may be
// partial; elements that are neither less nor greater are treated as
// "not less than" by every algorithm in this module.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Less adapts a Sortable type to the less function accepted by the
// ...Func sort variants.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// Reverse returns a less function that orders elements descending.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return less(b, a)
	}
}
