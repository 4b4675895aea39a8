package sortable

// Int is a sortable wrapper type for the built-in int type.
//
//	jobs := []sortable.Int{5, 3, 7}
//	quicksort.SortFunc(jobs, sortable.Less[sortable.Int])
type Int int

var _ Sortable[Int] = Int(0)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Float is a sortable float64 with IEEE-754 partial ordering.
type Float float64

var _ Sortable[Float] = Float(0)

// Equals uses IEEE-754 equality, so NaN never equals anything.
func (f Float) Equals(other Float) bool {
	return f == other
}

// LessThan uses IEEE-754 ordering, so any comparison involving NaN is false.
func (f Float) LessThan(other Float) bool {
	return f < other
}
