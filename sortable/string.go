package sortable

import "facette.io/natsort"

// String orders strings bytewise.
type String string

var _ Sortable[String] = String("")

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// NaturalString orders strings so that embedded numbers compare by value:
// "v2" < "v10".
type NaturalString string

var _ Sortable[NaturalString] = NaturalString("")

func (s NaturalString) Equals(other NaturalString) bool {
	return s == other
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return natsort.Compare(string(s), string(other))
}
