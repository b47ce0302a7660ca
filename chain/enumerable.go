package chain

// Enumerable is the interface satisfied by [List][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *List type.
type Enumerable[T any] interface {
	// All returns a copy of every element as a plain Go slice.
	All() []T

	// Count returns the number of elements.
	Count() int

	// Each calls fn(item, index) for every element in order.
	Each(fn func(T, int))

	// Filter returns a new list containing only elements for which fn
	// returns true.
	Filter(fn func(T, int) bool) *List[T]

	// Find returns the first element satisfying fn, with a presence flag.
	Find(fn func(T, int) bool) (T, bool)

	// IsEmpty reports whether the list contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the list contains at least one element.
	IsNotEmpty() bool

	// Reject returns a new list with elements for which fn returns true
	// removed.
	Reject(fn func(T, int) bool) *List[T]

	// ToSlice is an alias for All.
	ToSlice() []T
}
