package chain

import "github.com/hasbyte1/go-list-utils/list"

// This file contains package-level generic functions for operations that
// transform a List[T] into a List[U] (T ≠ U) or need a comparable
// constraint. Go generics do not allow methods to introduce their own type
// parameters, so these must be stand-alone functions.

// Map applies fn(item, index) to every element and returns a new List[U].
//
//	labels := chain.Map(chain.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n) })
func Map[T, U any](l *List[T], fn func(T, int) U) *List[U] {
	return wrap(list.Map(l.items, fn))
}

// FlatMap applies fn to every element (producing a []U per element) and
// concatenates the results into a single List[U].
func FlatMap[T, U any](l *List[T], fn func(T, int) []U) *List[U] {
	return wrap(list.FlatMap(l.items, fn))
}

// Foldl folds l front-to-back into a single value of type U, starting from
// initial and combining with fn(acc, item).
func Foldl[T, U any](l *List[T], fn func(U, T) U, initial U) U {
	return list.Foldl(l.items, fn, initial)
}

// Foldr folds l back-to-front into a single value of type U, starting from
// initial and combining with fn(item, acc).
func Foldr[T, U any](l *List[T], fn func(T, U) U, initial U) U {
	return list.Foldr(l.items, fn, initial)
}

// Unique returns a new List with duplicates removed by strict equality,
// keeping first occurrences in order.
func Unique[T comparable](l *List[T]) *List[T] {
	return wrap(list.Unique(l.items))
}

// GroupBy groups elements by the comparable key fn extracts, preserving
// first-seen key order and per-group element order.
func GroupBy[T any, K comparable](l *List[T], fn func(T) K) *list.Grouping[K, T] {
	return list.GroupBy(l.items, fn)
}

// Collapse flattens a List of slices into a List of elements (one level).
func Collapse[T any](l *List[[]T]) *List[T] {
	return wrap(list.Collapse(l.items))
}
