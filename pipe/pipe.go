package pipe

import "github.com/hasbyte1/go-list-utils/list"

// This file mirrors the list package one operation at a time. Keep the two
// in sync: a transformer here must never carry logic of its own.

// ─────────────────────────────────────────────────────────────────────────────
// Cardinality & position lookups
// ─────────────────────────────────────────────────────────────────────────────

// Length returns a transformer reporting the number of elements.
func Length[T any]() func([]T) int {
	return func(items []T) int { return list.Length(items) }
}

// IsEmpty returns a transformer reporting whether the list is empty.
func IsEmpty[T any]() func([]T) bool {
	return func(items []T) bool { return list.IsEmpty(items) }
}

// Head returns a transformer yielding the first element, or
// [list.ErrEmptyList] on an empty list.
func Head[T any]() func([]T) (T, error) {
	return func(items []T) (T, error) { return list.Head(items) }
}

// Tail returns a transformer yielding everything except the first element.
func Tail[T any]() func([]T) []T {
	return func(items []T) []T { return list.Tail(items) }
}

// Nth returns a transformer yielding the element at index, or
// [list.ErrIndexOutOfRange] when out of range.
func Nth[T any](index int) func([]T) (T, error) {
	return func(items []T) (T, error) { return list.Nth(items, index) }
}

// TryNth returns a transformer yielding the element at index with a
// presence flag instead of an error.
func TryNth[T any](index int) func([]T) (T, bool) {
	return func(items []T) (T, bool) { return list.TryNth(items, index) }
}

// First returns a transformer yielding the element at position 0.
func First[T any]() func([]T) (T, error) {
	return func(items []T) (T, error) { return list.First(items) }
}

// Second returns a transformer yielding the element at position 1.
func Second[T any]() func([]T) (T, error) {
	return func(items []T) (T, error) { return list.Second(items) }
}

// Third returns a transformer yielding the element at position 2.
func Third[T any]() func([]T) (T, error) {
	return func(items []T) (T, error) { return list.Third(items) }
}

// Last returns a transformer yielding the final element.
func Last[T any]() func([]T) (T, error) {
	return func(items []T) (T, error) { return list.Last(items) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Find returns a transformer yielding the first element satisfying fn.
func Find[T any](fn func(T, int) bool) func([]T) (T, bool) {
	return func(items []T) (T, bool) { return list.Find(items, fn) }
}

// FindIndex returns a transformer yielding the index of the first element
// satisfying fn, or -1.
func FindIndex[T any](fn func(T, int) bool) func([]T) int {
	return func(items []T) int { return list.FindIndex(items, fn) }
}

// Some returns a transformer reporting whether any element satisfies fn.
func Some[T any](fn func(T, int) bool) func([]T) bool {
	return func(items []T) bool { return list.Some(items, fn) }
}

// Every returns a transformer reporting whether all elements satisfy fn.
func Every[T any](fn func(T, int) bool) func([]T) bool {
	return func(items []T) bool { return list.Every(items, fn) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each returns a consumer calling fn(item, index) for every element in order.
func Each[T any](fn func(T, int)) func([]T) {
	return func(items []T) { list.Each(items, fn) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a transformer applying fn(item, index) to each element.
func Map[T, U any](fn func(T, int) U) func([]T) []U {
	return func(items []T) []U { return list.Map(items, fn) }
}

// Filter returns a transformer keeping elements for which fn is true.
func Filter[T any](fn func(T, int) bool) func([]T) []T {
	return func(items []T) []T { return list.Filter(items, fn) }
}

// Reject returns a transformer dropping elements for which fn is true.
func Reject[T any](fn func(T, int) bool) func([]T) []T {
	return func(items []T) []T { return list.Reject(items, fn) }
}

// Partition returns a transformer splitting the list into elements
// satisfying fn and the rest.
func Partition[T any](fn func(T, int) bool) func([]T) ([]T, []T) {
	return func(items []T) ([]T, []T) { return list.Partition(items, fn) }
}

// FlatMap returns a transformer applying fn and concatenating the results.
func FlatMap[T, U any](fn func(T, int) []U) func([]T) []U {
	return func(items []T) []U { return list.FlatMap(items, fn) }
}

// Foldl returns a transformer folding front-to-back from initial.
func Foldl[T, U any](fn func(U, T) U, initial U) func([]T) U {
	return func(items []T) U { return list.Foldl(items, fn, initial) }
}

// Foldr returns a transformer folding back-to-front from initial.
func Foldr[T, U any](fn func(T, U) U, initial U) func([]T) U {
	return func(items []T) U { return list.Foldr(items, fn, initial) }
}

// Reverse returns a transformer reversing element order.
func Reverse[T any]() func([]T) []T {
	return func(items []T) []T { return list.Reverse(items) }
}

// Concat returns a transformer appending b after the piped list.
func Concat[T any](b []T) func([]T) []T {
	return func(items []T) []T { return list.Concat(items, b) }
}

// Cons returns a transformer appending value at the end of the piped list
// (see the naming note on [list.Cons]).
func Cons[T any](value T) func([]T) []T {
	return func(items []T) []T { return list.Cons(items, value) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a transformer keeping the first n elements.
func Take[T any](n int) func([]T) []T {
	return func(items []T) []T { return list.Take(items, n) }
}

// TakeWhile returns a transformer keeping the prefix satisfying fn.
func TakeWhile[T any](fn func(T, int) bool) func([]T) []T {
	return func(items []T) []T { return list.TakeWhile(items, fn) }
}

// Drop returns a transformer skipping the first n elements.
func Drop[T any](n int) func([]T) []T {
	return func(items []T) []T { return list.Drop(items, n) }
}

// DropWhile returns a transformer skipping the prefix satisfying fn.
func DropWhile[T any](fn func(T, int) bool) func([]T) []T {
	return func(items []T) []T { return list.DropWhile(items, fn) }
}

// Slice returns a transformer taking up to length[0] elements from start
// (to the end when length is omitted), with clamping.
func Slice[T any](start int, length ...int) func([]T) []T {
	return func(items []T) []T { return list.Slice(items, start, length...) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication, sorting, grouping, flattening
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a transformer removing duplicates by strict equality,
// keeping first occurrences.
func Unique[T comparable]() func([]T) []T {
	return func(items []T) []T { return list.Unique(items) }
}

// UniqueBy returns a transformer removing duplicates by the key fn extracts.
func UniqueBy[T any, K comparable](fn func(T) K) func([]T) []T {
	return func(items []T) []T { return list.UniqueBy(items, fn) }
}

// Sort returns a transformer sorting by the three-way comparator cmp
// (stable).
func Sort[T any](cmp func(a, b T) int) func([]T) []T {
	return func(items []T) []T { return list.Sort(items, cmp) }
}

// SortUnique returns a transformer sorting by cmp and collapsing elements
// equal under cmp.
func SortUnique[T any](cmp func(a, b T) int) func([]T) []T {
	return func(items []T) []T { return list.SortUnique(items, cmp) }
}

// GroupBy returns a transformer grouping elements by the key fn extracts,
// preserving first-seen key order.
func GroupBy[T any, K comparable](fn func(T) K) func([]T) *list.Grouping[K, T] {
	return func(items []T) *list.Grouping[K, T] { return list.GroupBy(items, fn) }
}

// Collapse returns a transformer flattening one level of nesting.
func Collapse[T any]() func([][]T) []T {
	return func(items [][]T) []T { return list.Collapse(items) }
}

// Flatten returns a transformer flattening a nested [list.Node] structure
// into its leaf values, depth-first.
func Flatten[T any]() func([]list.Node[T]) []T {
	return func(nodes []list.Node[T]) []T { return list.Flatten(nodes) }
}
