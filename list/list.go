package list

import (
	"fmt"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Cardinality & position lookups
// ─────────────────────────────────────────────────────────────────────────────

// Length returns the number of elements in items.
func Length[T any](items []T) int { return len(items) }

// IsEmpty reports whether items contains no elements.
func IsEmpty[T any](items []T) bool { return len(items) == 0 }

// Head returns the first element.
// Returns [ErrEmptyList] when items is empty.
func Head[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyList
	}
	return items[0], nil
}

// Tail returns a copy of every element except the first.
// On an empty or single-element list it returns an empty list; it never fails.
func Tail[T any](items []T) []T {
	if len(items) <= 1 {
		return []T{}
	}
	out := make([]T, len(items)-1)
	copy(out, items[1:])
	return out
}

// Nth returns the element at index.
// Returns [ErrIndexOutOfRange] (carrying the index and list length) when
// index is not an existing position. Negative indices do not wrap around.
func Nth[T any](items []T, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(items))
	}
	return items[index], nil
}

// TryNth is the non-failing counterpart of [Nth]: it returns the zero value
// and false instead of an error when index is out of range.
func TryNth[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// First returns the element at position 0.
// Returns [ErrEmptyList] when items is empty.
func First[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyList
	}
	return Nth(items, 0)
}

// Second returns the element at position 1, or [ErrIndexOutOfRange] when the
// list is shorter.
func Second[T any](items []T) (T, error) { return Nth(items, 1) }

// Third returns the element at position 2, or [ErrIndexOutOfRange] when the
// list is shorter.
func Third[T any](items []T) (T, error) { return Nth(items, 2) }

// Last returns the element at position Length-1.
// Returns [ErrEmptyList] when items is empty.
func Last[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyList
	}
	return Nth(items, len(items)-1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Find scans in order and returns the first element for which fn(item, index)
// is true. Returns the zero value and false when no element matches.
func Find[T any](items []T, fn func(T, int) bool) (T, bool) {
	for i, item := range items {
		if fn(item, i) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T, int) bool) int {
	for i, item := range items {
		if fn(item, i) {
			return i
		}
	}
	return -1
}

// Some reports whether at least one element satisfies fn, short-circuiting at
// the first match. On an empty list it is false.
func Some[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if fn(item, i) {
			return true
		}
	}
	return false
}

// Every reports whether all elements satisfy fn, short-circuiting at the
// first failure. On an empty list it is true.
func Every[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if !fn(item, i) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in list order, sequentially.
// It exists for caller-supplied side effects and returns nothing.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice of the
// same length.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) is true, preserving
// their relative order. The index passed to fn is the element's position in
// items, not in the output.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Partition splits items into two order-preserving lists: elements satisfying
// fn, and the rest. Every input element appears in exactly one of the two.
func Partition[T any](items []T, fn func(T, int) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range items {
		if fn(item, i) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// FlatMap applies fn(item, index) to each element (producing a []U per
// element) and concatenates the results, in order, into one flat slice.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Foldl folds front-to-back: acc starts at initial and each element is
// combined with fn(acc, item).
//
//	sum := list.Foldl([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0)
func Foldl[T, U any](items []T, fn func(U, T) U, initial U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Foldr folds back-to-front: acc starts at initial and elements are combined
// from the last one backward with fn(item, acc).
func Foldr[T, U any](items []T, fn func(T, U) U, initial U) U {
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(items[i], acc)
	}
	return acc
}

// Reverse returns a copy of items in reverse order.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & concatenation
// ─────────────────────────────────────────────────────────────────────────────

// Init constructs a list of length n where out[i] = fn(i).
// n <= 0 yields an empty list.
func Init[T any](n int, fn func(int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// Concat returns a's elements, in order, followed by b's.
func Concat[T any](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// Cons returns a copy of items with value appended at the end.
//
// Note: unlike the Lisp/ML tradition where cons prepends, Cons appends. The
// name is kept for parity with the list-processing vocabulary this library
// mirrors; use [Concat] with a single-element first argument to prepend.
func Cons[T any](items []T, value T) []T {
	out := make([]T, len(items)+1)
	copy(out, items)
	out[len(items)] = value
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of the first min(n, Length) elements.
// n <= 0 yields an empty list.
func Take[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// TakeWhile returns the longest prefix of elements for which fn(item, index)
// holds, stopping before (and excluding) the first failing element.
func TakeWhile[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0)
	for i, item := range items {
		if !fn(item, i) {
			break
		}
		out = append(out, item)
	}
	return out
}

// Drop returns a copy of the elements after skipping the first n.
// n is clamped to [0, Length].
func Drop[T any](items []T, n int) []T {
	if n <= 0 {
		n = 0
	}
	if n >= len(items) {
		return []T{}
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// DropWhile skips the prefix of elements for which fn(item, index) holds and
// returns the remainder, starting at (and including) the first element for
// which fn returned false. Empty when fn never returns false.
func DropWhile[T any](items []T, fn func(T, int) bool) []T {
	for i, item := range items {
		if !fn(item, i) {
			out := make([]T, len(items)-i)
			copy(out, items[i:])
			return out
		}
	}
	return []T{}
}

// Slice returns up to length[0] elements starting at start, or everything
// from start to the end when length is omitted. Out-of-range start and
// length clamp rather than fail; negative start clamps to 0.
func Slice[T any](items []T, start int, length ...int) []T {
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := len(items)
	if len(length) > 0 {
		if length[0] <= 0 {
			return []T{}
		}
		if e := start + length[0]; e < end {
			end = e
		}
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a copy with duplicates removed using strict equality,
// keeping the first occurrence of each distinct value in first-occurrence
// order. Idempotent.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy removes duplicates using a key function, for element types that
// are not themselves comparable. First occurrence wins, order preserved.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items ordered by the three-way comparator
// cmp, which must implement a strict weak ordering (negative when a < b, zero
// when equal, positive when a > b). The sort is stable: elements equal under
// cmp keep their input order.
func Sort[T any](items []T, cmp func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// SortUnique sorts items by cmp and collapses each run of elements equal
// under cmp into its first post-sort representative. The result is strictly
// increasing under cmp. Empty input yields an empty list.
func SortUnique[T any](items []T, cmp func(a, b T) int) []T {
	sorted := Sort(items, cmp)
	out := make([]T, 0, len(sorted))
	for _, item := range sorted {
		if len(out) > 0 && cmp(out[len(out)-1], item) == 0 {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening (one level)
// ─────────────────────────────────────────────────────────────────────────────

// Collapse flattens a slice of slices into a single flat slice (one level).
// For arbitrarily nested structures see [Flatten] and [FlattenAny].
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}
