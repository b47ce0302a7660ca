package chain

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-list-utils/list"
)

// List is a generic, immutable-by-default wrapper around a slice of T.
// Every transforming method returns a new List; the receiver is never
// mutated. See the package documentation for an overview.
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// Times creates a List of n elements where element i is fn(i).
func Times[T any](n int, fn func(int) T) *List[T] {
	return &List[T]{items: list.Init(n, fn)}
}

// wrap adopts an already-fresh slice produced by the list package.
func wrap[T any](items []T) *List[T] { return &List[T]{items: items} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// ToJSON serialises the list to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// Count returns the number of elements.
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Position lookups
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element, or [list.ErrEmptyList] when empty.
func (l *List[T]) Head() (T, error) { return list.Head(l.items) }

// Tail returns everything except the first element; never fails.
func (l *List[T]) Tail() *List[T] { return wrap(list.Tail(l.items)) }

// Nth returns the element at index, or [list.ErrIndexOutOfRange].
func (l *List[T]) Nth(index int) (T, error) { return list.Nth(l.items, index) }

// TryNth returns the element at index with a presence flag instead of an
// error.
func (l *List[T]) TryNth(index int) (T, bool) { return list.TryNth(l.items, index) }

// First returns the element at position 0, or [list.ErrEmptyList].
func (l *List[T]) First() (T, error) { return list.First(l.items) }

// Second returns the element at position 1.
func (l *List[T]) Second() (T, error) { return list.Second(l.items) }

// Third returns the element at position 2.
func (l *List[T]) Third() (T, error) { return list.Third(l.items) }

// Last returns the final element, or [list.ErrEmptyList].
func (l *List[T]) Last() (T, error) { return list.Last(l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Searching & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn, with a presence flag.
func (l *List[T]) Find(fn func(T, int) bool) (T, bool) { return list.Find(l.items, fn) }

// FindIndex returns the index of the first element satisfying fn, or -1.
func (l *List[T]) FindIndex(fn func(T, int) bool) int { return list.FindIndex(l.items, fn) }

// Some reports whether at least one element satisfies fn.
func (l *List[T]) Some(fn func(T, int) bool) bool { return list.Some(l.items, fn) }

// Every reports whether all elements satisfy fn (true when empty).
func (l *List[T]) Every(fn func(T, int) bool) bool { return list.Every(l.items, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in order.
func (l *List[T]) Each(fn func(T, int)) { list.Each(l.items, fn) }

// Tap calls fn(l) for side-effects (e.g. debugging mid-pipeline) and returns
// l unchanged for further chaining.
func (l *List[T]) Tap(fn func(*List[T])) *List[T] {
	fn(l)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new List with only the elements for which fn(item, index)
// returns true.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] { return wrap(list.Filter(l.items, fn)) }

// Reject returns a new List with elements for which fn returns true removed.
// It is the complement of [List.Filter].
func (l *List[T]) Reject(fn func(T, int) bool) *List[T] { return wrap(list.Reject(l.items, fn)) }

// Partition splits the list into two: elements for which fn returns true,
// and the rest.
func (l *List[T]) Partition(fn func(T, int) bool) (*List[T], *List[T]) {
	pass, fail := list.Partition(l.items, fn)
	return wrap(pass), wrap(fail)
}

// Reverse returns a new List with elements in reversed order.
func (l *List[T]) Reverse() *List[T] { return wrap(list.Reverse(l.items)) }

// Sort returns a new List sorted by the three-way comparator cmp.
// The sort is stable: elements equal under cmp keep their original order.
func (l *List[T]) Sort(cmp func(a, b T) int) *List[T] { return wrap(list.Sort(l.items, cmp)) }

// SortUnique returns a new List sorted by cmp with elements equal under cmp
// collapsed to their first post-sort representative.
func (l *List[T]) SortUnique(cmp func(a, b T) int) *List[T] {
	return wrap(list.SortUnique(l.items, cmp))
}

// UniqueBy returns a new List with duplicates removed using the key fn
// extracts; the first occurrence wins and order is preserved. For comparable
// element types the package-level [Unique] needs no key function.
func (l *List[T]) UniqueBy(fn func(T) any) *List[T] {
	return wrap(list.UniqueBy(l.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & concatenation
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new List with items appended at the end.
func (l *List[T]) Push(items ...T) *List[T] {
	return wrap(list.Concat(l.items, items))
}

// Concat returns a new List with all of other's elements appended.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	return wrap(list.Concat(l.items, other.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most the first n elements; n <= 0 yields an empty List.
func (l *List[T]) Take(n int) *List[T] { return wrap(list.Take(l.items, n)) }

// TakeWhile returns the prefix of elements satisfying fn.
func (l *List[T]) TakeWhile(fn func(T, int) bool) *List[T] {
	return wrap(list.TakeWhile(l.items, fn))
}

// Drop returns a new List skipping the first n elements (clamped).
func (l *List[T]) Drop(n int) *List[T] { return wrap(list.Drop(l.items, n)) }

// DropWhile skips the prefix satisfying fn and returns the remainder.
func (l *List[T]) DropWhile(fn func(T, int) bool) *List[T] {
	return wrap(list.DropWhile(l.items, fn))
}

// Slice returns up to length[0] elements starting at start, or everything
// from start when length is omitted, clamping out-of-range bounds.
func (l *List[T]) Slice(start int, length ...int) *List[T] {
	return wrap(list.Slice(l.items, start, length...))
}
