// Package list provides standalone, generic, side-effect-free transformation
// functions over plain Go slices treated as ordered, 0-indexed lists.
//
// # Purity
//
// No function mutates its input. Every transformation allocates and returns a
// fresh slice, so callers may freely mutate a result without affecting the
// input, and may keep passing the same input to further calls:
//
//	evens := list.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	rev   := list.Reverse(evens) // evens is untouched
//
// # Callback contracts
//
// Predicates and mapping callbacks receive (element, index), where index is
// the element's position in the original input:
//
//	names := list.Map(users, func(u User, _ int) string { return u.Name })
//
// Folds take no index. Foldl folds front-to-back with fn(acc, elem); Foldr
// folds back-to-front with fn(elem, acc). Comparators are three-way:
// negative, zero, or positive for a < b, a == b, a > b.
//
// # Lookups: errors vs. absence
//
// Position lookups that must succeed ([Head], [Nth], [First], [Second],
// [Third], [Last]) return an error ([ErrEmptyList] or [ErrIndexOutOfRange])
// when the position does not exist. Lookups that may legitimately find
// nothing ([Find], [TryNth]) report absence with a false boolean instead;
// [FindIndex] returns -1. The two mechanisms are deliberately distinct: use
// TryNth when absence is expected, Nth when it is a bug.
//
// # Pipeline form
//
// Every operation here has a curried counterpart in the pipe package that
// partially applies the non-list arguments and returns a unary transformer,
// for building reusable pipelines. The chain package offers the same
// operations as methods on an immutable wrapper for fluent chaining.
package list
