// Package pipe provides the curried, pipeline-friendly form of every
// operation in the list package: each constructor partially applies the
// non-list arguments and returns a unary transformer awaiting the list.
//
//	isEven := func(n, _ int) bool { return n%2 == 0 }
//
//	keepEvens := pipe.Filter(isEven) // func([]int) []int, reusable
//	keepEvens([]int{1, 2, 3, 4})     // → [2 4]
//
// Constructors and their list counterparts always produce identical results
// for the same logical arguments — every transformer delegates to the list
// package, so the curried form is pure composition sugar.
//
// # Composing pipelines
//
// Type-preserving steps chain with [Pipe] or fuse into one reusable
// transformer with [Compose]:
//
//	top2 := pipe.Compose(
//	    pipe.Unique[string](),
//	    pipe.Sort(strings.Compare),
//	    pipe.Take[string](2),
//	)
//	top2([]string{"b", "a", "b", "c"}) // → [a b]
//
// Steps that change the element type (Map, FlatMap, the folds, GroupBy)
// cannot share a single func([]T) []T signature, so apply them between
// composed segments:
//
//	names := pipe.Map(func(u User, _ int) string { return u.Name })(
//	    onlyActive(users),
//	)
//
// Operations whose only argument is the list itself (Reverse, Unique, Head,
// …) are exposed as nullary constructors so pipelines stay uniform.
package pipe
