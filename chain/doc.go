// Package chain provides a generic, immutable, chainable List type over the
// operations in the list package, for fluent left-to-right pipelines.
//
// # Overview
//
//	result := chain.New(5, 3, 1, 4, 2, 3).
//	    Filter(func(n, _ int) bool { return n > 1 }).
//	    Sort(func(a, b int) int { return a - b }).
//	    Take(3).
//	    All() // → [2 3 3]
//
// # Immutability
//
// Every transforming method returns a *new* List, leaving the receiver
// unchanged; the underlying slice is copied on construction and on [List.All].
// List values are therefore safe to share across goroutines for reads and
// free of aliasing surprises in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	names := chain.Map(users, func(u User, _ int) string { return u.Name })
//	total := chain.Foldl(orders, func(acc float64, o Order) float64 {
//	    return acc + o.Amount
//	}, 0)
//
// Package-level functions: [Map], [FlatMap], [Foldl], [Foldr], [GroupBy],
// [Unique], [Collapse].
//
// # Relation to list and pipe
//
// All three packages expose the same operation set with identical semantics.
// chain methods delegate to the list package; pick whichever calling style
// reads best at the call site.
package chain
