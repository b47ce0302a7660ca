package pipe

// Pipe threads value through fns left to right and returns the final result.
// All steps must accept and return the same type; interleave type-changing
// transformers (Map, the folds, …) between Pipe calls.
//
//	top := pipe.Pipe(words,
//	    pipe.Unique[string](),
//	    pipe.Sort(strings.Compare),
//	    pipe.Take[string](3),
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose fuses fns into a single reusable transformer applying them left to
// right: Compose(f, g)(x) == g(f(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		return Pipe(value, fns...)
	}
}

// Identity returns its argument unchanged. It is the neutral step of [Pipe]
// and [Compose].
func Identity[T any](v T) T { return v }

// Not negates a predicate, for reusing one predicate in both halves of a
// filter/reject or take-while/drop-while pair.
func Not[T any](fn func(T, int) bool) func(T, int) bool {
	return func(item T, i int) bool { return !fn(item, i) }
}
