package list

// Node is a recursive tagged union for arbitrarily nested list structure:
// each node is either a leaf carrying a T, or a nested list of nodes. It
// exists so that [Flatten] can work over heterogeneous nesting with full
// type safety instead of runtime type inspection.
//
//	tree := []list.Node[int]{
//	    list.Leaf(1),
//	    list.Nest(list.Leaf(2), list.Nest(list.Leaf(3), list.Leaf(4))),
//	    list.Leaf(5),
//	}
//	list.Flatten(tree) // → [1 2 3 4 5]
type Node[T any] struct {
	value  T
	nested []Node[T]
	leaf   bool
}

// Leaf wraps a single value as a leaf node.
func Leaf[T any](value T) Node[T] {
	return Node[T]{value: value, leaf: true}
}

// Nest wraps a list of nodes as a nested node.
func Nest[T any](nodes ...Node[T]) Node[T] {
	return Node[T]{nested: nodes}
}

// IsLeaf reports whether n carries a value rather than nested nodes.
func (n Node[T]) IsLeaf() bool { return n.leaf }

// Value returns the leaf value together with a flag that is false when n is
// a nested node.
func (n Node[T]) Value() (T, bool) {
	if !n.leaf {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Nodes returns the nested children. A leaf has none.
func (n Node[T]) Nodes() []Node[T] {
	out := make([]Node[T], len(n.nested))
	copy(out, n.nested)
	return out
}

// Flatten recursively flattens nodes into a single flat slice of leaf
// values, in left-to-right depth-first order. An already-flat input (all
// leaves) comes back unchanged; nesting depth never changes the leaf count.
func Flatten[T any](nodes []Node[T]) []T {
	out := make([]T, 0, len(nodes))
	var walk func(ns []Node[T])
	walk = func(ns []Node[T]) {
		for _, n := range ns {
			if n.leaf {
				out = append(out, n.value)
			} else {
				walk(n.nested)
			}
		}
	}
	walk(nodes)
	return out
}

// FlattenAny recursively flattens any nested []any structure into a flat
// []any, in left-to-right depth-first order; non-slice elements are leaves.
// Prefer [Flatten] with [Node] values when the element type is known.
func FlattenAny(v any) []any {
	out := make([]any, 0)
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				walk(elem)
			}
		default:
			out = append(out, val)
		}
	}
	walk(v)
	return out
}
