package list

// Grouping is the ordered result of [GroupBy]: a mapping from group key to
// the ordered sublist of elements that produced that key. Unlike a plain Go
// map it remembers the order in which keys were first seen, so iteration is
// deterministic.
type Grouping[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// GroupBy computes fn(item) for each element and groups elements sharing a
// key. Keys appear in first-seen order; elements keep their original order
// within each group. The groups partition items exactly.
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Grouping[K, T] {
	g := &Grouping[K, T]{groups: make(map[K][]T)}
	for _, item := range items {
		k := fn(item)
		if _, ok := g.groups[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], item)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Grouping[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the group for key together with a presence flag.
// The returned slice is a copy.
func (g *Grouping[K, T]) Get(key K) ([]T, bool) {
	group, ok := g.groups[key]
	if !ok {
		return nil, false
	}
	out := make([]T, len(group))
	copy(out, group)
	return out, true
}

// Has reports whether key names an existing group.
func (g *Grouping[K, T]) Has(key K) bool {
	_, ok := g.groups[key]
	return ok
}

// Len returns the number of distinct groups.
func (g *Grouping[K, T]) Len() int { return len(g.keys) }

// Each calls fn(key, group) for every group, in first-seen key order.
func (g *Grouping[K, T]) Each(fn func(K, []T)) {
	for _, k := range g.keys {
		group := make([]T, len(g.groups[k]))
		copy(group, g.groups[k])
		fn(k, group)
	}
}
