package list_test

import (
	"testing"

	"github.com/hasbyte1/go-list-utils/list"
)

func TestFlattenNested(t *testing.T) {
	tree := []list.Node[int]{
		list.Leaf(1),
		list.Nest(list.Leaf(2), list.Nest(list.Leaf(3), list.Leaf(4))),
		list.Leaf(5),
		list.Nest[int](),
	}
	assertSlice(t, list.Flatten(tree), []int{1, 2, 3, 4, 5})
}

func TestFlattenAlreadyFlat(t *testing.T) {
	flat := []list.Node[string]{list.Leaf("a"), list.Leaf("b")}
	assertSlice(t, list.Flatten(flat), []string{"a", "b"})
}

func TestFlattenPreservesLeafCount(t *testing.T) {
	shallow := []list.Node[int]{list.Leaf(1), list.Leaf(2), list.Leaf(3)}
	deep := []list.Node[int]{list.Nest(list.Leaf(1), list.Nest(list.Nest(list.Leaf(2)), list.Leaf(3)))}
	if len(list.Flatten(shallow)) != len(list.Flatten(deep)) {
		t.Fatal("nesting depth should not change the leaf count")
	}
}

func TestNodeAccessors(t *testing.T) {
	leaf := list.Leaf(42)
	if !leaf.IsLeaf() {
		t.Fatal("Leaf should be a leaf")
	}
	v, ok := leaf.Value()
	if !ok || v != 42 {
		t.Fatalf("Value = %v, %v; want 42, true", v, ok)
	}

	nest := list.Nest(list.Leaf(1), list.Leaf(2))
	if nest.IsLeaf() {
		t.Fatal("Nest should not be a leaf")
	}
	if _, ok := nest.Value(); ok {
		t.Fatal("Value on a nested node should report false")
	}
	if len(nest.Nodes()) != 2 {
		t.Fatalf("Nodes = %v; want 2 children", nest.Nodes())
	}
}

func TestFlattenAny(t *testing.T) {
	in := []any{1, []any{2, []any{3, 4}}, 5}
	got := list.FlattenAny(in)
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("FlattenAny = %v; want %v", got, want)
	}
	for i, v := range got {
		if v.(int) != want[i] {
			t.Fatalf("index %d: got %v want %v", i, v, want[i])
		}
	}
}

func TestFlattenAnyLeaf(t *testing.T) {
	got := list.FlattenAny("solo")
	if len(got) != 1 || got[0].(string) != "solo" {
		t.Fatalf("FlattenAny on a leaf = %v; want [solo]", got)
	}
}
