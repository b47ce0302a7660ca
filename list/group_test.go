package list_test

import (
	"testing"

	"github.com/hasbyte1/go-list-utils/list"
)

func parity(n int) string {
	if n%2 == 0 {
		return "even"
	}
	return "odd"
}

func TestGroupBy(t *testing.T) {
	g := list.GroupBy([]int{1, 2, 3, 4, 5}, parity)
	even, ok := g.Get("even")
	if !ok {
		t.Fatal("missing even group")
	}
	assertSlice(t, even, []int{2, 4})
	odd, ok := g.Get("odd")
	if !ok {
		t.Fatal("missing odd group")
	}
	assertSlice(t, odd, []int{1, 3, 5})
}

func TestGroupByKeyOrder(t *testing.T) {
	g := list.GroupBy([]int{1, 2, 3, 4}, parity)
	assertSlice(t, g.Keys(), []string{"odd", "even"}) // first-seen order
}

func TestGroupByPartitionsExactly(t *testing.T) {
	in := []int{7, 2, 9, 2, 4, 7}
	g := list.GroupBy(in, parity)
	total := 0
	g.Each(func(_ string, group []int) { total += len(group) })
	if total != len(in) {
		t.Fatalf("groups contain %d elements; want %d", total, len(in))
	}
}

func TestGroupingLookups(t *testing.T) {
	g := list.GroupBy([]string{"ant", "bee", "axe"}, func(s string) byte { return s[0] })
	if g.Len() != 2 {
		t.Fatalf("Len = %d; want 2", g.Len())
	}
	if !g.Has('a') || g.Has('z') {
		t.Fatal("Has gave a wrong answer")
	}
	if _, ok := g.Get('z'); ok {
		t.Fatal("Get on a missing key should report false")
	}
}

func TestGroupingEachOrder(t *testing.T) {
	g := list.GroupBy([]int{3, 1, 2, 5, 4}, parity)
	var keys []string
	g.Each(func(k string, _ []int) { keys = append(keys, k) })
	assertSlice(t, keys, []string{"odd", "even"})
}

func TestGroupingGetReturnsCopy(t *testing.T) {
	g := list.GroupBy([]int{1, 2}, parity)
	odd, _ := g.Get("odd")
	odd[0] = 99
	again, _ := g.Get("odd")
	assertSlice(t, again, []int{1})
}
