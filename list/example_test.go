package list_test

import (
	"fmt"

	"github.com/hasbyte1/go-list-utils/list"
)

func ExampleFilter() {
	evens := list.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleMap() {
	doubled := list.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleFoldl() {
	sum := list.Foldl([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 10
}

func ExampleFoldr() {
	s := list.Foldr([]string{"a", "b", "c"}, func(elem, acc string) string { return acc + elem }, "")
	fmt.Println(s)
	// Output: cba
}

func ExampleTakeWhile() {
	isEven := func(n, _ int) bool { return n%2 == 0 }
	fmt.Println(list.TakeWhile([]int{2, 4, 6, 7, 10}, isEven))
	fmt.Println(list.DropWhile([]int{2, 4, 6, 7, 10}, isEven))
	// Output:
	// [2 4 6]
	// [7 10]
}

func ExampleSortUnique() {
	got := list.SortUnique([]int{3, 1, 3, 2, 2}, func(a, b int) int { return a - b })
	fmt.Println(got)
	// Output: [1 2 3]
}

func ExampleGroupBy() {
	g := list.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	for _, k := range g.Keys() {
		group, _ := g.Get(k)
		fmt.Println(k, group)
	}
	// Output:
	// odd [1 3 5]
	// even [2 4]
}

func ExampleFlatten() {
	tree := []list.Node[int]{
		list.Leaf(1),
		list.Nest(list.Leaf(2), list.Nest(list.Leaf(3))),
		list.Leaf(4),
	}
	fmt.Println(list.Flatten(tree))
	// Output: [1 2 3 4]
}

func ExampleInit() {
	squares := list.Init(5, func(i int) int { return i * i })
	fmt.Println(squares)
	// Output: [0 1 4 9 16]
}
