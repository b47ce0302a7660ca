package chain_test

import (
	"fmt"

	"github.com/hasbyte1/go-list-utils/chain"
)

func ExampleNew() {
	l := chain.New(1, 2, 3, 4, 5)
	fmt.Println(l.Count(), l.String())
	// Output: 5 [1,2,3,4,5]
}

func ExampleList_Filter() {
	result := chain.New(1, 2, 3, 4, 5, 6).
		Filter(func(n, _ int) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleList_Sort() {
	result := chain.New(5, 3, 1, 4, 2).
		Sort(func(a, b int) int { return a - b }).
		All()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleList_Partition() {
	evens, odds := chain.New(1, 2, 3, 4, 5).
		Partition(func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens.All(), odds.All())
	// Output: [2 4] [1 3 5]
}

func ExampleList_TakeWhile() {
	result := chain.New(2, 4, 6, 7, 10).
		TakeWhile(func(n, _ int) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleMap() {
	squares := chain.Map(chain.New(1, 2, 3), func(n, _ int) int { return n * n })
	fmt.Println(squares.All())
	// Output: [1 4 9]
}

func ExampleFoldl() {
	sum := chain.Foldl(chain.New(1, 2, 3, 4), func(acc, n int) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 10
}

func ExampleGroupBy() {
	g := chain.GroupBy(chain.New(1, 2, 3, 4, 5), func(n int) string {
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
