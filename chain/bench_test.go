package chain_test

import (
	"testing"

	"github.com/hasbyte1/go-list-utils/chain"
)

// makeInts creates a List[int] of size n for benchmarks.
func makeInts(n int) *chain.List[int] {
	return chain.Times(n, func(i int) int { return i + 1 })
}

func BenchmarkFilter(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Map(l, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkChainedPipeline(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(func(n, _ int) bool { return n%2 == 0 }).
			Sort(func(x, y int) int { return y - x }).
			Take(10)
	}
}
