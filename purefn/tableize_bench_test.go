package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/fnkit/purefn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkFib20(b *testing.B) {
	b.Run("Naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = naiveFib(20)
		}
	})

	b.Run("Tableized", func(b *testing.B) {
		var fib func(int) int
		fib = purefn.TableizeI1O1(func(n int) int {
			if n <= 1 {
				return n
			}
			return fib(n-1) + fib(n-2)
		}, 32)
		for i := 0; i < b.N; i++ {
			_ = fib(20)
		}
	})

	b.Run("CacheFunction", func(b *testing.B) {
		var fib func(...any) int
		fib = purefn.CacheFunction(func(args ...any) int {
			n := args[0].(int)
			if n <= 1 {
				return n
			}
			return fib(n-1) + fib(n-2)
		}, 32)
		for i := 0; i < b.N; i++ {
			_ = fib(20)
		}
	})
}

func editDistance(recurse func(string, string) int) func(string, string) int {
	return func(a, b string) int {
		switch {
		case len(a) == 0:
			return len(b)
		case len(b) == 0:
			return len(a)
		case a[0] == b[0]:
			return recurse(a[1:], b[1:])
		}
		return 1 + min(recurse(a[1:], b), recurse(a, b[1:]), recurse(a[1:], b[1:]))
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	b.Run("Naive", func(b *testing.B) {
		var lev func(string, string) int
		lev = editDistance(func(a, b string) int { return lev(a, b) })
		for i := 0; i < b.N; i++ {
			_ = lev("kitten", "sitting")
		}
	})

	for _, size := range []uint32{2, 8, 32} {
		b.Run(fmt.Sprintf("TableSize_%d", size), func(b *testing.B) {
			var lev func(string, string) int
			lev = purefn.TableizeI2O1(editDistance(func(a, b string) int { return lev(a, b) }), size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

func BenchmarkCacheFunction_NonComparable(b *testing.B) {
	sum := purefn.CacheFunction(func(args ...any) int {
		total := 0
		for _, v := range args[0].([]int) {
			total += v
		}
		return total
	}, 32)
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < b.N; i++ {
		_ = sum(input)
	}
}
