package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/fnkit/pure"
)

func deepSequence(depth, width int) []any {
	if depth == 0 {
		leaves := make([]any, width)
		for i := range leaves {
			leaves[i] = i
		}
		return leaves
	}
	seq := make([]any, width)
	for i := range seq {
		seq[i] = deepSequence(depth-1, width)
	}
	return seq
}

func deepStructure(depth, width int, leaf any) map[string]any {
	m := make(map[string]any, width)
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("k%d", i)
		if depth == 0 {
			m[key] = leaf
			continue
		}
		m[key] = deepStructure(depth-1, width, leaf)
	}
	return m
}

func BenchmarkFlatten(b *testing.B) {
	for _, depth := range []int{1, 4, 8} {
		seq := deepSequence(depth, 3)
		b.Run(fmt.Sprintf("Depth_%d", depth), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = pure.Flatten(seq)
			}
		})
	}
}

func BenchmarkCheckMatchingLeaves(b *testing.B) {
	for _, depth := range []int{1, 4, 6} {
		obj := deepStructure(depth, 3, 5)
		b.Run(fmt.Sprintf("Depth_%d", depth), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = pure.CheckMatchingLeaves(obj)
			}
		})
	}
}
