package bst

import (
	"math/rand/v2"
	"testing"
)

const benchmarkTreeSize = 10_000

func BenchmarkInsert(b *testing.B) {
	insertP := rand.Perm(benchmarkTreeSize)
	b.ResetTimer()
	i := 0
	for i < b.N {
		var t Tree[int, int]
		for _, item := range insertP {
			t.Insert(item, 1)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkInorder(b *testing.B) {
	var t Tree[int, int]
	for _, item := range rand.Perm(benchmarkTreeSize) {
		t.Insert(item, 1)
	}
	b.ResetTimer()
	for range b.N {
		_ = t.Inorder()
	}
}
