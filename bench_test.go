// SPDX-License-Identifier: MIT

package avltree

import (
	"math/rand/v2"
	"testing"
)

func buildTree(n int, seed uint64) (*Node[int], []uint64) {
	prng := rand.New(rand.NewPCG(seed, seed))
	keys := make([]uint64, n)
	var root *Node[int]
	for i := range keys {
		keys[i] = prng.Uint64()
		root = Insert(root, &Node[int]{Key: keys[i]})
	}
	return root, keys
}

func BenchmarkLookup(b *testing.B) {
	root, keys := buildTree(100_000, 1)

	b.Run("hit", func(b *testing.B) {
		for i := 0; b.Loop(); i++ {
			Lookup(root, keys[i%len(keys)])
		}
	})

	b.Run("miss", func(b *testing.B) {
		for b.Loop() {
			Lookup(root, ^uint64(0))
		}
	})
}

func BenchmarkInsert(b *testing.B) {
	prng := rand.New(rand.NewPCG(2, 2))
	nodes := make([]*Node[int], b.N)
	for i := range nodes {
		nodes[i] = &Node[int]{Key: prng.Uint64()}
	}

	var root *Node[int]
	b.ResetTimer()
	for i := range nodes {
		root = Insert(root, nodes[i])
	}
}

func BenchmarkRemove(b *testing.B) {
	root, keys := buildTree(b.N, 3)

	b.ResetTimer()
	for _, k := range keys {
		root = Remove(root, k)
	}
}
