// SPDX-License-Identifier: MIT

// Command avltreedemo drives a pool-backed avltree.Tree through a
// randomized insert/lookup/remove cycle and reports basic shape
// statistics, the way the teacher's own cmd/main.go drives a routing
// table through a randomized probe workload.
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/redline-ecu/avltree"
	"github.com/redline-ecu/avltree/nodepool"
)

const poolSize = 10_000

func main() {
	prng := rand.New(rand.NewPCG(42, 42))
	pool := nodepool.New[struct{}]()

	var tree avltree.Tree[struct{}]
	keys := make([]uint64, 0, poolSize)

	for len(keys) < poolSize {
		k := prng.Uint64() % (poolSize * 10)
		n := pool.Get()
		n.Key = k
		if tree.Insert(n) {
			keys = append(keys, k)
		} else {
			pool.Put(n)
		}
	}

	found := 0
	for _, k := range keys {
		if tree.Lookup(k) != nil {
			found++
		}
	}

	if err := tree.Validate(); err != nil {
		fmt.Println("VALIDATION FAILED:", err)
		return
	}

	live, total := pool.Stats()
	fmt.Printf("inserted=%d found=%d height=%d live=%d allocated=%d\n",
		tree.Len(), found, tree.Root().Height(), live, total)

	prng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		n := tree.Lookup(k)
		if n == nil {
			continue
		}
		tree.Remove(k)
		pool.Put(n)
	}

	if err := tree.Validate(); err != nil {
		fmt.Println("VALIDATION FAILED AFTER DRAIN:", err)
		return
	}
	fmt.Printf("drained: remaining=%d\n", tree.Len())
}
