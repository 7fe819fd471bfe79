// SPDX-License-Identifier: MIT

// Package nodepool demonstrates one of the node-storage strategies the
// avltree package leaves to the caller (its package documentation
// states that callers provide all node storage): a sync.Pool of *avltree.Node[V]
// with allocation and live-count tracking, adapted from the same
// pattern the teacher of this module uses for its own trie nodes.
//
// avltree itself imports nothing from this package and never calls
// into it; Pool exists purely as caller-side infrastructure a real
// user of avltree could build on. It is not part of the algorithm's
// zero-allocation, bounded-worst-case-time contract — Get and Put are
// ordinary Go allocation/GC and are not meant to be called from a
// context with real-time deadlines.
package nodepool

import (
	"sync"
	"sync/atomic"

	"github.com/redline-ecu/avltree"
)

// Pool is a type-safe wrapper around sync.Pool specialized for
// *avltree.Node[V]. It tracks allocation and live-use statistics for
// debugging and capacity planning.
type Pool[V any] struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// New creates a pool of *avltree.Node[V] instances.
func New[V any]() *Pool[V] {
	p := &Pool[V]{}
	p.Pool.New = func() any {
		p.totalAllocated.Add(1)
		return new(avltree.Node[V])
	}
	return p
}

// Get retrieves a node from the pool, allocating a new one if the
// pool is empty. The returned node's Key and Value are zero-valued;
// the caller must set Key before passing it to avltree.Insert.
func (p *Pool[V]) Get() *avltree.Node[V] {
	p.currentLive.Add(1)
	return p.Pool.Get().(*avltree.Node[V])
}

// Put returns a node to the pool for reuse. The node must already
// have been removed from any tree (avltree.Remove clears its linkage
// before returning it); Put clears Key and Value as well so a reused
// node never leaks a stale payload.
func (p *Pool[V]) Put(n *avltree.Node[V]) {
	p.currentLive.Add(-1)
	var zero V
	n.Key = 0
	n.Value = zero
	p.Pool.Put(n)
}

// Stats reports the number of nodes currently checked out and the
// total number ever allocated by this pool.
func (p *Pool[V]) Stats() (live, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}
