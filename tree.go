// SPDX-License-Identifier: MIT

package avltree

// Tree is a convenience handle around a tree's root pointer. It exists
// purely so callers don't have to thread the "returned root replaces
// the previous root" contract (see Insert, Remove) through their own
// code by hand; every method here is a thin wrapper over the
// package-level functions, which remain independently usable for
// callers who manage their own root pointer.
//
// The zero value is an empty tree, ready to use.
type Tree[V any] struct {
	root *Node[V]
	size int
}

// Root returns the tree's current root, or nil if the tree is empty.
// Exposed for diagnostics; mutating the returned node's linkage
// bypasses the tree's invariants and is the caller's problem.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Len returns the number of nodes currently in the tree, maintained
// incrementally in O(1).
func (t *Tree[V]) Len() int { return t.size }

// Lookup returns the node with the given key, or nil.
func (t *Tree[V]) Lookup(key uint64) *Node[V] {
	return Lookup(t.root, key)
}

// Insert attaches n to the tree. n must be freshly initialized (see
// Insert). Reports whether the insertion happened; it is false, and
// the tree unchanged, if n.Key is already present.
func (t *Tree[V]) Insert(n *Node[V]) bool {
	newRoot := Insert(t.root, n)
	if Lookup(newRoot, n.Key) != n {
		// duplicate key: newRoot is the unchanged original root
		return false
	}
	t.root = newRoot
	t.size++
	return true
}

// Remove deletes the node with the given key. Reports whether a node
// was actually removed.
func (t *Tree[V]) Remove(key uint64) bool {
	if Lookup(t.root, key) == nil {
		return false
	}
	t.root = Remove(t.root, key)
	t.size--
	return true
}

// Min returns the node with the smallest key in the tree, or nil if
// the tree is empty.
func (t *Tree[V]) Min() *Node[V] {
	if t.root == nil {
		return nil
	}
	return t.root.Min()
}
