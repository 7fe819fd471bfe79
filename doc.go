// SPDX-License-Identifier: MIT

// Package avltree provides an in-place, iterative, self-balancing
// ordered dictionary keyed by 64-bit unsigned integers.
//
// The tree is intended for real-time, safety-critical environments.
// Callers provide all node storage; Lookup, Insert and Remove perform
// no dynamic allocation, use no recursion, and complete in O(log n)
// time and O(1) auxiliary stack space. The diagnostic helpers are
// outside that guarantee: Validate allocates a traversal stack, and
// Dump/String recurse and build text.
//
// Nodes are intrusive: a *Node[V] carries its own left/right/parent
// links and height directly, the way container/list.Element carries
// its own list linkage. The package never allocates a Node — the
// caller creates one (on the stack, in a slice, from a pool, however
// it likes) and hands a pointer to Insert.
//
// These five operations are the entire public surface of the core
// engine: Lookup, Insert, Remove, (*Node[V]).Min, and (*Node[V]).BalanceFactor
// for diagnostics. Tree[V] is a convenience wrapper around a root
// pointer for callers who don't want to thread it by hand.
package avltree
