// SPDX-License-Identifier: MIT

package avltree

import "testing"

func TestLookupEmptyTree(t *testing.T) {
	if got := Lookup[int](nil, 42); got != nil {
		t.Fatalf("Lookup on empty tree = %v, want nil", got)
	}
}

func TestLookupFindsInsertedKeys(t *testing.T) {
	var root *Node[string]
	nodes := map[uint64]*Node[string]{}
	for _, k := range []uint64{50, 25, 75, 10, 30, 60, 90} {
		n := &Node[string]{Key: k, Value: "v"}
		nodes[k] = n
		root = Insert(root, n)
	}

	for k, want := range nodes {
		if got := Lookup(root, k); got != want {
			t.Fatalf("Lookup(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestLookupMissingKeyReturnsNil(t *testing.T) {
	var root *Node[int]
	root = Insert(root, &Node[int]{Key: 5})
	root = Insert(root, &Node[int]{Key: 15})

	if got := Lookup(root, 999); got != nil {
		t.Fatalf("Lookup(999) = %v, want nil", got)
	}
}
