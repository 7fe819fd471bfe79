// SPDX-License-Identifier: MIT

package avltree

import (
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical diagram of the tree's keys, largest
// key first, indented by depth. Wraps Dump. Useful in a debugger or a
// failing test's t.Log, not intended for parsing.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	t.Dump(w)
	return w.String()
}

// Dump writes a hierarchical diagram of the tree to w: one line per
// node, indented by depth, annotated with height and balance factor.
// Traverses recursively over child pointers (right subtree, node, left
// subtree); never called from a mutation path.
func (t *Tree[V]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "<empty>")
		return
	}
	dumpNode(w, t.root, 0)
}

func dumpNode[V any](w io.Writer, n *Node[V], depth int) {
	if n == nil {
		return
	}
	dumpNode(w, n.right, depth+1)
	fmt.Fprintf(w, "%s key=%d height=%d bal=%+d\n", strings.Repeat("    ", depth), n.Key, n.height, BalanceFactor(n))
	dumpNode(w, n.left, depth+1)
}
