/*
Package bst provides a small ordered map, implemented as an unbalanced binary
search tree.

The tree is not a general purpose container. It is specialized for keys which
accumulate numeric values: inserting a key which is already present adds the
new value to the stored one instead of replacing it. This is what a sweep-line
algorithm needs to represent interval boundaries, where several opening or
closing edges may land on the same coordinate.

	var t bst.Tree[int, int]
	t.Insert(3, +1)
	t.Insert(7, -1)
	t.Insert(3, +1)     // 3 → 2
	for y, delta := range t.All() {
	    …               // (3, 2), (7, -1)
	}

Nodes are owned exclusively by their parent (and the root by the tree). There
are no parent links; all mutating operations are recursive and return the new
root of the subtree they worked on.

Removal of a node with two children promotes the node's in-order successor,
i.e. the node with the minimum key in its right subtree: the successor's key and
value are copied into the node, then the successor is removed from the right
subtree recursively.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fabric'
func tracer() tracing.Trace {
	return tracing.Select("fabric")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
