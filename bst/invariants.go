package bst

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of t: every key in a left subtree
// is less than its parent's key, every key in a right subtree is greater, and
// the entry count matches the number of nodes.
//
// Check is intended to be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	count, err := checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("tree check failed: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size=%d)", ErrInvalidTree, count, t.size)
	}
	return nil
}

// checkNode verifies that all keys of the subtree at n lie strictly within (lo, hi).
// A nil bound is unbounded.
func checkNode[K cmp.Ordered, V Accumulable](n *Node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvalidTree, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvalidTree, n.key, *hi)
	}
	l, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
