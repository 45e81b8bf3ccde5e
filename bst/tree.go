package bst

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Accumulable is the constraint for values stored in a Tree.
// Inserting a key which is already present adds to its value, so values have
// to support addition.
type Accumulable interface {
	constraints.Integer | constraints.Float
}

// Tree is an ordered map from keys K to accumulable values V, implemented as an
// unbalanced binary search tree.
//
// A tree created by
//
//	var t Tree[int, int]
//
// is a valid object and behaves like an empty map.
//
// The tree does no re-balancing. Its height depends on the order of insertion,
// which gives these characteristics:
//
//	Operation     |   average     |  worst
//	--------------+---------------+--------
//	Insert        |   O(log n)    |   O(n)
//	Find          |   O(log n)    |   O(n)
//	Remove        |   O(log n)    |   O(n)
//	Traversal     |   O(n)        |   O(n)
//
// Trees have to be used by pointer. Use Clone to get an independent copy.
type Tree[K cmp.Ordered, V Accumulable] struct {
	root *Node[K, V]
	size int
}

// Node is a node of a Tree, holding a key and its accumulated value.
//
// Clients get nodes from Find and MinNode. A node reference is valid only until
// the next mutation of the tree: removal may move keys between nodes.
type Node[K cmp.Ordered, V Accumulable] struct {
	key   K
	value V
	left  *Node[K, V]
	right *Node[K, V]
}

// Key returns the key of node n.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the accumulated value of node n.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Root returns the root node of t, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[K cmp.Ordered, V Accumulable](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Insert adds value to the value stored for key. If key is not yet present,
// a new entry key → value is created.
// Insert returns the value stored for key after the operation.
func (t *Tree[K, V]) Insert(key K, value V) V {
	var stored V
	var added bool
	t.root, stored, added = insert(t.root, key, value)
	if added {
		t.size++
	}
	return stored
}

// insert works on the subtree rooted at n and returns the new subtree root.
func insert[K cmp.Ordered, V Accumulable](n *Node[K, V], key K, value V) (*Node[K, V], V, bool) {
	if n == nil {
		return &Node[K, V]{key: key, value: value}, value, true
	}
	var stored V
	var added bool
	switch c := cmp.Compare(key, n.key); {
	case c == 0:
		n.value += value // accumulate, never replace
		return n, n.value, false
	case c < 0:
		n.left, stored, added = insert(n.left, key, value)
	default:
		n.right, stored, added = insert(n.right, key, value)
	}
	return n, stored, added
}

// Find returns the node holding key, or nil if key is not present.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t == nil {
		return nil
	}
	return find(t.root, key)
}

func find[K cmp.Ordered, V Accumulable](n *Node[K, V], key K) *Node[K, V] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(key, n.key); {
	case c == 0:
		return n
	case c < 0:
		return find(n.left, key)
	}
	return find(n.right, key)
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Value returns the value stored for key.
// If key is not present, Value returns ErrKeyNotFound.
func (t *Tree[K, V]) Value(key K) (V, error) {
	if n := t.Find(key); n != nil {
		return n.value, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Remove deletes the entry for key and reports whether it was present.
// Removing a key which is not present is a no-op.
func (t *Tree[K, V]) Remove(key K) bool {
	if t == nil {
		return false
	}
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}
	return removed
}

// remove deletes key from the subtree rooted at n and returns the new subtree root.
func remove[K cmp.Ordered, V Accumulable](n *Node[K, V], key K) (*Node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, removed = remove(n.left, key)
		return n, removed
	case c > 0:
		n.right, removed = remove(n.right, key)
		return n, removed
	}
	// n holds key
	if n.left == nil {
		return n.right, true // leaf or right child only
	}
	if n.right == nil {
		return n.left, true
	}
	// Two children: promote the in-order successor. It has no left child,
	// so removing it from the right subtree ends in one of the cases above.
	succ := MinNode(n.right)
	assert(succ != nil && succ.left == nil, "remove: successor must not have a left child")
	n.key, n.value = succ.key, succ.value
	n.right, removed = remove(n.right, succ.key)
	assert(removed, "remove: successor not found in right subtree")
	return n, true
}

// MinNode returns the node with the minimum key in the subtree rooted at n,
// i.e. its leftmost node. MinNode returns nil if n is nil.
func MinNode[K cmp.Ordered, V Accumulable](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// MaxNode returns the node with the maximum key in the subtree rooted at n,
// or nil if n is nil.
func MaxNode[K cmp.Ordered, V Accumulable](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the minimum key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[K, V]) Min() (K, bool) {
	if n := MinNode(t.Root()); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Max returns the maximum key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[K, V]) Max() (K, bool) {
	if n := MaxNode(t.Root()); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Clear removes all entries from t.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy of t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	return &Tree[K, V]{root: t.root.clone(), size: t.size}
}

func (n *Node[K, V]) clone() *Node[K, V] {
	if n == nil {
		return nil
	}
	return &Node[K, V]{
		key:   n.key,
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}
