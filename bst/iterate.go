package bst

import "iter"

// Entry is a key/value pair as produced by the tree traversals.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Preorder returns all entries of t in pre-order: node, left subtree, right subtree.
// An empty tree yields an empty slice.
func (t *Tree[K, V]) Preorder() []Entry[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.preorder(make([]Entry[K, V], 0, t.size))
}

func (n *Node[K, V]) preorder(l []Entry[K, V]) []Entry[K, V] {
	l = append(l, Entry[K, V]{n.key, n.value})
	if n.left != nil {
		l = n.left.preorder(l)
	}
	if n.right != nil {
		l = n.right.preorder(l)
	}
	return l
}

// Postorder returns all entries of t in post-order: left subtree, right subtree, node.
// An empty tree yields an empty slice.
func (t *Tree[K, V]) Postorder() []Entry[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.postorder(make([]Entry[K, V], 0, t.size))
}

func (n *Node[K, V]) postorder(l []Entry[K, V]) []Entry[K, V] {
	if n.left != nil {
		l = n.left.postorder(l)
	}
	if n.right != nil {
		l = n.right.postorder(l)
	}
	return append(l, Entry[K, V]{n.key, n.value})
}

// Inorder returns all entries of t in in-order, i.e. in ascending key order.
// An empty tree yields an empty slice.
func (t *Tree[K, V]) Inorder() []Entry[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.inorder(make([]Entry[K, V], 0, t.size))
}

func (n *Node[K, V]) inorder(l []Entry[K, V]) []Entry[K, V] {
	if n.left != nil {
		l = n.left.inorder(l)
	}
	l = append(l, Entry[K, V]{n.key, n.value})
	if n.right != nil {
		l = n.right.inorder(l)
	}
	return l
}

// All returns an iterator over t from smallest to largest key.
// t must not be modified during the iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Root().walk(yield)
	}
}

// walk visits the subtree at n in-order. It returns false as soon as yield does.
func (n *Node[K, V]) walk(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key, n.value) && n.right.walk(yield)
}
