package bst

import "errors"

var (
	// ErrKeyNotFound signals a lookup of a key which is not stored in the tree.
	// Find and Remove report absence without an error; only Value returns it.
	ErrKeyNotFound = errors.New("bst: key not found")
	// ErrInvalidTree signals a violation of the search tree invariants.
	ErrInvalidTree = errors.New("bst: invalid tree")
)
