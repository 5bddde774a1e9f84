// Package bst implements a generic, unbalanced binary search tree.
//
// Elements are ordered by a caller supplied strict less-than relation and
// deduplicated by a caller supplied equality relation. The tree never
// rebalances, so its shape follows the insertion order. Nodes keep a
// back-reference to their parent, which lets an Iterator walk the tree in
// ascending order without recursion or an auxiliary stack.
//
// A Tree is not safe for concurrent use. Inserting into a tree invalidates
// every Iterator obtained from it before the insert.
package bst

import "errors"

var (
	ErrDuplicateValue = errors.New("value already present in the tree")
	ErrNotFound       = errors.New("value not found in the tree")
	ErrEndOfTree      = errors.New("iterator is at the end of the tree")
)

type (
	// Tree is a binary search tree of distinct elements.
	// The zero value is not usable, create trees with New or NewOrdered.
	Tree[T any] struct {
		root  *node[T]
		size  int
		less  LessFunc[T]
		equal EqualFunc[T]
	}

	// left and right are reachable only through their parent,
	// parent is used for traversal only and is nil at the root
	node[T any] struct {
		value  T
		parent *node[T]
		left   *node[T]
		right  *node[T]
	}

	// Iterator is a read-only cursor over the ascending sequence of a Tree.
	// The zero value is the end cursor. Two cursors are equal, with == or
	// Equal, when they point at the same node.
	Iterator[T any] struct {
		n *node[T]
	}
)
