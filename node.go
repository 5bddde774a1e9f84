package bst

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// find the minimum node under n
func (n *node[T]) leftmost() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) isRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

// successor returns the next node in ascending order, nil after the last one.
// It assumes the walk started at the leftmost node of the tree.
func (n *node[T]) successor() *node[T] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.isRightChild() {
		n = n.parent
	}
	// one more step, nil once we climbed past the root
	return n.parent
}

// attach links child under n on the side chosen by less.
func (n *node[T]) attach(child *node[T], less LessFunc[T]) {
	if less(n.value, child.value) {
		n.right = child
	} else {
		n.left = child
	}
	child.parent = n
}

// search descends from n and returns the node equal to x, or nil together
// with the last node visited on the way down.
func (n *node[T]) search(x T, less LessFunc[T], equal EqualFunc[T]) (found, last *node[T]) {
	for curr := n; curr != nil; {
		if equal(curr.value, x) {
			return curr, last
		}
		last = curr
		if less(curr.value, x) {
			curr = curr.right
		} else {
			curr = curr.left
		}
	}
	return nil, last
}
