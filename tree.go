package bst

import "fmt"

func (t *Tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Insert adds x to the tree. If an element equal to x is already present
// the tree is left unchanged and an error wrapping ErrDuplicateValue is
// returned.
func (t *Tree[T]) Insert(x T) error {
	found, parent := t.root.search(x, t.less, t.equal)
	if found != nil {
		return fmt.Errorf("%w: %v", ErrDuplicateValue, x)
	}

	n := newNode(x)
	if parent == nil {
		t.root = n
	} else {
		parent.attach(n, t.less)
	}
	t.size++
	return nil
}

// Contains reports whether an element equal to x is in the tree.
func (t *Tree[T]) Contains(x T) bool {
	found, _ := t.root.search(x, t.less, t.equal)
	return found != nil
}

// Subtree returns a copy of the subtree rooted at the element equal to x.
// If there is no such element the returned tree is empty; use SubtreeOf to
// tell the two cases apart.
func (t *Tree[T]) Subtree(x T) *Tree[T] {
	sub, _ := t.SubtreeOf(x)
	return sub
}

// SubtreeOf is like Subtree but returns ErrNotFound, along with an empty
// tree, when x is not in the tree.
func (t *Tree[T]) SubtreeOf(x T) (*Tree[T], error) {
	sub := New(t.less, t.equal)
	found, _ := t.root.search(x, t.less, t.equal)
	if found == nil {
		return sub, fmt.Errorf("%w: %v", ErrNotFound, x)
	}
	sub.copyFrom(found)
	return sub, nil
}

// Clone returns a deep copy of t with the same shape and comparators.
func (t *Tree[T]) Clone() *Tree[T] {
	c := New(t.less, t.equal)
	c.copyFrom(t.root)
	return c
}

// Assign replaces the content and comparators of t with a deep copy of
// other. The copy is built before t is touched, so t is left as it was if
// building the copy panics. Assigning a tree to itself does nothing.
func (t *Tree[T]) Assign(other *Tree[T]) {
	if t == other {
		return
	}
	c := other.Clone()
	t.root, c.root = c.root, t.root
	t.size, c.size = c.size, t.size
	t.less, t.equal = c.less, c.equal
}

// Clear removes every element from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// copyFrom inserts every element under src in pre-order, parents before
// children, so the copy reproduces the shape of src.
func (t *Tree[T]) copyFrom(src *node[T]) {
	if src == nil {
		return
	}
	stack := []*node[T]{src}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// source elements are distinct, insert can not fail
		_ = t.Insert(curr.value)

		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

// Begin returns a cursor at the smallest element, or End if t is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{n: t.root.leftmost()}
}

// End returns the cursor past the largest element.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Min returns the smallest element, false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	v, err := t.Begin().Get()
	return v, err == nil
}

// ForEach calls fn on every element in ascending order until fn returns false.
func (t *Tree[T]) ForEach(fn func(x T) bool) {
	for it := t.Begin(); it != t.End(); it = it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Values returns the elements in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Size())
	t.ForEach(func(x T) bool {
		values = append(values, x)
		return true
	})
	return values
}

// Next returns the cursor at the following element. Next on End returns End.
// The cursor must come from Begin, possibly advanced with Next.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.successor()}
}

// Valid reports whether the cursor points at an element.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// Get returns the element under the cursor, ErrEndOfTree at End.
func (it Iterator[T]) Get() (T, error) {
	if it.n == nil {
		var zero T
		return zero, ErrEndOfTree
	}
	return it.n.value, nil
}

// Value returns the element under the cursor.
// Calling Value on End is a programming error and panics with ErrEndOfTree.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic(ErrEndOfTree)
	}
	return it.n.value
}
