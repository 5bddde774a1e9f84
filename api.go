package bst

import "golang.org/x/exp/constraints"

// LessFunc reports whether a is strictly less than b.
type LessFunc[T any] func(a, b T) bool

// EqualFunc reports whether a and b are the same element.
// It must agree with the LessFunc of the same tree: if equal(a, b) holds,
// neither less(a, b) nor less(b, a) may hold.
type EqualFunc[T any] func(a, b T) bool

// Predicate selects elements for PrintIf and FprintIf.
type Predicate[T any] func(x T) bool

// New returns an empty tree ordered by less and deduplicated by equal.
func New[T any](less LessFunc[T], equal EqualFunc[T]) *Tree[T] {
	if less == nil || equal == nil {
		panic("bst: nil less or equal function")
	}
	return &Tree[T]{less: less, equal: equal}
}

// NewOrdered returns an empty tree using the < and == operators.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(Less[T](), Equal[T]())
}

// Less returns a LessFunc that uses the < operator.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Equal returns an EqualFunc that uses the == operator.
func Equal[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}
