package bst

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeIterator(t *testing.T) {
	tree := newIntTree(10, 3, 2, 5, 17)

	it := tree.Begin()
	assert.True(t, it.Valid())
	assert.Equal(t, 2, it.Value())

	it = it.Next()
	assert.Equal(t, 3, it.Value())

	// left child without right subtree climbs one step
	it = it.Next()
	assert.Equal(t, 5, it.Value())

	// right child climbs while right child, then one more step
	it = it.Next()
	assert.Equal(t, 10, it.Value())

	it = it.Next()
	v, err := it.Get()
	assert.NoError(t, err)
	assert.Equal(t, 17, v)

	it = it.Next()
	assert.False(t, it.Valid())
	assert.True(t, it.Equal(tree.End()))
	assert.Equal(t, tree.End(), it)

	bad, err := it.Get()
	assert.Equal(t, 0, bad)
	assert.Equal(t, ErrEndOfTree, err)
	assert.PanicsWithValue(t, ErrEndOfTree, func() { it.Value() })

	assert.Equal(t, tree.End(), it.Next())
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := NewOrdered[string]()
	assert.Equal(t, tree.End(), tree.Begin())
	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.False(t, tree.Begin().Valid())

	_, err := tree.Begin().Get()
	assert.ErrorIs(t, err, ErrEndOfTree)
}

func TestIteratorEquality(t *testing.T) {
	tree := newIntTree(2, 1, 3)
	a, b := tree.Begin(), tree.Begin()
	assert.True(t, a.Equal(b))
	assert.True(t, a == b)

	b = b.Next()
	assert.False(t, a.Equal(b))
	assert.True(t, a.Next().Equal(b))

	// cursors of distinct trees never compare equal, even on equal values
	assert.False(t, tree.Begin().Equal(tree.Clone().Begin()))
}

func TestIteratorShapes(t *testing.T) {
	dataSet := [][]int{
		{1},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 2, 5, 4},
		{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15},
		{1, 10, 2, 9, 3, 8, 4, 7, 5, 6},
	}

	for _, d := range dataSet {
		tree := newIntTree(d...)

		got := make([]int, 0, len(d))
		for it := tree.Begin(); it != tree.End(); it = it.Next() {
			got = append(got, it.Value())
		}
		assert.Len(t, got, len(d), d)
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i], d)
		}
	}
}

func TestIteratorMultiPass(t *testing.T) {
	tree := newIntTree(10, 3, 2, 5, 17)

	first := tree.Values()
	second := tree.Values()
	assert.Equal(t, first, second)

	// two cursors advance independently
	slow, fast := tree.Begin(), tree.Begin().Next().Next()
	assert.Equal(t, 2, slow.Value())
	assert.Equal(t, 5, fast.Value())
	slow = slow.Next()
	assert.Equal(t, 3, slow.Value())
	assert.Equal(t, 5, fast.Value())
}

func TestIteratorRandomSorted(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := NewOrdered[float64]()
	for i := 0; i < 2000; i++ {
		tree.Insert(rnd.Float64())
	}

	count := 0
	prev, err := tree.Begin().Get()
	require.NoError(t, err)
	for it := tree.Begin().Next(); it != tree.End(); it = it.Next() {
		curr := it.Value()
		assert.True(t, tree.less(prev, curr))
		assert.False(t, tree.equal(prev, curr))
		prev = curr
		count++
	}
	assert.Equal(t, tree.Size(), count+1)
}

func TestForEachStops(t *testing.T) {
	tree := newIntTree(10, 3, 2, 5, 17)

	visited := make([]int, 0)
	tree.ForEach(func(x int) bool {
		visited = append(visited, x)
		return x < 5
	})
	assert.Equal(t, []int{2, 3, 5}, visited)
}
