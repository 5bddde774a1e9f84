// Command bstdemo exercises the bst package with an integer tree and a tree
// of 2-D points.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/e11jah/bst"
)

type point struct {
	x, y int
}

func (p point) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

// points are ordered by x only, two points are equal when both coordinates match
func newPointTree() *bst.Tree[point] {
	return bst.New(
		func(a, b point) bool { return a.x < b.x },
		func(a, b point) bool { return a.x == b.x && a.y == b.y },
	)
}

func isOdd(x int) bool {
	return x%2 == 1
}

func onAxis(p point) bool {
	return p.x == 0 || p.y == 0
}

func insertAll[T any](tree *bst.Tree[T], values ...T) {
	for _, v := range values {
		if err := tree.Insert(v); err != nil {
			log.Println(err)
		}
	}
}

func fundamentals[T any](title string, tree, assigned *bst.Tree[T]) {
	fmt.Printf("*** %s ***\n", title)
	fmt.Printf("tree:\n%v\n", tree)

	copied := tree.Clone()
	fmt.Printf("copy:\n%v\n", copied)

	assigned.Assign(tree)
	fmt.Printf("assigned:\n%v\n", assigned)
}

func usage[T any](title string, tree *bst.Tree[T], probe, subRoot T, pred bst.Predicate[T]) {
	fmt.Printf("*** %s ***\n", title)
	fmt.Println("size:", tree.Size())
	fmt.Printf("contains %v: %t\n", probe, tree.Contains(probe))

	fmt.Println("iterator:")
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		fmt.Println(it.Value())
	}

	fmt.Println("\nprint:")
	tree.Print()

	fmt.Printf("\nsubtree(%v):\n", subRoot)
	sub, err := tree.SubtreeOf(subRoot)
	if err != nil {
		log.Println(err)
	}
	if _, err := sub.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nfiltered:")
	if err := bst.FprintIf(os.Stdout, tree, pred); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bstdemo: ")

	ints := bst.NewOrdered[int]()
	insertAll(ints, 10, 3, 2, 5, 17)
	fundamentals("int tree", ints, bst.NewOrdered[int]())

	a := bst.NewOrdered[int]()
	insertAll(a, 10, 15, 11, 5, 17)
	fmt.Println("duplicate insert:")
	insertAll(a, 17)
	usage("int tree usage", a, 11, 15, isOdd)

	points := newPointTree()
	insertAll(points, point{1, 2}, point{0, 3}, point{7, 0}, point{5, 4}, point{3, 8})
	fundamentals("point tree", points, newPointTree())

	b := newPointTree()
	insertAll(b, point{3, 11}, point{0, 3}, point{8, 1}, point{1, 4}, point{7, 8})
	fmt.Println("duplicate insert:")
	insertAll(b, point{1, 4})
	usage("point tree usage", b, point{3, 2}, point{0, 3}, onAxis)
}
