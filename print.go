package bst

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteTo writes every element, one per line, in ascending order.
func (t *Tree[T]) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var err error
	t.ForEach(func(x T) bool {
		var n int
		n, err = fmt.Fprintln(w, x)
		written += int64(n)
		return err == nil
	})
	return written, err
}

func (t *Tree[T]) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// Print writes the tree to standard output.
func (t *Tree[T]) Print() {
	w := bufio.NewWriter(os.Stdout)
	_, _ = t.WriteTo(w)
	_ = w.Flush()
}

// FprintIf writes the elements of t satisfying pred, one per line, in
// ascending order.
func FprintIf[T any](w io.Writer, t *Tree[T], pred Predicate[T]) error {
	for it := t.Begin(); it != t.End(); it = it.Next() {
		x := it.Value()
		if !pred(x) {
			continue
		}
		if _, err := fmt.Fprintln(w, x); err != nil {
			return err
		}
	}
	return nil
}

// PrintIf is FprintIf to standard output.
func PrintIf[T any](t *Tree[T], pred Predicate[T]) {
	_ = FprintIf[T](os.Stdout, t, pred)
}
