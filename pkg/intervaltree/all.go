package intervaltree

import (
	"iter"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// All returns the stored intervals in canonical interval order, walking
// the order thread rather than the tree — an O(1)-per-step traversal
// independent of the treap's current shape. Stopping the range early (a
// break in the loop) leaves the tree untouched; for removal during
// traversal use Iterator instead.
func (t *Tree[C]) All() iter.Seq[interval.Interval[C]] {
	return func(yield func(interval.Interval[C]) bool) {
		for n := t.header.next; n != &t.header; n = n.next {
			if !yield(n.interval) {
				return
			}
		}
	}
}
