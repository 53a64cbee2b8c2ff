package intervaltree

import (
	"cmp"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// Iterator is a cursor over a Tree's intervals in canonical order, in the
// style of bufio.Scanner or database/sql.Rows: call Next until it returns
// false, read Interval in between, and check Err afterward. Unlike those
// cursors, Iterator also supports Remove, which deletes the most recently
// returned interval without invalidating the cursor.
//
// An Iterator is invalidated by any mutation of its Tree other than its
// own Remove: the next Next call returns false and Err reports
// ErrConcurrentModification.
type Iterator[C cmp.Ordered] struct {
	tree       *Tree[C]
	cur        *node[C]
	snapshot   uint64
	err        error
	positioned bool
	canRemove  bool
}

// Iterator returns a cursor positioned before the first interval in
// canonical order.
func (t *Tree[C]) Iterator() *Iterator[C] {
	return &Iterator[C]{tree: t, cur: &t.header, snapshot: t.modCount}
}

// Next advances the cursor to the next interval, returning false when
// there are no more or when the tree was modified out from under the
// iterator. Callers must check Err after a false return to tell the two
// cases apart.
func (it *Iterator[C]) Next() bool {
	if it.err != nil {
		return false
	}

	if it.tree.modCount != it.snapshot {
		it.err = ErrConcurrentModification

		return false
	}

	next := it.cur.next
	if next == &it.tree.header {
		return false
	}

	it.cur = next
	it.positioned = true
	it.canRemove = true

	return true
}

// Interval returns the interval at the cursor's current position. It
// panics if called without a preceding successful Next.
func (it *Iterator[C]) Interval() interval.Interval[C] {
	if !it.positioned {
		panic("intervaltree: Interval called without a preceding successful Next")
	}

	return it.cur.interval
}

// Remove deletes the interval most recently returned by Next from the
// underlying Tree. It fails with ErrIteratorRemoveWithoutNext if Next has
// not been called since the iterator was created or since the last
// Remove. If the tree was modified other than through this iterator, it
// removes nothing and returns ErrConcurrentModification, which Err then
// reports as well. Unlike an external mutation, a successful Remove does
// not invalidate the iterator: the next Next call resumes from the removed
// element's former successor.
func (it *Iterator[C]) Remove() error {
	if !it.canRemove {
		return ErrIteratorRemoveWithoutNext
	}

	if it.err == nil && it.tree.modCount != it.snapshot {
		it.err = ErrConcurrentModification
	}

	if it.err != nil {
		return it.err
	}

	it.tree.Remove(it.cur.interval)
	it.canRemove = false
	it.snapshot = it.tree.modCount

	return nil
}

// Err returns the error, if any, that caused the most recent Next to
// return false. It returns nil when Next returned false because the
// iteration simply ran out of elements.
func (it *Iterator[C]) Err() error {
	return it.err
}
