// Package intervaltree provides a mutable, ordered collection of intervals
// over a generic totally-ordered domain, augmented to answer four spatial
// queries in expected O(log n + k) time: Connected, EnclosedBy, Enclosing,
// and Containing. It is backed by a treap keyed by canonical interval
// order and augmented at each node with the maximum upper bound in its
// subtree, threaded by a doubly-linked list in canonical order for
// iteration.
//
// The tree is not safe for concurrent use. Every operation runs to
// completion synchronously; there is no persistence and no worst-case
// balance guarantee, only the expected-logarithmic depth that randomized
// priorities provide.
package intervaltree

import (
	"cmp"
	"strings"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// Tree is an augmented treap of intervals over the domain C.
type Tree[C cmp.Ordered] struct {
	root     *node[C]
	header   node[C]
	size     int
	modCount uint64
}

// New creates an empty Tree.
func New[C cmp.Ordered]() *Tree[C] {
	t := &Tree[C]{}
	t.header.next = &t.header
	t.header.prev = &t.header

	return t
}

// Len returns the number of intervals currently stored.
func (t *Tree[C]) Len() int {
	return t.size
}

// Clear removes every interval from the tree.
func (t *Tree[C]) Clear() {
	t.root = nil
	t.size = 0
	t.header.next = &t.header
	t.header.prev = &t.header
	t.modCount++
}

// Contains reports whether an interval ≼-equal to iv is stored.
func (t *Tree[C]) Contains(iv interval.Interval[C]) bool {
	for n := t.root; n != nil; {
		switch c := compareIntervals(iv, n.interval); {
		case c == 0:
			return true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Add inserts iv, returning true if it was not already present. Inserting
// an interval already present is a no-op that returns false.
func (t *Tree[C]) Add(iv interval.Interval[C]) bool {
	if t.root == nil {
		m := t.newNode(iv)
		spliceAfter(&t.header, m)
		t.root = m
		t.size++
		t.modCount++

		return true
	}

	newRoot, added := t.insertNode(t.root, iv)
	if !added {
		return false
	}

	t.root = newRoot
	t.size++
	t.modCount++

	return true
}

// newNode allocates a leaf node for iv, drawing a fresh priority.
func (t *Tree[C]) newNode(iv interval.Interval[C]) *node[C] {
	return &node[C]{interval: iv, maxUpper: iv, priority: nextPriority()}
}

// insertNode recursively inserts iv into the subtree rooted at n, splicing
// a new node into the order thread when iv is not already present and
// rotating it up when its priority violates the heap invariant. It
// reports whether the subtree was modified.
func (t *Tree[C]) insertNode(n *node[C], iv interval.Interval[C]) (*node[C], bool) {
	switch c := compareIntervals(iv, n.interval); {
	case c == 0:
		return n, false
	case c < 0:
		if n.left == nil {
			m := t.newNode(iv)
			spliceBefore(n, m)
			n.left = m
		} else {
			child, added := t.insertNode(n.left, iv)
			if !added {
				return n, false
			}

			n.left = child
		}

		t.recalcMaxUpper(n)

		if n.left.priority < n.priority {
			newRoot := rotateRight(n)
			t.recalcMaxUpper(newRoot.right)
			t.recalcMaxUpper(newRoot)

			return newRoot, true
		}

		return n, true
	default:
		if n.right == nil {
			m := t.newNode(iv)
			spliceAfter(n, m)
			n.right = m
		} else {
			child, added := t.insertNode(n.right, iv)
			if !added {
				return n, false
			}

			n.right = child
		}

		t.recalcMaxUpper(n)

		if n.right.priority < n.priority {
			newRoot := rotateLeft(n)
			t.recalcMaxUpper(newRoot.left)
			t.recalcMaxUpper(newRoot)

			return newRoot, true
		}

		return n, true
	}
}

// Remove deletes the interval ≼-equal to iv, returning true if one was
// present. Removing an absent interval is a no-op that returns false.
func (t *Tree[C]) Remove(iv interval.Interval[C]) bool {
	newRoot, removed := t.removeNode(t.root, iv)
	if !removed {
		return false
	}

	t.root = newRoot
	t.size--
	t.modCount++

	return true
}

// removeNode recursively removes iv from the subtree rooted at n,
// unlinking the matching node from the order thread and merging its
// children in its place.
func (t *Tree[C]) removeNode(n *node[C], iv interval.Interval[C]) (*node[C], bool) {
	if n == nil {
		return nil, false
	}

	switch c := compareIntervals(iv, n.interval); {
	case c < 0:
		child, removed := t.removeNode(n.left, iv)
		if !removed {
			return n, false
		}

		n.left = child
		t.recalcMaxUpper(n)

		return n, true
	case c > 0:
		child, removed := t.removeNode(n.right, iv)
		if !removed {
			return n, false
		}

		n.right = child
		t.recalcMaxUpper(n)

		return n, true
	default:
		unlink(n)

		return t.merge(n.left, n.right), true
	}
}

// merge combines two subtrees whose intervals are known to be disjoint in
// canonical order (every interval in l precedes every interval in r),
// preserving the heap invariant: whichever root has the smaller priority
// stays on top, and the other subtree is merged into its adjacent child.
func (t *Tree[C]) merge(l, r *node[C]) *node[C] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.priority <= r.priority:
		l.right = t.merge(l.right, r)
		t.recalcMaxUpper(l)

		return l
	default:
		r.left = t.merge(l, r.left)
		t.recalcMaxUpper(r)

		return r
	}
}

// recalcMaxUpper recomputes n.maxUpper from n.interval and the maxUpper of
// each non-empty child.
func (t *Tree[C]) recalcMaxUpper(n *node[C]) {
	best := n.interval

	if n.left != nil && compareUpperBounds(n.left.maxUpper, best) > 0 {
		best = n.left.maxUpper
	}

	if n.right != nil && compareUpperBounds(n.right.maxUpper, best) > 0 {
		best = n.right.maxUpper
	}

	n.maxUpper = best
}

// String renders the tree's intervals in canonical order, e.g. "{[0, 1], [2, 5)}".
func (t *Tree[C]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for iv := range t.All() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		sb.WriteString(iv.String())
	}

	sb.WriteByte('}')

	return sb.String()
}
