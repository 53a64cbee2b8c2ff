package intervaltree

import (
	"cmp"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// node is a single entry in the treap. interval and priority never change
// after creation; left, right, maxUpper change under rotation and merge;
// prev, next are the node's position in the order thread and are touched
// only when the node is created or removed, never by a rotation.
type node[C cmp.Ordered] struct {
	interval    interval.Interval[C]
	maxUpper    interval.Interval[C]
	left, right *node[C]
	prev, next  *node[C]
	priority    uint64
}

// link makes a the predecessor of b in the order thread.
func link[C cmp.Ordered](a, b *node[C]) {
	a.next = b
	b.prev = a
}

// spliceBefore inserts newNode into the thread immediately before n.
func spliceBefore[C cmp.Ordered](n, newNode *node[C]) {
	link(n.prev, newNode)
	link(newNode, n)
}

// spliceAfter inserts newNode into the thread immediately after n.
func spliceAfter[C cmp.Ordered](n, newNode *node[C]) {
	link(newNode, n.next)
	link(n, newNode)
}

// unlink removes n from the thread by joining its neighbors. n's own prev
// and next fields are left pointing at their old neighbors, which is what
// lets an Iterator keep walking from a node it has just removed.
func unlink[C cmp.Ordered](n *node[C]) {
	link(n.prev, n.next)
}

// rotateRight promotes n.left above n, returning the new subtree root.
// It does not touch the order thread and does not recompute maxUpper;
// callers must recalcMaxUpper on the demoted node and then the new root.
func rotateRight[C cmp.Ordered](n *node[C]) *node[C] {
	l := n.left
	n.left = l.right
	l.right = n

	return l
}

// rotateLeft promotes n.right above n, returning the new subtree root.
// See rotateRight for the maxUpper and thread caveats.
func rotateLeft[C cmp.Ordered](n *node[C]) *node[C] {
	r := n.right
	n.right = r.left
	r.left = n

	return r
}

// compareLowerBounds orders a and b by the canonical lower-bound order:
// absent sorts before any present bound; among present bounds, endpoint
// order decides, and a CLOSED bound ties before an OPEN one at the same
// endpoint. It is implemented purely via a and b's bound-access methods.
func compareLowerBounds[C cmp.Ordered](a, b interval.Interval[C]) int {
	switch {
	case !a.HasLowerBound() && !b.HasLowerBound():
		return 0
	case !a.HasLowerBound():
		return -1
	case !b.HasLowerBound():
		return 1
	}

	if c := cmp.Compare(a.LowerEndpoint(), b.LowerEndpoint()); c != 0 {
		return c
	}

	return compareKindsClosedFirst(a.LowerKind(), b.LowerKind())
}

// compareUpperBounds orders a and b by the canonical upper-bound order:
// any present bound sorts before absent; among present bounds, endpoint
// order decides, and an OPEN bound ties before a CLOSED one at the same
// endpoint.
func compareUpperBounds[C cmp.Ordered](a, b interval.Interval[C]) int {
	switch {
	case !a.HasUpperBound() && !b.HasUpperBound():
		return 0
	case !a.HasUpperBound():
		return 1
	case !b.HasUpperBound():
		return -1
	}

	if c := cmp.Compare(a.UpperEndpoint(), b.UpperEndpoint()); c != 0 {
		return c
	}

	return compareKindsOpenFirst(a.UpperKind(), b.UpperKind())
}

// compareIntervals is the canonical interval order ≼ used as the treap's
// search key: lower bounds first, upper bounds breaking ties.
func compareIntervals[C cmp.Ordered](a, b interval.Interval[C]) int {
	if c := compareLowerBounds(a, b); c != 0 {
		return c
	}

	return compareUpperBounds(a, b)
}

// compareLowerToUpper is the cross order: it compares lowerSrc's lower
// bound against upperSrc's upper bound, returning <=0 iff the lower bound
// does not strictly lie past the upper bound. An absent bound on either
// side always closes up (<=0), since absent means unbounded.
func compareLowerToUpper[C cmp.Ordered](lowerSrc, upperSrc interval.Interval[C]) int {
	if !lowerSrc.HasLowerBound() || !upperSrc.HasUpperBound() {
		return -1
	}

	if c := cmp.Compare(lowerSrc.LowerEndpoint(), upperSrc.UpperEndpoint()); c != 0 {
		return c
	}

	if lowerSrc.LowerKind() == interval.KindClosed || upperSrc.UpperKind() == interval.KindOpen {
		return 0
	}

	return 1
}

func compareKindsClosedFirst(a, b interval.Kind) int {
	switch {
	case a == b:
		return 0
	case a == interval.KindClosed:
		return -1
	default:
		return 1
	}
}

func compareKindsOpenFirst(a, b interval.Kind) int {
	switch {
	case a == b:
		return 0
	case a == interval.KindOpen:
		return -1
	default:
		return 1
	}
}
