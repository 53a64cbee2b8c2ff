package intervaltree

import (
	"cmp"
	"iter"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// Connected returns every stored interval that shares at least one point
// with q, or abuts it without a gap on a shared closed boundary, per
// interval.Interval.IsConnected. Results are produced in an unspecified
// order.
func (t *Tree[C]) Connected(q interval.Interval[C]) iter.Seq[interval.Interval[C]] {
	return func(yield func(interval.Interval[C]) bool) {
		walkConnected(t.root, q, yield)
	}
}

// walkConnected reports whether the walk should continue (false once yield
// has asked to stop).
func walkConnected[C cmp.Ordered](n *node[C], q interval.Interval[C], yield func(interval.Interval[C]) bool) bool {
	if n == nil {
		return true
	}

	// No interval in this subtree can reach back to q's lower bound, so
	// none can connect to q either.
	if compareLowerToUpper(q, n.maxUpper) > 0 {
		return true
	}

	if !walkConnected(n.left, q, yield) {
		return false
	}

	if n.interval.IsConnected(q) {
		if !yield(n.interval) {
			return false
		}
	}

	// n.interval starting past q's upper bound means every interval to
	// its right also starts past it and cannot connect.
	if compareLowerToUpper(n.interval, q) <= 0 {
		if !walkConnected(n.right, q, yield) {
			return false
		}
	}

	return true
}

// EnclosedBy returns every stored interval fully contained in q.
func (t *Tree[C]) EnclosedBy(q interval.Interval[C]) iter.Seq[interval.Interval[C]] {
	return func(yield func(interval.Interval[C]) bool) {
		walkEnclosedBy(t.root, q, yield)
	}
}

func walkEnclosedBy[C cmp.Ordered](n *node[C], q interval.Interval[C], yield func(interval.Interval[C]) bool) bool {
	if n == nil {
		return true
	}

	if compareLowerToUpper(q, n.maxUpper) > 0 {
		return true
	}

	// If q's lower bound exceeds n.interval's, every interval to the left
	// has an even smaller lower bound and cannot be enclosed.
	if compareLowerBounds(q, n.interval) <= 0 {
		if !walkEnclosedBy(n.left, q, yield) {
			return false
		}
	}

	if q.Encloses(n.interval) {
		if !yield(n.interval) {
			return false
		}
	}

	if !walkEnclosedBy(n.right, q, yield) {
		return false
	}

	return true
}

// Enclosing returns every stored interval that fully contains q.
func (t *Tree[C]) Enclosing(q interval.Interval[C]) iter.Seq[interval.Interval[C]] {
	return func(yield func(interval.Interval[C]) bool) {
		walkEnclosing(t.root, q, yield)
	}
}

func walkEnclosing[C cmp.Ordered](n *node[C], q interval.Interval[C], yield func(interval.Interval[C]) bool) bool {
	if n == nil {
		return true
	}

	// If no interval in this subtree reaches as far as q's upper bound,
	// none can enclose q.
	if compareUpperBounds(q, n.maxUpper) > 0 {
		return true
	}

	if !walkEnclosing(n.left, q, yield) {
		return false
	}

	if n.interval.Encloses(q) {
		if !yield(n.interval) {
			return false
		}
	}

	// If n.interval starts after q does, every interval to its right
	// starts even later and cannot enclose q.
	if compareLowerBounds(n.interval, q) <= 0 {
		if !walkEnclosing(n.right, q, yield) {
			return false
		}
	}

	return true
}

// Containing returns every stored interval that contains the point v,
// equivalent to Enclosing(interval.Singleton(v)).
func (t *Tree[C]) Containing(v C) iter.Seq[interval.Interval[C]] {
	return t.Enclosing(interval.Singleton(v))
}
