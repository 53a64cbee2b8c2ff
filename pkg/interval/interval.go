// Package interval provides the bound and interval algebra consumed by
// pkg/intervaltree: bound access, enclosure, connectedness, and singleton
// construction over a generic totally-ordered domain.
//
// An Interval is a closed, open, or half-open range [lo, hi] over a
// cmp.Ordered domain C. Each endpoint is either present (with a CLOSED or
// OPEN kind) or absent, meaning unbounded in that direction. Constructors
// reject empty or ill-formed ranges by panicking, the same way
// pkg/burndown's NewTreapTimeline panics on out-of-range arguments: a
// caller building a malformed interval is a programmer error, not a
// recoverable condition.
package interval

import (
	"cmp"
	"fmt"
)

// Kind distinguishes whether a present bound includes its endpoint.
type Kind int

const (
	// KindOpen bounds exclude their endpoint.
	KindOpen Kind = iota
	// KindClosed bounds include their endpoint.
	KindClosed
)

// String renders the kind for debugging.
func (k Kind) String() string {
	if k == KindClosed {
		return "closed"
	}

	return "open"
}

// Bound is either absent (unbounded in its direction) or present with an
// endpoint and a kind. The zero value is the absent bound.
type Bound[C cmp.Ordered] struct {
	endpoint C
	kind     Kind
	present  bool
}

// Interval is a non-empty, well-formed range over C, defined by a lower
// and an upper Bound. Values are immutable once constructed.
type Interval[C cmp.Ordered] struct {
	lower, upper Bound[C]
}

func presentBound[C cmp.Ordered](v C, kind Kind) Bound[C] {
	return Bound[C]{endpoint: v, kind: kind, present: true}
}

// newInterval validates and builds an Interval from two bounds, panicking
// if the result would be empty or ill-formed per the algebra's contract:
// when both endpoints are present, the lower endpoint must not exceed the
// upper one, and if they are equal both bounds must be closed.
func newInterval[C cmp.Ordered](lower, upper Bound[C]) Interval[C] {
	if lower.present && upper.present {
		switch c := cmp.Compare(lower.endpoint, upper.endpoint); {
		case c > 0:
			panic(fmt.Sprintf("interval: lower bound %v exceeds upper bound %v", lower.endpoint, upper.endpoint))
		case c == 0 && (lower.kind != KindClosed || upper.kind != KindClosed):
			panic(fmt.Sprintf("interval: empty range at %v (bounds must both be closed when equal)", lower.endpoint))
		}
	}

	return Interval[C]{lower: lower, upper: upper}
}

// Closed returns the interval [lo, hi].
func Closed[C cmp.Ordered](lo, hi C) Interval[C] {
	return newInterval(presentBound(lo, KindClosed), presentBound(hi, KindClosed))
}

// Open returns the interval (lo, hi).
func Open[C cmp.Ordered](lo, hi C) Interval[C] {
	return newInterval(presentBound(lo, KindOpen), presentBound(hi, KindOpen))
}

// ClosedOpen returns the interval [lo, hi).
func ClosedOpen[C cmp.Ordered](lo, hi C) Interval[C] {
	return newInterval(presentBound(lo, KindClosed), presentBound(hi, KindOpen))
}

// OpenClosed returns the interval (lo, hi].
func OpenClosed[C cmp.Ordered](lo, hi C) Interval[C] {
	return newInterval(presentBound(lo, KindOpen), presentBound(hi, KindClosed))
}

// AtLeast returns the unbounded-above interval [lo, +inf).
func AtLeast[C cmp.Ordered](lo C) Interval[C] {
	return newInterval(presentBound(lo, KindClosed), Bound[C]{})
}

// GreaterThan returns the unbounded-above interval (lo, +inf).
func GreaterThan[C cmp.Ordered](lo C) Interval[C] {
	return newInterval(presentBound(lo, KindOpen), Bound[C]{})
}

// AtMost returns the unbounded-below interval (-inf, hi].
func AtMost[C cmp.Ordered](hi C) Interval[C] {
	return newInterval(Bound[C]{}, presentBound(hi, KindClosed))
}

// LessThan returns the unbounded-below interval (-inf, hi).
func LessThan[C cmp.Ordered](hi C) Interval[C] {
	return newInterval(Bound[C]{}, presentBound(hi, KindOpen))
}

// All returns the interval spanning the entire domain, (-inf, +inf).
func All[C cmp.Ordered]() Interval[C] {
	return newInterval(Bound[C]{}, Bound[C]{})
}

// Singleton returns the degenerate interval [v, v] containing only v.
func Singleton[C cmp.Ordered](v C) Interval[C] {
	return Closed(v, v)
}

// HasLowerBound reports whether the interval is bounded below.
func (iv Interval[C]) HasLowerBound() bool {
	return iv.lower.present
}

// HasUpperBound reports whether the interval is bounded above.
func (iv Interval[C]) HasUpperBound() bool {
	return iv.upper.present
}

// LowerEndpoint returns the lower endpoint. It panics if the interval has
// no lower bound; callers must check HasLowerBound first.
func (iv Interval[C]) LowerEndpoint() C {
	if !iv.lower.present {
		panic("interval: LowerEndpoint called on an interval with no lower bound")
	}

	return iv.lower.endpoint
}

// UpperEndpoint returns the upper endpoint. It panics if the interval has
// no upper bound; callers must check HasUpperBound first.
func (iv Interval[C]) UpperEndpoint() C {
	if !iv.upper.present {
		panic("interval: UpperEndpoint called on an interval with no upper bound")
	}

	return iv.upper.endpoint
}

// LowerKind returns the kind of the lower bound. It panics if the
// interval has no lower bound.
func (iv Interval[C]) LowerKind() Kind {
	if !iv.lower.present {
		panic("interval: LowerKind called on an interval with no lower bound")
	}

	return iv.lower.kind
}

// UpperKind returns the kind of the upper bound. It panics if the
// interval has no upper bound.
func (iv Interval[C]) UpperKind() Kind {
	if !iv.upper.present {
		panic("interval: UpperKind called on an interval with no upper bound")
	}

	return iv.upper.kind
}

// Contains reports whether v lies within the interval.
func (iv Interval[C]) Contains(v C) bool {
	if iv.lower.present {
		c := cmp.Compare(v, iv.lower.endpoint)
		if c < 0 || (c == 0 && iv.lower.kind == KindOpen) {
			return false
		}
	}

	if iv.upper.present {
		c := cmp.Compare(v, iv.upper.endpoint)
		if c > 0 || (c == 0 && iv.upper.kind == KindOpen) {
			return false
		}
	}

	return true
}

// Encloses reports whether every point of other is also in iv.
func (iv Interval[C]) Encloses(other Interval[C]) bool {
	if other.lower.present {
		if !iv.lower.present {
			// iv's lower bound is -inf, which covers any present lower bound.
		} else {
			c := cmp.Compare(other.lower.endpoint, iv.lower.endpoint)
			if c < 0 || (c == 0 && other.lower.kind == KindClosed && iv.lower.kind == KindOpen) {
				return false
			}
		}
	} else if iv.lower.present {
		return false
	}

	if other.upper.present {
		if !iv.upper.present {
			// iv's upper bound is +inf, which covers any present upper bound.
		} else {
			c := cmp.Compare(other.upper.endpoint, iv.upper.endpoint)
			if c > 0 || (c == 0 && other.upper.kind == KindClosed && iv.upper.kind == KindOpen) {
				return false
			}
		}
	} else if iv.upper.present {
		return false
	}

	return true
}

// IsConnected reports whether iv and other share at least one point — they
// overlap, or they abut with both sides closed at the shared boundary. Two
// open bounds touching at the same point (e.g.
// (0,1) and (1,2)) are not connected; a closed and an open bound touching
// (e.g. [0,1] and (1,2]) are not connected either, since neither side owns
// the shared point; only closed/closed touches connect.
func (iv Interval[C]) IsConnected(other Interval[C]) bool {
	return crossOrder(iv.lower, other.upper) <= 0 && crossOrder(other.lower, iv.upper) <= 0
}

// crossOrder compares a lower bound to an upper bound, returning <=0 iff
// at least one point lies between them: either bound is absent, the lower
// endpoint precedes the upper one, or the endpoints coincide and both
// bounds are closed. It is
// implemented purely in terms of bound presence, endpoint, and kind, never
// by inspecting any absolute sentinel representation of "unbounded".
func crossOrder[C cmp.Ordered](lower, upper Bound[C]) int {
	if !lower.present || !upper.present {
		return -1
	}

	c := cmp.Compare(lower.endpoint, upper.endpoint)
	if c != 0 {
		return c
	}

	if lower.kind == KindClosed && upper.kind == KindClosed {
		return 0
	}

	return 1
}

// Equal reports whether iv and other denote the same set of points.
func (iv Interval[C]) Equal(other Interval[C]) bool {
	return iv.lower == other.lower && iv.upper == other.upper
}

// String renders the interval using standard mathematical bracket notation,
// e.g. "[0, 5)", with "-inf"/"+inf" for absent bounds.
func (iv Interval[C]) String() string {
	var lo, hi string

	if iv.lower.present {
		lo = fmt.Sprint(iv.lower.endpoint)
	} else {
		lo = "-inf"
	}

	if iv.upper.present {
		hi = fmt.Sprint(iv.upper.endpoint)
	} else {
		hi = "+inf"
	}

	openBracket := "["
	if iv.lower.present && iv.lower.kind == KindOpen {
		openBracket = "("
	}

	closeBracket := "]"
	if iv.upper.present && iv.upper.kind == KindOpen {
		closeBracket = ")"
	}

	return openBracket + lo + ", " + hi + closeBracket
}
