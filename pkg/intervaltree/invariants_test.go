package intervaltree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowasser/intervaltree/pkg/interval"
)

// checkInvariants verifies, by direct inspection of the tree's internal
// node structure, the five quantified invariants from the testable
// properties: search-tree order, the heap property, augmentation
// exactness, thread soundness, and uniqueness.
func checkInvariants[C cmp.Ordered](t *testing.T, tr *Tree[C]) {
	t.Helper()

	var inOrderNodes []*node[C]

	collectInOrder(tr.root, &inOrderNodes)

	require.Len(t, inOrderNodes, tr.Len(), "thread/size mismatch against the tree's own node count")

	seen := make(map[string]bool, len(inOrderNodes))

	for i, n := range inOrderNodes {
		key := n.interval.String()
		assert.False(t, seen[key], "uniqueness violated: duplicate interval %s", key)
		seen[key] = true

		if i > 0 {
			assert.Negative(t, compareIntervals(inOrderNodes[i-1].interval, n.interval),
				"search-tree order violated between %s and %s", inOrderNodes[i-1].interval, n.interval)
		}
	}

	if tr.root != nil {
		checkHeapAndAugmentation(t, tr.root)
	}

	var threaded []interval.Interval[C]
	for iv := range tr.All() {
		threaded = append(threaded, iv)
	}

	require.Len(t, threaded, len(inOrderNodes), "order thread does not match the tree's in-order walk")

	for i, n := range inOrderNodes {
		assert.True(t, n.interval.Equal(threaded[i]), "thread order diverges from search-tree order at position %d", i)
	}
}

func collectInOrder[C cmp.Ordered](n *node[C], out *[]*node[C]) {
	if n == nil {
		return
	}

	collectInOrder(n.left, out)
	*out = append(*out, n)
	collectInOrder(n.right, out)
}

// checkHeapAndAugmentation recursively verifies the min-heap priority
// invariant and recomputes the expected maxUpper bottom-up, asserting it
// matches what the tree actually stored.
func checkHeapAndAugmentation[C cmp.Ordered](t *testing.T, n *node[C]) interval.Interval[C] {
	t.Helper()

	expected := n.interval

	if n.left != nil {
		leftMax := checkHeapAndAugmentation(t, n.left)
		assert.LessOrEqual(t, n.priority, n.left.priority, "heap invariant violated at %s", n.interval)

		if compareUpperBounds(leftMax, expected) > 0 {
			expected = leftMax
		}
	}

	if n.right != nil {
		rightMax := checkHeapAndAugmentation(t, n.right)
		assert.LessOrEqual(t, n.priority, n.right.priority, "heap invariant violated at %s", n.interval)

		if compareUpperBounds(rightMax, expected) > 0 {
			expected = rightMax
		}
	}

	assert.True(t, n.maxUpper.Equal(expected), "maxUpper mismatch at %s: got %s want %s", n.interval, n.maxUpper, expected)

	return n.maxUpper
}
