package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants.
const (
	testLow0   = 0
	testHigh1  = 1
	testHigh5  = 5
	testPoint3 = 3
	testPoint5 = 5
	testPoint6 = 6
)

func TestClosed_Contains(t *testing.T) {
	t.Parallel()

	iv := Closed(testLow0, testHigh5)
	assert.True(t, iv.Contains(testLow0))
	assert.True(t, iv.Contains(testHigh5))
	assert.True(t, iv.Contains(testPoint3))
	assert.False(t, iv.Contains(testPoint6))
}

func TestOpen_Contains(t *testing.T) {
	t.Parallel()

	iv := Open(testLow0, testHigh5)
	assert.False(t, iv.Contains(testLow0))
	assert.False(t, iv.Contains(testHigh5))
	assert.True(t, iv.Contains(testPoint3))
}

func TestClosedOpen_Contains(t *testing.T) {
	t.Parallel()

	iv := ClosedOpen(testLow0, testHigh5)
	assert.True(t, iv.Contains(testLow0))
	assert.False(t, iv.Contains(testHigh5))
}

func TestOpenClosed_Contains(t *testing.T) {
	t.Parallel()

	iv := OpenClosed(testLow0, testHigh5)
	assert.False(t, iv.Contains(testLow0))
	assert.True(t, iv.Contains(testHigh5))
}

func TestUnboundedConstructors(t *testing.T) {
	t.Parallel()

	assert.True(t, AtLeast(testLow0).Contains(testLow0))
	assert.False(t, GreaterThan(testLow0).Contains(testLow0))
	assert.True(t, AtMost(testHigh5).Contains(testHigh5))
	assert.False(t, LessThan(testHigh5).Contains(testHigh5))
	assert.True(t, All[int]().Contains(testPoint3))

	assert.False(t, AtLeast(testLow0).HasUpperBound())
	assert.False(t, AtMost(testHigh5).HasLowerBound())
}

func TestSingleton(t *testing.T) {
	t.Parallel()

	iv := Singleton(testPoint5)
	assert.True(t, iv.Contains(testPoint5))
	assert.False(t, iv.Contains(testPoint6))
	assert.Equal(t, testPoint5, iv.LowerEndpoint())
	assert.Equal(t, testPoint5, iv.UpperEndpoint())
}

func TestNewInterval_PanicsOnEmptyRange(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Closed(testHigh5, testLow0) })
	assert.Panics(t, func() { Open(testPoint5, testPoint5) })
	assert.Panics(t, func() { ClosedOpen(testPoint5, testPoint5) })
	assert.Panics(t, func() { OpenClosed(testPoint5, testPoint5) })
	assert.NotPanics(t, func() { Closed(testPoint5, testPoint5) })
}

func TestEndpointAccessors_PanicOnAbsent(t *testing.T) {
	t.Parallel()

	iv := AtLeast(testLow0)
	assert.NotPanics(t, func() { iv.LowerEndpoint() })
	assert.Panics(t, func() { iv.UpperEndpoint() })
	assert.Panics(t, func() { iv.UpperKind() })
}

func TestEncloses(t *testing.T) {
	t.Parallel()

	outer := Closed(testLow0, testHigh5)
	assert.True(t, outer.Encloses(Closed(testLow0, testHigh5)))
	assert.True(t, outer.Encloses(Open(testLow0, testHigh5)))
	assert.True(t, outer.Encloses(Closed(testPoint3, testPoint3)))
	assert.False(t, outer.Encloses(Closed(testLow0, testPoint6)))
	assert.False(t, outer.Encloses(All[int]()))
	assert.True(t, All[int]().Encloses(outer))
}

func TestIsConnected_TouchKinds(t *testing.T) {
	t.Parallel()

	// Closed/closed touch connects: [0,1] and [1,5].
	assert.True(t, Closed(testLow0, testHigh1).IsConnected(Closed(testHigh1, testHigh5)))
	// Closed/open touch does not connect: [0,1] and (1,5].
	assert.False(t, Closed(testLow0, testHigh1).IsConnected(OpenClosed(testHigh1, testHigh5)))
	// Open/open touch does not connect: (0,1) and (1,5).
	assert.False(t, Open(testLow0, testHigh1).IsConnected(Open(testHigh1, testHigh5)))
	// Overlapping intervals connect.
	assert.True(t, Closed(testLow0, testPoint3).IsConnected(Closed(testPoint3, testHigh5)))
	// Disjoint, non-touching intervals do not connect.
	assert.False(t, Closed(testLow0, testHigh1).IsConnected(Closed(testHigh5, testPoint6)))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	require.True(t, Closed(testLow0, testHigh5).Equal(Closed(testLow0, testHigh5)))
	assert.False(t, Closed(testLow0, testHigh5).Equal(Open(testLow0, testHigh5)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[0, 5]", Closed(testLow0, testHigh5).String())
	assert.Equal(t, "(0, 5)", Open(testLow0, testHigh5).String())
	assert.Equal(t, "[0, +inf)", AtLeast(testLow0).String())
	assert.Equal(t, "(-inf, 5]", AtMost(testHigh5).String())
}
