package pvector_test

import (
	"testing"

	"github.com/kvx/pvector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyVectorBoundaries(t *testing.T) {
	t.Parallel()

	v := pvector.Empty[int]()
	assert.Zero(t, v.Len())
	assert.True(t, v.IsEmpty())

	assert.PanicsWithError(t, "Attempt to get index 0 for vector of size 0", func() { v.Get(0) })
	assert.PanicsWithError(t, "last/1 called for empty vector", func() { v.Last() })
	assert.PanicsWithError(t, "Cannot remove_last from empty vector", func() { v.RemoveLast() })

	_, ok := v.Fetch(1)
	assert.False(t, ok)
}

func TestAppendBuildsSmallVector(t *testing.T) {
	t.Parallel()

	v := pvector.Empty[int]().Append(0).Append(1)
	require.Equal(t, 2, v.Len())
	require.Equal(t, 0, v.Get(0))
	require.Equal(t, 1, v.Get(1))
}

// TestPromotionAndRootGrowth uses a 4-way-branching vector (spec.md §2's
// test-tuned SHIFT_BITS=2, BRANCH=4 build) to force a tail->root
// promotion and a root-level growth with a small number of elements,
// then verifies every index.
func TestPromotionAndRootGrowth(t *testing.T) {
	t.Parallel()

	const n = 68
	v := pvector.Empty[int](pvector.WithBranchExponent(2))
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}

	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, i, v.Get(i), "index %d", i)
	}

	assert.PanicsWithError(t, "Attempt to get index 68 for vector of size 68", func() { v.Get(68) })
}

func TestSetOutOfRangeMessage(t *testing.T) {
	t.Parallel()

	v := pvector.Of("a", "b", "c")
	assert.PanicsWithError(t, "Attempt to set index 10 for vector of size 3", func() { v.Set(10, "x") })
}

func TestInspect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#PersistentVector<count: 0, []>", pvector.Empty[int]().Inspect(-1))
	assert.Equal(t, "#PersistentVector<count: 0, []>", pvector.Empty[int]().String())

	v := pvector.Of(1, 2, 3)
	assert.Equal(t, "#PersistentVector<count: 3, [1, 2, 3]>", v.Inspect(-1))
	assert.Equal(t, "#PersistentVector<count: 3, [1, 2, ...]>", v.Inspect(2))
}

func TestCollapseInvariant(t *testing.T) {
	t.Parallel()

	// A small branch factor makes root growth/collapse happen often with
	// few elements, so this test can afford to walk append/remove_last
	// through every transition and check reads after each one
	// (spec.md §8 property 10; spec.md §3 invariant 5).
	const n = 600
	v := pvector.Empty[int](pvector.WithBranchExponent(2))

	for i := 0; i < n; i++ {
		v = v.Append(i)
		assertSampledReads(t, v)
	}
	for i := 0; i < n; i++ {
		v = v.RemoveLast()
		assertSampledReads(t, v)
	}
}

func assertSampledReads(t *testing.T, v pvector.Vector[int]) {
	t.Helper()
	// The root's shape is not visible from outside the package, so a
	// leftover single-child root is not detected here directly. What is
	// checked is that every sampled index still walks the root and reads
	// back the value appended at it after each grow/collapse transition.
	for i := 0; i < v.Len(); i += 37 {
		require.Equal(t, i, v.Get(i), "index %d", i)
	}
}
