// SPDX-License-Identifier: MIT

package homology

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

func TestBinomials(t *testing.T) {
	t.Parallel()

	b, err := newBinomials(10, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.c(0, 0))
	assert.Equal(t, int64(45), b.c(10, 2))
	assert.Equal(t, int64(210), b.c(10, 4))
	assert.Equal(t, int64(0), b.c(3, 4))

	_, err = newBinomials(200, 100)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestColexRoundTrip(t *testing.T) {
	t.Parallel()

	const n = 9
	b, err := newBinomials(n, 4)
	require.NoError(t, err)

	// Every 3-subset of [0,n) maps to a distinct index in [0, C(n,3)).
	seen := make(map[int64]bool)
	buf := make([]int, 3)
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			for z := y + 1; z < n; z++ {
				idx := b.indexOf([]int{x, y, z})
				assert.Less(t, idx, b.c(n, 3))
				assert.False(t, seen[idx])
				seen[idx] = true
				assert.Equal(t, []int{x, y, z}, b.vertices(idx, 2, n, buf))
			}
		}
	}
	assert.Len(t, seen, int(b.c(n, 3)))
}

func TestEnumerate_FiltrationOrderAndPruning(t *testing.T) {
	t.Parallel()

	pc, err := cloud.FromRows([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	dist := newDistances(pc)
	b, err := newBinomials(4, 3)
	require.NoError(t, err)

	e := &enumerator{dist: dist, binom: b, thr: 1.0, budget: 100}
	edges, err := e.enumerate(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, edges, 4, "diagonals exceed the threshold")
	for _, s := range edges {
		assert.Equal(t, 1.0, s.diam)
	}
	tris, err := e.enumerate(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, tris)
	assert.Equal(t, 96, e.budget)

	e = &enumerator{dist: dist, binom: b, thr: math.Inf(1), budget: 100}
	edges, err = e.enumerate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, edges, 6)
	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, edges[i-1].diam, edges[i].diam)
	}
	assert.InDelta(t, math.Sqrt2, edges[5].diam, 1e-12)
	assert.InDelta(t, math.Sqrt2, dist.enclosingRadius(), 1e-12)
}

func TestRankIndex_DenseAndSparse(t *testing.T) {
	t.Parallel()

	sorted := []simplex{{index: 7, diam: 0.1}, {index: 2, diam: 0.2}}
	for _, space := range []int64{10, denseRankLimit + 1} {
		ri := newRankIndex(sorted, space)
		r, ok := ri.rank(2)
		assert.True(t, ok)
		assert.Equal(t, int32(1), r)
		_, ok = ri.rank(3)
		assert.False(t, ok)
	}
}

func TestDisjointSet(t *testing.T) {
	t.Parallel()

	ds := newDisjointSet(5)
	assert.True(t, ds.union(0, 1))
	assert.True(t, ds.union(3, 4))
	assert.False(t, ds.union(1, 0))
	assert.True(t, ds.union(1, 4))
	assert.Equal(t, 2, ds.count)
	assert.Equal(t, ds.find(0), ds.find(3))
	assert.NotEqual(t, ds.find(2), ds.find(3))
}
