// SPDX-License-Identifier: MIT

package shapes_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessimichele/PersHomEmbProj/cloud"
	"github.com/alessimichele/PersHomEmbProj/shapes"
)

const tol = 1e-9

func rows(t *testing.T, pc *cloud.PointCloud) [][]float64 {
	t.Helper()
	out := make([][]float64, pc.Rows())
	for i := range out {
		row, err := pc.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

func TestGenerate_Shapes(t *testing.T) {
	t.Parallel()

	for _, name := range shapes.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			src, err := shapes.ByName(name, shapes.WithSeed(1))
			require.NoError(t, err)

			pc, err := src.Generate(64)
			require.NoError(t, err)
			assert.Equal(t, 64, pc.Rows())
			assert.Equal(t, src.Dim(), pc.Cols())
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := shapes.NewSphere(shapes.WithSeed(1)).Generate(0)
	assert.ErrorIs(t, err, shapes.ErrBadSize)

	_, err = shapes.NewSphere().Generate(10)
	assert.ErrorIs(t, err, shapes.ErrNeedRandSource)

	// Size is checked before the RNG.
	_, err = shapes.NewCircle().Generate(-1)
	assert.ErrorIs(t, err, shapes.ErrBadSize)

	_, err = shapes.ByName("klein_bottle")
	assert.ErrorIs(t, err, shapes.ErrUnknownShape)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := shapes.NewSwissRoll(shapes.WithSeed(42)).Generate(100)
	require.NoError(t, err)
	b, err := shapes.NewSwissRoll(shapes.WithRand(rand.New(rand.NewSource(42)))).Generate(100)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := shapes.NewSwissRoll(shapes.WithSeed(43)).Generate(100)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestSwissRoll_Geometry(t *testing.T) {
	t.Parallel()

	pc, err := shapes.NewSwissRoll(shapes.WithSeed(3)).Generate(200)
	require.NoError(t, err)
	for _, p := range rows(t, pc) {
		phi := math.Hypot(p[0], p[1])
		assert.GreaterOrEqual(t, phi, 1.5*math.Pi-tol)
		assert.LessOrEqual(t, phi, 4.5*math.Pi+tol)
		assert.GreaterOrEqual(t, p[2], 0.0)
		assert.Less(t, p[2], 10.0)
	}
}

func TestSurfaces_Geometry(t *testing.T) {
	t.Parallel()

	t.Run("sphere radius", func(t *testing.T) {
		t.Parallel()
		pc, err := shapes.NewSphere(shapes.WithSeed(5), shapes.WithRadius(2)).Generate(100)
		require.NoError(t, err)
		for _, p := range rows(t, pc) {
			assert.InDelta(t, 2.0, math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]), tol)
		}
	})

	t.Run("cylinder", func(t *testing.T) {
		t.Parallel()
		pc, err := shapes.NewCylinder(shapes.WithSeed(5), shapes.WithHeight(4)).Generate(100)
		require.NoError(t, err)
		for _, p := range rows(t, pc) {
			assert.InDelta(t, 1.0, math.Hypot(p[0], p[1]), tol)
			assert.GreaterOrEqual(t, p[2], 0.0)
			assert.Less(t, p[2], 4.0)
		}
	})

	t.Run("torus implicit equation", func(t *testing.T) {
		t.Parallel()
		pc, err := shapes.NewTorus(shapes.WithSeed(5)).Generate(100)
		require.NoError(t, err)
		for _, p := range rows(t, pc) {
			// (sqrt(x²+y²) − R)² + z² = r²
			d := math.Hypot(p[0], p[1]) - 3
			assert.InDelta(t, 1.0, d*d+p[2]*p[2], 1e-9)
		}
	})

	t.Run("circle and eight", func(t *testing.T) {
		t.Parallel()
		circ, err := shapes.NewCircle(shapes.WithSeed(5)).Generate(50)
		require.NoError(t, err)
		for _, p := range rows(t, circ) {
			assert.InDelta(t, 1.0, math.Hypot(p[0], p[1]), tol)
		}
		eight, err := shapes.NewEight(shapes.WithSeed(5)).Generate(50)
		require.NoError(t, err)
		for _, p := range rows(t, eight) {
			// y² = x²(1 − x²)
			assert.InDelta(t, p[0]*p[0]*(1-p[0]*p[0]), p[1]*p[1], tol)
		}
	})
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { shapes.WithRand(nil) })
	assert.Panics(t, func() { shapes.WithRadius(0) })
	assert.Panics(t, func() { shapes.WithHeight(-1) })
	assert.Panics(t, func() { shapes.WithTubeRadius(math.NaN()) })
	assert.Panics(t, func() { shapes.WithRingRadius(math.Inf(1)) })
	assert.NotPanics(t, func() { shapes.WithRingRadius(0.5) })
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"circle", "cylinder", "eight", "sphere", "swiss_roll", "torus"},
		shapes.Names())
}
