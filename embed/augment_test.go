// SPDX-License-Identifier: MIT

package embed_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessimichele/PersHomEmbProj/cloud"
	"github.com/alessimichele/PersHomEmbProj/embed"
)

func sample(t *testing.T) *cloud.PointCloud {
	t.Helper()
	pc, err := cloud.FromRows([][]float64{
		{-4, 1, 2},
		{3, 8, -1},
		{0, 0.5, 20},
	})
	require.NoError(t, err)

	return pc
}

func TestAugment_ZeroExtraDimsIsIdentity(t *testing.T) {
	t.Parallel()

	pc := sample(t)
	for _, noise := range []bool{false, true} {
		out, err := embed.Augment(pc, embed.Spec{ExtraDims: 0, Noise: noise}, nil)
		require.NoError(t, err)
		assert.True(t, out.Equal(pc))
	}
}

func TestAugment_ZeroPadding(t *testing.T) {
	t.Parallel()

	pc := sample(t)
	out, err := embed.Augment(pc, embed.Spec{ExtraDims: 4}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, 7, out.Cols())

	for i := 0; i < out.Rows(); i++ {
		row, err := out.Row(i)
		require.NoError(t, err)
		orig, err := pc.Row(i)
		require.NoError(t, err)
		assert.Equal(t, orig, row[:3], "original columns must be unchanged")
		assert.Equal(t, []float64{0, 0, 0, 0}, row[3:])
	}
}

func TestAugment_NoiseWithinGlobalRange(t *testing.T) {
	t.Parallel()

	pc := sample(t)
	lo, hi := embed.NoiseRange(pc)
	assert.InDelta(t, -0.4, lo, 1e-12)
	assert.InDelta(t, 2.0, hi, 1e-12)

	out, err := embed.Augment(pc, embed.Spec{ExtraDims: 50, Noise: true}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	for i := 0; i < out.Rows(); i++ {
		for j := pc.Cols(); j < out.Cols(); j++ {
			v, err := out.At(i, j)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, lo)
			assert.LessOrEqual(t, v, hi)
		}
	}
}

func TestAugment_SeededRunsAreIdentical(t *testing.T) {
	t.Parallel()

	pc := sample(t)
	spec := embed.Spec{ExtraDims: 20, Noise: true}
	a, err := embed.Augment(pc, spec, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := embed.Augment(pc, spec, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestAugment_Errors(t *testing.T) {
	t.Parallel()

	pc := sample(t)

	_, err := embed.Augment(pc, embed.Spec{ExtraDims: -1}, nil)
	assert.ErrorIs(t, err, embed.ErrInvalidSpec)

	_, err = embed.Augment(pc, embed.Spec{ExtraDims: 2, Noise: true}, nil)
	assert.ErrorIs(t, err, embed.ErrNeedRandSource)

	_, err = embed.Augment(nil, embed.Spec{ExtraDims: 2}, nil)
	assert.ErrorIs(t, err, cloud.ErrNilCloud)

	assert.NoError(t, embed.Spec{ExtraDims: 3}.Validate())
}
