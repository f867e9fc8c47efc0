// SPDX-License-Identifier: MIT

package diagram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessimichele/PersHomEmbProj/diagram"
)

var inf = math.Inf(1)

func TestPair_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pair diagram.Pair
		ok   bool
	}{
		{"finite", diagram.Pair{Birth: 0.1, Death: 0.5}, true},
		{"essential", diagram.Pair{Birth: 0, Death: inf}, true},
		{"zero length", diagram.Pair{Birth: 1, Death: 1}, true},
		{"death before birth", diagram.Pair{Birth: 1, Death: 0.5}, false},
		{"negative birth", diagram.Pair{Birth: -0.1, Death: 1}, false},
		{"nan death", diagram.Pair{Birth: 0, Death: math.NaN()}, false},
		{"infinite birth", diagram.Pair{Birth: inf, Death: inf}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.pair.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, diagram.ErrInvalidPair)
			}
		})
	}
}

func TestDiagram_Helpers(t *testing.T) {
	t.Parallel()

	d := diagram.Diagram{{0.2, 0.9}, {0, inf}, {0.1, 0.3}, {0.1, 0.2}}
	assert.Equal(t, diagram.Diagram{{0.2, 0.9}, {0.1, 0.3}, {0.1, 0.2}}, d.Finite())
	assert.Equal(t, diagram.Diagram{{0, inf}}, d.Essential())
	assert.Equal(t, diagram.Diagram{{0, inf}, {0.1, 0.2}, {0.1, 0.3}, {0.2, 0.9}}, d.Sorted())
	assert.InDelta(t, 0.7, d.MaxPersistence(), 1e-12)
	assert.True(t, diagram.Pair{Birth: 0, Death: inf}.Essential())
	assert.Equal(t, "(0, +Inf)", diagram.Pair{Birth: 0, Death: inf}.String())

	c := d.Clone()
	c[0].Birth = 42
	assert.Equal(t, 0.2, d[0].Birth, "Clone must not alias")
}

func TestSet_Validate(t *testing.T) {
	t.Parallel()

	s := diagram.Set{{{0, inf}, {0, 1}}, {}, {}}
	require.NoError(t, s.Validate(2))
	assert.Equal(t, 2, s.MaxDim())
	assert.ErrorIs(t, s.Validate(1), diagram.ErrDegreeCount)

	bad := diagram.Set{{{0, inf}}, {{2, 1}}}
	assert.ErrorIs(t, bad.Validate(1), diagram.ErrInvalidPair)
}

func TestComparableAndApproxEqual(t *testing.T) {
	t.Parallel()

	a := diagram.Set{{{0, inf}, {0, 0.5}}, {{0.4, 0.8}}}
	b := diagram.Set{{{0, 0.5 + 1e-10}, {0, inf}}, {{0.4, 0.8}}}
	require.NoError(t, diagram.Comparable(a, b))
	assert.True(t, diagram.ApproxEqual(a, b, 1e-9))
	assert.False(t, diagram.ApproxEqual(a, b, 1e-12))

	c := diagram.Set{{{0, inf}, {0, 0.5}}}
	assert.ErrorIs(t, diagram.Comparable(a, c), diagram.ErrIncomparable)
	assert.False(t, diagram.ApproxEqual(a, c, 1))

	// Essential bars only match essential bars.
	d := diagram.Set{{{0, 1e300}, {0, 0.5}}, {{0.4, 0.8}}}
	assert.False(t, diagram.ApproxEqual(a, d, inf))

	e := diagram.Set{{{0, inf}, {0, 0.5}}, {}}
	assert.False(t, diagram.ApproxEqual(a, e, 1), "different bar counts")
}

func TestSet_CloneIsDeep(t *testing.T) {
	t.Parallel()

	s := diagram.Set{{{0, 1}}, nil}
	c := s.Clone()
	c[0][0].Death = 7
	assert.Equal(t, 1.0, s[0][0].Death)
	assert.NotNil(t, c[1])
	assert.Nil(t, diagram.Set(nil).Clone())
}
