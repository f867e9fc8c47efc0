// SPDX-License-Identifier: MIT
// Package: shapes
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults mirror the parameters of the reference experiments:
//   • rng          = nil  (Generate fails with ErrNeedRandSource)
//   • radius       = 1    (Cylinder, Sphere, Circle)
//   • height       = 10   (SwissRoll, Cylinder)
//   • minorRadius  = 1    (Torus r)
//   • majorRadius  = 3    (Torus R)

package shapes

import "math/rand"

const (
	defaultRadius      = 1.0
	defaultHeight      = 10.0
	defaultMinorRadius = 1.0
	defaultMajorRadius = 3.0
)

// config aggregates all knobs used by the families. It is copied into each
// source at construction; later option values override earlier ones.
type config struct {
	rng         *rand.Rand
	radius      float64
	height      float64
	minorRadius float64
	majorRadius float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		radius:      defaultRadius,
		height:      defaultHeight,
		minorRadius: defaultMinorRadius,
		majorRadius: defaultMajorRadius,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// checkGenerate validates the common Generate preconditions in priority order:
// size first, then RNG presence.
func (c config) checkGenerate(family string, n int) error {
	if n < 1 {
		return shapeErrorf(family, ErrBadSize)
	}
	if c.rng == nil {
		return shapeErrorf(family, ErrNeedRandSource)
	}

	return nil
}

// uniform draws n values from U[lo, hi) in index order.
func (c config) uniform(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*c.rng.Float64()
	}

	return out
}
