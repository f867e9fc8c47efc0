// SPDX-License-Identifier: MIT
// Package: shapes
//
// options.go - functional options for point-cloud sources.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: randomness flows only through WithSeed/WithRand.
//   • Options a family does not use are ignored (Radius on a SwissRoll, etc.).

package shapes

import (
	"math"
	"math/rand"
)

// Option customizes a source by mutating its config before generation.
type Option func(*config)

// WithRand provides an explicit RNG. The source draws from it on every
// Generate call, so sharing one *rand.Rand between goroutines is unsafe.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shapes: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a private *rand.Rand seeded with seed (reproducible).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRadius sets the radius of Cylinder, Sphere and Circle. Panics unless radius > 0.
func WithRadius(radius float64) Option {
	mustPositive("WithRadius", radius)
	return func(c *config) {
		c.radius = radius
	}
}

// WithHeight sets the axial extent of SwissRoll and Cylinder. Panics unless height > 0.
func WithHeight(height float64) Option {
	mustPositive("WithHeight", height)
	return func(c *config) {
		c.height = height
	}
}

// WithTubeRadius sets the minor radius r of a Torus. Panics unless r > 0.
func WithTubeRadius(r float64) Option {
	mustPositive("WithTubeRadius", r)
	return func(c *config) {
		c.minorRadius = r
	}
}

// WithRingRadius sets the major radius R of a Torus. Panics unless R > 0.
func WithRingRadius(R float64) Option {
	mustPositive("WithRingRadius", R)
	return func(c *config) {
		c.majorRadius = R
	}
}

func mustPositive(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic("shapes: " + name + ": value must be finite and > 0")
	}
}
