// SPDX-License-Identifier: MIT

// Package shapes samples synthetic point clouds from classic manifolds:
// SwissRoll, Cylinder, Sphere and Torus in R³, Circle and Eight in R².
//
// Every family follows the same rules:
//   - Randomness comes only from WithSeed or WithRand; there is no global RNG.
//     Generate without one fails with ErrNeedRandSource.
//   - Geometric parameters are functional options that panic on non-positive
//     or non-finite values; Generate itself never panics.
//   - Families can be looked up by name (ByName) so experiments can be
//     described as data.
//
// Example:
//
//	src := shapes.NewTorus(shapes.WithSeed(7), shapes.WithRingRadius(4))
//	pc, err := src.Generate(500) // 500×3
package shapes
