// SPDX-License-Identifier: MIT

// Package pipeline runs the embed → reconstruct → compare experiment:
// a point cloud is lifted into a higher-dimensional space (package embed),
// reduced back to its original dimensionality by a Reducer (package reduce),
// and the persistence diagrams of the original and the reconstruction are
// computed by an Engine (package homology) for degrees 0..maxdim.
//
// The reducer is always asked for exactly the original dimensionality, so the
// two diagram sets are comparable degree by degree.
//
// Collaborators are interfaces; tests and callers may substitute their own.
// Failures are reported with one of ErrInvalidSpec, ErrReducer,
// ErrDimensionMismatch or ErrHomology and never produce partial results.
package pipeline
