// SPDX-License-Identifier: MIT

// Package embed appends extra coordinates to a point cloud, either exact zeros
// or uniform noise scaled from the cloud's global value range.
//
// Augment is a pure function of (cloud, Spec, rng state): with the same seed it
// produces bit-identical output.
package embed
