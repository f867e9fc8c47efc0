// SPDX-License-Identifier: MIT

// Package homology computes Vietoris–Rips persistent homology of point clouds
// with coefficients in Z/2.
//
// What:
//   - Rips implements Engine: Compute(ctx, cloud, maxdim) returns one
//     diagram per degree 0..maxdim. Essential classes have Death = +Inf.
//
// How:
//   - Degree 0 uses union-find over edges in filtration order (Kruskal).
//   - Degrees >= 1 use persistent cohomology with clearing; coboundary columns
//     are roaring bitmaps and Z/2 column addition is an in-place XOR.
//   - By default the filtration stops at the enclosing radius. Above it the
//     complex is a cone, so every finite bar is still reported and exactly
//     one H0 class is essential.
//   - Results are cached in an LRU keyed by the cloud fingerprint, so the
//     same cloud is never reduced twice by one engine.
//
// Bars of zero length are never reported.
//
// Complexity:
//   - Simplex count grows as C(N, maxdim+2); WithMaxSimplices bounds memory
//     and yields ErrTooLarge instead of exhausting it.
package homology
