// SPDX-License-Identifier: MIT

// Package diagram holds persistence diagrams: Pair (one bar), Diagram (the
// bars of one homology degree) and Set (one Diagram per degree 0..maxdim).
//
// The package only models and checks diagrams; it performs no homology
// computation. Comparable and ApproxEqual let callers line up the diagrams of
// an original and a reconstructed cloud degree by degree.
package diagram
