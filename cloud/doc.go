// SPDX-License-Identifier: MIT

// Package cloud defines PointCloud, the immutable N×D coordinate matrix that
// flows through every stage of the embed → reconstruct → compare pipeline.
//
// Invariants held by every *PointCloud:
//   - N >= 1 points and D >= 1 coordinates per point.
//   - Every coordinate is finite (NaN/±Inf are rejected at construction).
//   - Storage is never shared with callers: constructors copy, accessors copy.
//
// Derived clouds (augmented, reconstructed) are produced with HStack or New and
// are independent values; nothing in this package mutates a cloud in place.
package cloud
