// SPDX-License-Identifier: MIT

// Package reduce maps an augmented N×M point cloud back to a chosen number of
// dimensions.
//
// Two methods are available behind the Reducer interface, selected by Kind:
//   - Linear: principal component analysis. Components are ordered by
//     explained variance; with targetDim = M the result is a rotation of the
//     centered input.
//   - Kernel: kernel PCA with the radial basis function kernel
//     exp(−γ‖x−y‖²); γ defaults to 1/M.
//
// Both share one deterministic symmetric eigensolver path (gonum mat.EigenSym)
// with a canonical eigenvector sign, so repeated runs are bit-identical.
// A target dimension larger than the input's column count is rejected with
// ErrTargetDim; nothing is truncated or padded.
package reduce
