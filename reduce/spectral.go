// SPDX-License-Identifier: MIT
// Package: reduce
//
// spectral.go - the Reducer contract and its eigendecomposition-based
// implementation.
//
// Contract:
//   - Output is exactly N×targetDim; targetDim ∈ [1, M] (M = input columns).
//   - Deterministic: identical input ⇒ bit-identical output. Eigenvector signs
//     are fixed so that the entry with the largest magnitude is positive.
//   - Context is checked before the eigensolve; the solve itself is not
//     interruptible.

package reduce

import (
	"context"
	"fmt"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

// Reducer maps an N×M cloud to an N×targetDim cloud.
type Reducer interface {
	Reduce(ctx context.Context, m *cloud.PointCloud, targetDim int, kind Kind) (*cloud.PointCloud, error)
}

// Spectral implements Reducer with dense symmetric eigendecompositions
// (gonum mat.EigenSym). It is immutable after construction and safe for
// concurrent use.
type Spectral struct {
	gamma float64 // RBF coefficient; DefaultGamma ⇒ 1/M
}

var _ Reducer = (*Spectral)(nil)

// NewSpectral returns a Spectral reducer configured by opts.
func NewSpectral(opts ...Option) *Spectral {
	s := &Spectral{gamma: DefaultGamma}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Reduce projects m onto targetDim components using the method kind.
//
// Errors:
//   - cloud.ErrNilCloud for a nil input.
//   - ErrUnknownKind for an invalid kind.
//   - ErrTargetDim if targetDim < 1 or targetDim > M (Kernel: also > N).
//   - ErrNoConvergence if the eigensolver fails.
//   - ctx.Err() if the context is done before the eigensolve.
//
// Complexity:
//   - Linear: O(N·M²) for the covariance + O(M³) eigensolve.
//   - Kernel: O(N²·M) for the Gram matrix + O(N³) eigensolve.
func (s *Spectral) Reduce(ctx context.Context, m *cloud.PointCloud, targetDim int, kind Kind) (*cloud.PointCloud, error) {
	if m == nil {
		return nil, reduceErrorf(opReduce, cloud.ErrNilCloud)
	}
	if !kind.Valid() {
		return nil, reduceErrorf(opReduce, fmt.Errorf("%v: %w", kind, ErrUnknownKind))
	}
	if targetDim < 1 || targetDim > m.Cols() {
		return nil, reduceErrorf(opReduce, fmt.Errorf("target=%d, input has %d columns: %w", targetDim, m.Cols(), ErrTargetDim))
	}
	if err := ctx.Err(); err != nil {
		return nil, reduceErrorf(opReduce, err)
	}

	if kind == Kernel {
		return s.kernel(ctx, m, targetDim)
	}

	return s.linear(ctx, m, targetDim)
}
