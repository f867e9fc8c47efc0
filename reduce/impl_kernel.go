// SPDX-License-Identifier: MIT
// Package: reduce
//
// impl_kernel.go - RBF kernel PCA.
//
// Implementation:
//   - Stage 1: Gram matrix K_ij = exp(−γ‖x_i − x_j‖²), γ = 1/M unless WithGamma.
//   - Stage 2: double centering Kc = K − 1K − K1 + 1K1, i.e.
//     Kc_ij = K_ij − r_i − r_j + g with r the row means and g the grand mean.
//   - Stage 3: top-k eigenpairs (α, λ) of Kc.
//   - Stage 4: embedding column j = α_j·√max(λ_j, 0).
//
// Complexity: O(N²·M + N³) time, O(N²) space.

package reduce

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

func (s *Spectral) kernel(ctx context.Context, m *cloud.PointCloud, k int) (*cloud.PointCloud, error) {
	n := m.Rows()
	if k > n {
		return nil, reduceErrorf(opKernel, fmt.Errorf("target=%d, only %d points: %w", k, n, ErrTargetDim))
	}
	gamma := s.gamma
	if gamma == DefaultGamma {
		gamma = 1 / float64(m.Cols())
	}

	// Stage 1: Gram matrix (upper triangle, mirrored by SymDense).
	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		gram.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			gram.SetSym(i, j, math.Exp(-gamma*m.Dist2(i, j)))
		}
	}

	// Stage 2: double centering.
	rowMean := make([]float64, n)
	grand := 0.0
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += gram.At(i, j)
		}
		rowMean[i] = sum / float64(n)
		grand += rowMean[i]
	}
	grand /= float64(n)
	centered := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			centered.SetSym(i, j, gram.At(i, j)-rowMean[i]-rowMean[j]+grand)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, reduceErrorf(opKernel, err)
	}

	// Stage 3: leading eigenpairs.
	lambda, alpha, err := topEigen(centered, k)
	if err != nil {
		return nil, reduceErrorf(opKernel, err)
	}

	// Stage 4: scale eigenvectors; tiny negative eigenvalues are round-off.
	for j, l := range lambda {
		scale := math.Sqrt(math.Max(l, 0))
		for i := 0; i < n; i++ {
			alpha.Set(i, j, alpha.At(i, j)*scale)
		}
	}

	return denseToCloud(opKernel, alpha)
}
