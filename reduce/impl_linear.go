// SPDX-License-Identifier: MIT
// Package: reduce
//
// impl_linear.go - principal component analysis.
//
// Implementation:
//   - Stage 1: load the cloud into an N×M Dense and center every column.
//   - Stage 2: covariance C = Xcᵀ·Xc / (N−1) (N−1 clamps to 1 for a single point).
//   - Stage 3: top-k eigenvectors W of C (descending variance, canonical sign).
//   - Stage 4: scores = Xc·W.
//
// With k = M the map is an orthogonal change of basis of the centered cloud,
// so all pairwise distances are preserved.

package reduce

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

func (s *Spectral) linear(ctx context.Context, m *cloud.PointCloud, k int) (*cloud.PointCloud, error) {
	n, cols := m.Rows(), m.Cols()

	// Stage 1: centering.
	x := mat.NewDense(n, cols, m.Data())
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, x)
		mean := 0.0
		for _, v := range col {
			mean += v
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			x.Set(i, j, col[i]-mean)
		}
	}

	// Stage 2: sample covariance.
	denom := float64(n - 1)
	if denom < 1 {
		denom = 1
	}
	var prod mat.Dense
	prod.Mul(x.T(), x)
	cov := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			cov.SetSym(i, j, prod.At(i, j)/denom)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, reduceErrorf(opLinear, err)
	}

	// Stage 3: principal axes.
	_, w, err := topEigen(cov, k)
	if err != nil {
		return nil, reduceErrorf(opLinear, err)
	}

	// Stage 4: projection.
	var scores mat.Dense
	scores.Mul(x, w)

	return denseToCloud(opLinear, &scores)
}

// denseToCloud copies a Dense into a PointCloud. Non-finite entries indicate
// a numerical breakdown and are reported as ErrNoConvergence.
func denseToCloud(tag string, d *mat.Dense) (*cloud.PointCloud, error) {
	r, c := d.Dims()
	buf := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		buf = append(buf, d.RawRowView(i)...)
	}
	out, err := cloud.New(r, c, buf)
	if err != nil {
		return nil, reduceErrorf(tag, fmt.Errorf("%w: %w", ErrNoConvergence, err))
	}

	return out, nil
}
