// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// topEigen returns the k largest eigenpairs of sym, eigenvalues descending.
// Ties keep the solver's (ascending) order reversed, which is deterministic.
// Each eigenvector column is sign-normalized: its largest-|v| entry is positive.
func topEigen(sym *mat.SymDense, k int) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrNoConvergence
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	order := make([]int, len(values))
	for i := range order {
		order[i] = len(values) - 1 - i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	n, _ := sym.Dims()
	outVals := make([]float64, k)
	outVecs := mat.NewDense(n, k, nil)
	for c := 0; c < k; c++ {
		v := values[order[c]]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("eigenvalue %d is %v: %w", c, v, ErrNoConvergence)
		}
		outVals[c] = v
		col := mat.Col(nil, order[c], &vectors)
		canonicalSign(col)
		outVecs.SetCol(c, col)
	}

	return outVals, outVecs, nil
}

// canonicalSign flips v in place so that its largest-magnitude entry is
// positive. The first index wins among equal magnitudes.
func canonicalSign(v []float64) {
	best, at := -1.0, 0
	for i, x := range v {
		if a := math.Abs(x); a > best {
			best, at = a, i
		}
	}
	if v[at] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}
