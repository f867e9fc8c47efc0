// SPDX-License-Identifier: MIT
// Package: homology
//
// cohomology.go - degree-k persistence (k >= 1) by persistent cohomology with
// clearing over Z/2.
//
// Implementation:
//   - Stage 1: columns are the k-simplices in REVERSE filtration order; a
//     column whose simplex was a pivot of degree k−1 is cleared (skipped).
//   - Stage 2: a column is the coboundary of its simplex, stored as a roaring
//     bitmap of (k+1)-simplex filtration ranks. Z/2 addition is XOR.
//   - Stage 3: pivot(column) = minimum rank. While another reduced column owns
//     that pivot, XOR it in.
//   - Stage 4: a non-zero column σ with pivot τ yields [diam σ, diam τ);
//     zero-length bars are dropped. A zero column yields [diam σ, +Inf).
//
// Complexity: worst case cubic in the number of k-simplices; clearing and
// the filtration order keep typical reductions short.

package homology

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/alessimichele/PersHomEmbProj/diagram"
)

// ctxCheckEvery is the number of columns between context checks.
const ctxCheckEvery = 1024

// coboundaryBuilder produces coboundary columns of k-simplices.
type coboundaryBuilder struct {
	dist  distances
	binom binomials
	thr   float64
	ranks rankIndex // (k+1)-simplex colex index → filtration rank

	verts []int // scratch: decoded vertices of the current simplex
}

// column returns δσ restricted to cofaces with diameter <= thr.
func (b *coboundaryBuilder) column(s simplex, k int) *roaring.Bitmap {
	n := b.dist.n
	b.verts = b.binom.vertices(s.index, k, n, b.verts)
	col := roaring.New()
	j := 0 // number of simplex vertices below v
	for v := 0; v < n; v++ {
		if j <= k && b.verts[j] == v {
			j++
			continue
		}
		d, ok := s.diam, true
		for _, u := range b.verts {
			x := b.dist.at(u, v)
			if x > b.thr {
				ok = false
				break
			}
			if x > d {
				d = x
			}
		}
		if !ok {
			continue
		}
		// Colex index of verts with v inserted at position j.
		var idx int64
		for i := 0; i < j; i++ {
			idx += b.binom.c(b.verts[i], i+1)
		}
		idx += b.binom.c(v, j+1)
		for i := j; i <= k; i++ {
			idx += b.binom.c(b.verts[i], i+2)
		}
		if r, found := b.ranks.rank(idx); found {
			col.Add(uint32(r))
		}
	}

	return col
}

// reduceDegree computes the degree-k diagram.
//
// cols are the k-simplices and cofaces the (k+1)-simplices, both in filtration
// order. cleared holds ranks in cols to skip. The returned bitmap holds the
// pivot ranks in cofaces, i.e. the cleared set for degree k+1.
func reduceDegree(ctx context.Context, k int, cols, cofaces []simplex, b *coboundaryBuilder, cleared *roaring.Bitmap) (diagram.Diagram, *roaring.Bitmap, error) {
	var (
		bars   diagram.Diagram
		pivots = roaring.New()
		owner  = make(map[uint32]*roaring.Bitmap) // pivot rank → reduced column
	)
	for ci, seen := len(cols)-1, 0; ci >= 0; ci, seen = ci-1, seen+1 {
		if seen%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, homologyErrorf(opReduce, err)
			}
		}
		if cleared.Contains(uint32(ci)) {
			continue
		}
		sigma := cols[ci]
		col := b.column(sigma, k)
		for !col.IsEmpty() {
			other, taken := owner[col.Minimum()]
			if !taken {
				break
			}
			col.Xor(other)
		}
		if col.IsEmpty() {
			bars = append(bars, diagram.Pair{Birth: sigma.diam, Death: math.Inf(1)})
			continue
		}
		low := col.Minimum()
		owner[low] = col
		pivots.Add(low)
		if death := cofaces[low].diam; death > sigma.diam {
			bars = append(bars, diagram.Pair{Birth: sigma.diam, Death: death})
		}
	}

	return bars, pivots, nil
}
