// SPDX-License-Identifier: MIT
// Package: homology
//
// simplex.go - combinatorial indexing and enumeration of Rips simplices.
//
// A k-simplex with vertices v0 < v1 < … < vk is identified by its colex index
// Σ C(v_i, i+1) (combinatorial number system). Indices of k-simplices are
// dense in [0, C(N, k+1)).
//
// Filtration order within one dimension is (diam asc, index asc). The same
// sorted slice provides column order when reducing degree k and coface ranks
// when reducing degree k−1.

package homology

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// simplex is one filtration entry: its colex index and its diameter.
type simplex struct {
	index int64
	diam  float64
}

// binomials caches C(n, k) for n <= maxN, k <= maxK.
type binomials struct {
	maxK  int
	table []int64 // (maxN+1)×(maxK+1), row-major
}

// newBinomials fills Pascal's triangle. Entries that overflow int64 make the
// whole table unusable and yield ErrTooLarge.
func newBinomials(maxN, maxK int) (binomials, error) {
	b := binomials{maxK: maxK, table: make([]int64, (maxN+1)*(maxK+1))}
	w := maxK + 1
	for n := 0; n <= maxN; n++ {
		b.table[n*w] = 1
		for k := 1; k <= maxK && k <= n; k++ {
			x, y := b.table[(n-1)*w+k-1], b.table[(n-1)*w+k]
			if x > math.MaxInt64-y {
				return binomials{}, fmt.Errorf("C(%d,%d) overflows int64: %w", n, k, ErrTooLarge)
			}
			b.table[n*w+k] = x + y
		}
	}

	return b, nil
}

// c returns C(n, k); zero when k > n.
func (b binomials) c(n, k int) int64 {
	if k > n {
		return 0
	}

	return b.table[n*(b.maxK+1)+k]
}

// vertices decodes a colex index of a dim-simplex over n points into out
// (ascending, len dim+1).
func (b binomials) vertices(index int64, dim, n int, out []int) []int {
	out = out[:dim+1]
	v := n - 1
	for i := dim; i >= 0; i-- {
		for b.c(v, i+1) > index {
			v--
		}
		out[i] = v
		index -= b.c(v, i+1)
		v--
	}

	return out
}

// indexOf returns the colex index of ascending vertices.
func (b binomials) indexOf(verts []int) int64 {
	var idx int64
	for i, v := range verts {
		idx += b.c(v, i+1)
	}

	return idx
}

// enumerator lists all simplices of a fixed dimension with diameter <= thr.
type enumerator struct {
	dist   distances
	binom  binomials
	thr    float64
	budget int // remaining simplex allowance
}

// enumerate returns the dim-simplices sorted in filtration order.
// Vertices are extended in ascending order and a branch is pruned as soon as
// one edge exceeds the threshold.
func (e *enumerator) enumerate(ctx context.Context, dim int) ([]simplex, error) {
	n := e.dist.n
	if dim+1 > n {
		return nil, nil
	}
	var (
		out   []simplex
		verts = make([]int, dim+1)
		walk  func(depth, start int, diam float64, index int64) error
	)
	walk = func(depth, start int, diam float64, index int64) error {
		if depth == dim+1 {
			if len(out) >= e.budget {
				return fmt.Errorf("more than %d simplices: %w", e.budget, ErrTooLarge)
			}
			out = append(out, simplex{index: index, diam: diam})
			return nil
		}
		// Leave room for the remaining dim-depth vertices.
		for v := start; v <= n-(dim+1-depth); v++ {
			if depth == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			d, ok := diam, true
			for _, u := range verts[:depth] {
				x := e.dist.at(u, v)
				if x > e.thr {
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
			verts[depth] = v
			if err := walk(depth+1, v+1, d, index+e.binom.c(v, depth+1)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 0, 0, 0); err != nil {
		return nil, homologyErrorf(opEnumerate, err)
	}
	sortFiltration(out)
	e.budget -= len(out)

	return out, nil
}

func sortFiltration(s []simplex) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].diam != s[j].diam {
			return s[i].diam < s[j].diam
		}
		return s[i].index < s[j].index
	})
}

// denseRankLimit bounds the index space for which ranks are kept in a slice.
const denseRankLimit = 1 << 24

// rankIndex maps a colex index to its position in a filtration-sorted slice.
type rankIndex struct {
	dense  []int32         // index → rank, −1 when absent
	sparse map[int64]int32 // used when the index space is too large
}

func newRankIndex(sorted []simplex, space int64) rankIndex {
	if space <= denseRankLimit {
		dense := make([]int32, space)
		for i := range dense {
			dense[i] = -1
		}
		for r, s := range sorted {
			dense[s.index] = int32(r)
		}
		return rankIndex{dense: dense}
	}
	sparse := make(map[int64]int32, len(sorted))
	for r, s := range sorted {
		sparse[s.index] = int32(r)
	}

	return rankIndex{sparse: sparse}
}

func (r rankIndex) rank(index int64) (int32, bool) {
	if r.dense != nil {
		v := r.dense[index]
		return v, v >= 0
	}
	v, ok := r.sparse[index]

	return v, ok
}
