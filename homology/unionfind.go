// SPDX-License-Identifier: MIT
// Package: homology
//
// unionfind.go - degree-0 persistence by Kruskal's algorithm.
//
// Steps:
//  1. Edges arrive already sorted in filtration order (diam asc, index asc).
//  2. Every vertex is born at 0 in its own component.
//  3. For each edge (u,v): if find(u) != find(v), merge them. One component
//     dies at diam(edge): emit (0, diam) unless diam == 0. The edge's rank is
//     recorded as cleared: its degree-1 column would reduce to zero.
//  4. Each component left after the last edge yields (0, +Inf).
//
// Complexity: O(E·α(N)) after sorting. Memory: O(N).

package homology

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/alessimichele/PersHomEmbProj/diagram"
)

// disjointSet is union-find with path halving and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
	count  int // number of disjoint components
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n), count: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find walks to the root, pointing each visited node at its grandparent.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
	ds.count--

	return true
}

// zeroDegree returns the H0 diagram and the ranks of the merging edges.
func zeroDegree(n int, edges []simplex, binom binomials) (diagram.Diagram, *roaring.Bitmap) {
	ds := newDisjointSet(n)
	merged := roaring.New()
	bars := make(diagram.Diagram, 0, n)
	verts := make([]int, 2)
	for r, e := range edges {
		verts = binom.vertices(e.index, 1, n, verts)
		if !ds.union(verts[0], verts[1]) {
			continue
		}
		merged.Add(uint32(r))
		if e.diam > 0 {
			bars = append(bars, diagram.Pair{Birth: 0, Death: e.diam})
		}
		if ds.count == 1 {
			break
		}
	}
	for i := 0; i < ds.count; i++ {
		bars = append(bars, diagram.Pair{Birth: 0, Death: math.Inf(1)})
	}

	return bars, merged
}
