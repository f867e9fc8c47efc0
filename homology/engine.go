// SPDX-License-Identifier: MIT
// Package: homology
//
// engine.go - the Engine contract and the Vietoris–Rips implementation.
//
// Pipeline of one Compute call:
//  1. Validate input, consult the LRU cache.
//  2. Distance matrix; threshold = configured value or enclosing radius.
//  3. Enumerate edges, run union-find for H0 (merging edges are cleared).
//  4. For k = 1..maxdim: enumerate (k+1)-simplices, reduce the degree-k
//     coboundary matrix with clearing, pass pivots on as the next cleared set.
//  5. Sort every diagram by (birth, death), cache and return.
//
// Determinism: for a fixed cloud the result is bit-identical, independent of
// cache state and concurrency.

package homology

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alessimichele/PersHomEmbProj/cloud"
	"github.com/alessimichele/PersHomEmbProj/diagram"
)

// Engine computes persistence diagrams of a point cloud for degrees 0..maxdim.
type Engine interface {
	Compute(ctx context.Context, c *cloud.PointCloud, maxdim int) (diagram.Set, error)
}

// Rips computes Vietoris–Rips persistent homology with Z/2 coefficients.
// It is safe for concurrent use; the only shared state is the internally
// synchronized cache.
type Rips struct {
	threshold    float64
	cacheSize    int
	maxSimplices int
	logger       zerolog.Logger
	cache        *diagramCache
}

var _ Engine = (*Rips)(nil)

// NewRips builds an engine. Without options it uses the enclosing-radius
// threshold, a DefaultCacheSize LRU and DefaultMaxSimplices.
func NewRips(opts ...Option) *Rips {
	r := &Rips{
		threshold:    DefaultThreshold,
		cacheSize:    DefaultCacheSize,
		maxSimplices: DefaultMaxSimplices,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.With().Str("component", "homology").Logger()
	r.cache = newDiagramCache(r.cacheSize)

	return r
}

// Compute returns maxdim+1 diagrams, index k holding the degree-k bars.
//
// Errors:
//   - cloud.ErrNilCloud, ErrInvalidMaxDim for bad input.
//   - ErrTooLarge when the filtration exceeds the simplex budget.
//   - ctx.Err() when cancelled (checked during enumeration and reduction).
func (r *Rips) Compute(ctx context.Context, c *cloud.PointCloud, maxdim int) (diagram.Set, error) {
	if c == nil {
		return nil, homologyErrorf(opCompute, cloud.ErrNilCloud)
	}
	if maxdim < 0 {
		return nil, homologyErrorf(opCompute, fmt.Errorf("maxdim=%d: %w", maxdim, ErrInvalidMaxDim))
	}
	if err := ctx.Err(); err != nil {
		return nil, homologyErrorf(opCompute, err)
	}

	key := cacheKey{fingerprint: c.Fingerprint(), maxdim: maxdim, threshold: r.threshold}
	if set, ok := r.cache.get(key); ok {
		r.logger.Debug().Int("points", c.Rows()).Int("maxdim", maxdim).Msg("diagram cache hit")
		return set, nil
	}

	start := time.Now()
	set, err := r.compute(ctx, c, maxdim)
	if err != nil {
		return nil, homologyErrorf(opCompute, err)
	}
	r.cache.put(key, set)
	r.logger.Debug().
		Int("points", c.Rows()).
		Int("maxdim", maxdim).
		Dur("elapsed", time.Since(start)).
		Msg("persistence computed")

	return set, nil
}

func (r *Rips) compute(ctx context.Context, c *cloud.PointCloud, maxdim int) (diagram.Set, error) {
	n := c.Rows()
	dist := newDistances(c)
	thr := r.threshold
	if thr == DefaultThreshold {
		thr = dist.enclosingRadius()
	}
	binom, err := newBinomials(n, maxdim+2)
	if err != nil {
		return nil, err
	}
	enum := &enumerator{dist: dist, binom: binom, thr: thr, budget: r.maxSimplices}

	set := make(diagram.Set, maxdim+1)
	edges, err := enum.enumerate(ctx, 1)
	if err != nil {
		return nil, err
	}
	h0, cleared := zeroDegree(n, edges, binom)
	set[0] = h0.Sorted()

	cols := edges
	for k := 1; k <= maxdim; k++ {
		cofaces, err := enum.enumerate(ctx, k+1)
		if err != nil {
			return nil, err
		}
		builder := &coboundaryBuilder{
			dist:  dist,
			binom: binom,
			thr:   thr,
			ranks: newRankIndex(cofaces, binom.c(n, k+2)),
			verts: make([]int, k+1),
		}
		bars, pivots, err := reduceDegree(ctx, k, cols, cofaces, builder, cleared)
		if err != nil {
			return nil, err
		}
		if bars == nil {
			bars = diagram.Diagram{}
		}
		set[k] = bars.Sorted()
		r.logger.Debug().
			Int("degree", k).
			Int("columns", len(cols)).
			Int("cofaces", len(cofaces)).
			Int("bars", len(bars)).
			Float64("threshold", thr).
			Msg("degree reduced")
		cols, cleared = cofaces, pivots
	}

	return set, nil
}
