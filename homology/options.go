// SPDX-License-Identifier: MIT
// Package homology: functional options and documented defaults.
//
// Option constructors validate eagerly and panic on programmer error.
// Compute never panics.

package homology

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultThreshold selects the enclosing radius of the input
	// (min over points of the max distance to any other point). Above it the
	// Rips complex is a cone, so no finite bar is lost.
	DefaultThreshold = 0.0

	// DefaultCacheSize is the number of diagram sets kept by the LRU cache.
	DefaultCacheSize = 64

	// DefaultMaxSimplices caps the total number of simplices enumerated
	// across all dimensions of one computation.
	DefaultMaxSimplices = 1 << 24
)

// Option configures a Rips engine.
type Option func(*Rips)

// WithThreshold truncates the filtration at diameter t. Classes still alive at
// t are reported as essential (Death = +Inf). +Inf builds the full complex.
// Panics unless t > 0 and not NaN.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t <= 0 {
		panic("homology: WithThreshold: threshold must be > 0")
	}
	return func(r *Rips) {
		r.threshold = t
	}
}

// WithCacheSize sets the LRU capacity in diagram sets; 0 disables caching.
// Panics on negative sizes.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("homology: WithCacheSize: size must be >= 0")
	}
	return func(r *Rips) {
		r.cacheSize = n
	}
}

// WithMaxSimplices sets the simplex budget. Panics unless 1 <= n <= MaxInt32
// (filtration ranks are stored as int32).
func WithMaxSimplices(n int) Option {
	if n < 1 || n > math.MaxInt32 {
		panic("homology: WithMaxSimplices: limit must be in [1, MaxInt32]")
	}
	return func(r *Rips) {
		r.maxSimplices = n
	}
}

// WithLogger attaches a logger; the engine logs at debug level only.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Rips) {
		r.logger = l
	}
}
