// SPDX-License-Identifier: MIT
// Package reduce: functional options for Spectral.
//
// Option constructors validate eagerly and panic on nonsensical values;
// Reduce itself never panics.

package reduce

import "math"

// DefaultGamma selects the RBF width automatically: γ = 1/M, where M is the
// number of input columns.
const DefaultGamma = 0.0

// Option configures a Spectral reducer.
type Option func(*Spectral)

// WithGamma fixes the RBF kernel coefficient in exp(−γ‖x−y‖²).
// Panics unless gamma is finite and > 0. Ignored by the Linear kind.
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma <= 0 {
		panic("reduce: WithGamma: gamma must be finite and > 0")
	}
	return func(s *Spectral) {
		s.gamma = gamma
	}
}
