// SPDX-License-Identifier: MIT
// Package: shapes
//
// impl_swiss_roll.go - the swiss roll surface.
//
// Model:
//   - φ ~ U[1.5π, 4.5π], ψ ~ U[0, height]
//   - point = (φ·cos φ, φ·sin φ, ψ)
//
// Complexity: O(n) time, O(n) extra space for the two angle vectors.

package shapes

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

const (
	methodSwissRoll = "SwissRoll"
	swissRollDim    = 3
	swissRollPhiLo  = 1.5 * math.Pi
	swissRollPhiHi  = 4.5 * math.Pi
)

// SwissRoll samples a rolled-up 2D sheet embedded in R³.
type SwissRoll struct {
	cfg config
}

// NewSwissRoll builds a SwissRoll source. Honors WithHeight, WithSeed, WithRand.
func NewSwissRoll(opts ...Option) *SwissRoll {
	return &SwissRoll{cfg: newConfig(opts...)}
}

// Dim returns 3.
func (s *SwissRoll) Dim() int { return swissRollDim }

// Generate samples n points on the swiss roll.
func (s *SwissRoll) Generate(n int) (*cloud.PointCloud, error) {
	if err := s.cfg.checkGenerate(methodSwissRoll, n); err != nil {
		return nil, err
	}
	phi := s.cfg.uniform(n, swissRollPhiLo, swissRollPhiHi)
	psi := s.cfg.uniform(n, 0, s.cfg.height)

	return assemble(methodSwissRoll, n, swissRollDim, func(i int, row []float64) {
		row[0] = phi[i] * math.Cos(phi[i])
		row[1] = phi[i] * math.Sin(phi[i])
		row[2] = psi[i]
	})
}
