// SPDX-License-Identifier: MIT
// Package: shapes
//
// impl_torus.go - the ring torus.
//
// Model:
//   - φ ~ U[0, 2π] (around the tube), ψ ~ U[0, 2π] (around the ring)
//   - point = ((R + r·cos φ)·cos ψ, (R + r·cos φ)·sin ψ, r·sin φ)
//
// R is the ring (major) radius, r the tube (minor) radius.
// Nothing enforces R > r; a horn or spindle torus is still a valid sample.

package shapes

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

const (
	methodTorus = "Torus"
	torusDim    = 3
)

// Torus samples a torus of revolution around the z-axis.
type Torus struct {
	cfg config
}

// NewTorus builds a Torus source. Honors WithTubeRadius, WithRingRadius, WithSeed, WithRand.
func NewTorus(opts ...Option) *Torus {
	return &Torus{cfg: newConfig(opts...)}
}

// Dim returns 3.
func (t *Torus) Dim() int { return torusDim }

// Generate samples n points on the torus.
func (t *Torus) Generate(n int) (*cloud.PointCloud, error) {
	if err := t.cfg.checkGenerate(methodTorus, n); err != nil {
		return nil, err
	}
	phi := t.cfg.uniform(n, 0, 2*math.Pi)
	psi := t.cfg.uniform(n, 0, 2*math.Pi)
	r, R := t.cfg.minorRadius, t.cfg.majorRadius

	return assemble(methodTorus, n, torusDim, func(i int, row []float64) {
		ring := R + r*math.Cos(phi[i])
		row[0] = ring * math.Cos(psi[i])
		row[1] = ring * math.Sin(psi[i])
		row[2] = r * math.Sin(phi[i])
	})
}
