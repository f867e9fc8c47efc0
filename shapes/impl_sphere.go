// SPDX-License-Identifier: MIT
// Package: shapes
//
// impl_sphere.go - the 2-sphere.
//
// Model:
//   - φ ~ U[0, 2π] (azimuth), ψ ~ U[0, π] (polar angle)
//   - point = (r·cos φ·sin ψ, r·sin φ·sin ψ, r·cos ψ)
//
// Sampling is uniform in the angles, not in area: points cluster at the poles.

package shapes

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

const (
	methodSphere = "Sphere"
	sphereDim    = 3
)

// Sphere samples a sphere of the configured radius centered at the origin.
type Sphere struct {
	cfg config
}

// NewSphere builds a Sphere source. Honors WithRadius, WithSeed, WithRand.
func NewSphere(opts ...Option) *Sphere {
	return &Sphere{cfg: newConfig(opts...)}
}

// Dim returns 3.
func (s *Sphere) Dim() int { return sphereDim }

// Generate samples n points on the sphere.
func (s *Sphere) Generate(n int) (*cloud.PointCloud, error) {
	if err := s.cfg.checkGenerate(methodSphere, n); err != nil {
		return nil, err
	}
	phi := s.cfg.uniform(n, 0, 2*math.Pi)
	psi := s.cfg.uniform(n, 0, math.Pi)
	r := s.cfg.radius

	return assemble(methodSphere, n, sphereDim, func(i int, row []float64) {
		sinPsi := math.Sin(psi[i])
		row[0] = r * math.Cos(phi[i]) * sinPsi
		row[1] = r * math.Sin(phi[i]) * sinPsi
		row[2] = r * math.Cos(psi[i])
	})
}
