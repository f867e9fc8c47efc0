// SPDX-License-Identifier: MIT
// Package: shapes
//
// impl_cylinder.go - the lateral surface of a cylinder.
//
// Model:
//   - φ ~ U[0, 2π], ψ ~ U[0, height]
//   - point = (radius·cos φ, radius·sin φ, ψ)

package shapes

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

const (
	methodCylinder = "Cylinder"
	cylinderDim    = 3
)

// Cylinder samples the side of an open cylinder whose axis is the z-axis.
type Cylinder struct {
	cfg config
}

// NewCylinder builds a Cylinder source. Honors WithRadius, WithHeight, WithSeed, WithRand.
func NewCylinder(opts ...Option) *Cylinder {
	return &Cylinder{cfg: newConfig(opts...)}
}

// Dim returns 3.
func (c *Cylinder) Dim() int { return cylinderDim }

// Generate samples n points on the cylinder.
func (c *Cylinder) Generate(n int) (*cloud.PointCloud, error) {
	if err := c.cfg.checkGenerate(methodCylinder, n); err != nil {
		return nil, err
	}
	phi := c.cfg.uniform(n, 0, 2*math.Pi)
	psi := c.cfg.uniform(n, 0, c.cfg.height)
	r := c.cfg.radius

	return assemble(methodCylinder, n, cylinderDim, func(i int, row []float64) {
		row[0] = r * math.Cos(phi[i])
		row[1] = r * math.Sin(phi[i])
		row[2] = psi[i]
	})
}
