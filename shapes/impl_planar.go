// SPDX-License-Identifier: MIT
// Package: shapes
//
// impl_planar.go - the two planar curves: Circle and Eight (lemniscate of Gerono).
//
// Model (t ~ U[0, 2π] for both):
//   - Circle: (radius·sin t, radius·cos t)
//   - Eight:  (sin t, sin t·cos t)
//
// Circle carries exactly one H1 class; Eight carries two that share the
// crossing point at the origin.

package shapes

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

const (
	methodCircle = "Circle"
	methodEight  = "Eight"
	planarDim    = 2
)

// Circle samples a circle of the configured radius centered at the origin.
type Circle struct {
	cfg config
}

// NewCircle builds a Circle source. Honors WithRadius, WithSeed, WithRand.
func NewCircle(opts ...Option) *Circle {
	return &Circle{cfg: newConfig(opts...)}
}

// Dim returns 2.
func (c *Circle) Dim() int { return planarDim }

// Generate samples n points on the circle.
func (c *Circle) Generate(n int) (*cloud.PointCloud, error) {
	if err := c.cfg.checkGenerate(methodCircle, n); err != nil {
		return nil, err
	}
	t := c.cfg.uniform(n, 0, 2*math.Pi)
	r := c.cfg.radius

	return assemble(methodCircle, n, planarDim, func(i int, row []float64) {
		row[0] = r * math.Sin(t[i])
		row[1] = r * math.Cos(t[i])
	})
}

// Eight samples a figure-eight curve. It has no size parameter.
type Eight struct {
	cfg config
}

// NewEight builds an Eight source. Honors WithSeed, WithRand.
func NewEight(opts ...Option) *Eight {
	return &Eight{cfg: newConfig(opts...)}
}

// Dim returns 2.
func (e *Eight) Dim() int { return planarDim }

// Generate samples n points on the figure eight.
func (e *Eight) Generate(n int) (*cloud.PointCloud, error) {
	if err := e.cfg.checkGenerate(methodEight, n); err != nil {
		return nil, err
	}
	t := e.cfg.uniform(n, 0, 2*math.Pi)

	return assemble(methodEight, n, planarDim, func(i int, row []float64) {
		s := math.Sin(t[i])
		row[0] = s
		row[1] = s * math.Cos(t[i])
	})
}
