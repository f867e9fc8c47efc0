// SPDX-License-Identifier: MIT
// Package: shapes
//
// source.go - the Source contract, the name registry and the shared assembly
// helper used by every family.
//
// Design contract (strict):
//   - Every family is an independent struct built with NewX(opts...).
//   - Generate draws all samples of the first angle, then all samples of the
//     second one, in index order; for a fixed seed the cloud is bit-identical.
//   - Generate returns only sentinel errors; it never panics.

package shapes

import (
	"fmt"
	"sort"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

// Registry names (stable; used by experiment configs and the result store).
const (
	NameSwissRoll = "swiss_roll"
	NameCylinder  = "cylinder"
	NameSphere    = "sphere"
	NameTorus     = "torus"
	NameCircle    = "circle"
	NameEight     = "eight"
)

// Source generates point clouds sampled from one shape family.
//
// Implementations hold the RNG supplied through WithSeed/WithRand and advance
// it on each call, so a Source must not be shared between goroutines.
type Source interface {
	// Generate samples n points. Errors: ErrBadSize, ErrNeedRandSource.
	Generate(n int) (*cloud.PointCloud, error)
	// Dim returns the ambient dimension of generated clouds.
	Dim() int
}

var registry = map[string]func(...Option) Source{
	NameSwissRoll: func(opts ...Option) Source { return NewSwissRoll(opts...) },
	NameCylinder:  func(opts ...Option) Source { return NewCylinder(opts...) },
	NameSphere:    func(opts ...Option) Source { return NewSphere(opts...) },
	NameTorus:     func(opts ...Option) Source { return NewTorus(opts...) },
	NameCircle:    func(opts ...Option) Source { return NewCircle(opts...) },
	NameEight:     func(opts ...Option) Source { return NewEight(opts...) },
}

// ByName returns the family registered under name, configured with opts.
// Unknown names yield ErrUnknownShape.
func ByName(name string, opts ...Option) (Source, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownShape)
	}

	return ctor(opts...), nil
}

// Names lists the registered family names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// assemble lays out n points of dimension dim row-major, asking fill for each
// row in index order, and wraps the buffer into a PointCloud.
func assemble(family string, n, dim int, fill func(i int, row []float64)) (*cloud.PointCloud, error) {
	buf := make([]float64, n*dim)
	for i := 0; i < n; i++ {
		fill(i, buf[i*dim:(i+1)*dim])
	}
	pc, err := cloud.New(n, dim, buf)
	if err != nil {
		return nil, shapeErrorf(family, err)
	}

	return pc, nil
}
