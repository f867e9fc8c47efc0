// SPDX-License-Identifier: MIT
// Package: shapes
//
// errors.go - sentinel errors for the shapes package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach the family name via shapeErrorf and %w.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package shapes

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive point count passed to Generate.
var ErrBadSize = errors.New("shapes: point count must be >= 1")

// ErrNeedRandSource indicates that Generate was called without an RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("shapes: rng is required")

// ErrUnknownShape indicates that ByName received a name outside the registry.
var ErrUnknownShape = errors.New("shapes: unknown shape")

// shapeErrorf prefixes err with the family name, preserving it for errors.Is.
func shapeErrorf(family string, err error) error {
	return fmt.Errorf("%s: %w", family, err)
}
