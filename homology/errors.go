// SPDX-License-Identifier: MIT
// Package homology: sentinel error set.
//
// Error policy:
//   - Sentinels only; wrapped once per public operation with homologyErrorf.
//   - Context cancellation surfaces as ctx.Err() wrapped with the same tag,
//     so errors.Is(err, context.Canceled) holds.

package homology

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaxDim indicates a negative maximum homology degree.
	ErrInvalidMaxDim = errors.New("homology: maxdim must be >= 0")

	// ErrTooLarge indicates that the filtration would exceed the configured
	// simplex budget (WithMaxSimplices) or the 64-bit simplex index space.
	ErrTooLarge = errors.New("homology: filtration too large")
)

// Operation tags.
const (
	opCompute   = "Compute"
	opEnumerate = "enumerate"
	opReduce    = "reduce"
)

func homologyErrorf(tag string, err error) error {
	return fmt.Errorf("homology.%s: %w", tag, err)
}
