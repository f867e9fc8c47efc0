// SPDX-License-Identifier: MIT
// Package: embed
//
// augment.go - lift a point cloud into a higher-dimensional space by appending
// coordinates.
//
// Contract:
//   - Output is N×(D+ExtraDims); columns 0..D-1 are the input, untouched.
//   - Noise=false: appended coordinates are exactly 0.
//   - Noise=true: each appended coordinate is drawn independently from
//     U[0.1·lo, 0.1·hi], where lo/hi are the GLOBAL min/max over all entries of
//     the input (not per column). Draw order is row-major over the new block.
//   - ExtraDims=0 returns a cloud equal to the input and consumes no randomness.
//
// Complexity: O(N·(D+ExtraDims)) time and space.

package embed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

// NoiseScale multiplies the global min/max of the input to form the noise range.
const NoiseScale = 0.1

// Spec describes how a cloud is augmented.
type Spec struct {
	// ExtraDims is the number of coordinates appended to every point (>= 0).
	ExtraDims int
	// Noise selects uniform noise (true) or zero padding (false).
	Noise bool
}

// Validate reports ErrInvalidSpec when ExtraDims is negative.
func (s Spec) Validate() error {
	if s.ExtraDims < 0 {
		return fmt.Errorf("extra_dims=%d < 0: %w", s.ExtraDims, ErrInvalidSpec)
	}

	return nil
}

// NoiseRange returns the closed interval noise is drawn from for c.
func NoiseRange(c *cloud.PointCloud) (lo, hi float64) {
	lo, hi = c.MinMax()

	return NoiseScale * lo, NoiseScale * hi
}

// Augment returns c with spec.ExtraDims coordinates appended to every point.
//
// Errors:
//   - cloud.ErrNilCloud if c is nil.
//   - ErrInvalidSpec if spec.ExtraDims < 0.
//   - ErrNeedRandSource if spec.Noise is set, ExtraDims > 0 and rng is nil.
//
// rng is advanced N·ExtraDims times when noise is drawn; pass a dedicated
// *rand.Rand per goroutine.
func Augment(c *cloud.PointCloud, spec Spec, rng *rand.Rand) (*cloud.PointCloud, error) {
	if c == nil {
		return nil, embedErrorf(opAugment, cloud.ErrNilCloud)
	}
	if err := spec.Validate(); err != nil {
		return nil, embedErrorf(opAugment, err)
	}
	if spec.ExtraDims == 0 {
		return cloud.New(c.Rows(), c.Cols(), c.Data())
	}
	if spec.Noise && rng == nil {
		return nil, embedErrorf(opAugment, ErrNeedRandSource)
	}

	n, k := c.Rows(), spec.ExtraDims
	block := make([]float64, n*k) // zeros unless noise is requested
	if spec.Noise {
		lo, hi := NoiseRange(c)
		for idx := range block {
			block[idx] = uniformIn(lo, hi, rng.Float64())
		}
	}
	extra, err := cloud.New(n, k, block)
	if err != nil {
		return nil, embedErrorf(opAugment, err)
	}
	out, err := cloud.HStack(c, extra)
	if err != nil {
		return nil, embedErrorf(opAugment, err)
	}

	return out, nil
}

// uniformIn maps u in [0,1) onto [lo, hi]. The clamp keeps rounding of
// lo+(hi-lo)*u from landing past hi.
func uniformIn(lo, hi, u float64) float64 {
	return math.Min(hi, lo+(hi-lo)*u)
}
