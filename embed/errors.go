// SPDX-License-Identifier: MIT
// Package embed: sentinel errors.

package embed

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec indicates an AugmentationSpec that cannot be applied
	// (negative ExtraDims).
	ErrInvalidSpec = errors.New("embed: invalid augmentation spec")

	// ErrNeedRandSource indicates Noise=true with a nil *rand.Rand.
	ErrNeedRandSource = errors.New("embed: rng is required when noise is enabled")
)

const opAugment = "Augment"

func embedErrorf(tag string, err error) error {
	return fmt.Errorf("embed.%s: %w", tag, err)
}
