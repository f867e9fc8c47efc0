// SPDX-License-Identifier: MIT
// Package pipeline: sentinel error set.
//
// Every failed Run returns an error that matches exactly one stage sentinel
// below via errors.Is. The collaborator's own error stays in the chain, so
// errors.Is(err, reduce.ErrTargetDim) also holds for a reducer shape failure.

package pipeline

import "errors"

var (
	// ErrInvalidSpec indicates rejected run parameters: a nil cloud, a negative
	// maxdim, or an augmentation spec the augmenter refuses.
	ErrInvalidSpec = errors.New("pipeline: invalid spec")

	// ErrReducer wraps any failure of the dimensionality reducer. Never retried.
	ErrReducer = errors.New("pipeline: reducer failed")

	// ErrDimensionMismatch indicates a reconstruction whose shape is not N×D
	// of the original cloud.
	ErrDimensionMismatch = errors.New("pipeline: reconstruction has wrong shape")

	// ErrHomology wraps homology engine failures and diagram sets that break
	// the degree-count or pair invariants.
	ErrHomology = errors.New("pipeline: homology computation failed")

	// ErrNilCollaborator is returned by New for a nil reducer or engine.
	ErrNilCollaborator = errors.New("pipeline: nil collaborator")
)
