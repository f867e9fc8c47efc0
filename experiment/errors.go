// SPDX-License-Identifier: MIT
// Package experiment: sentinel errors.

package experiment

import "errors"

var (
	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrInvalidExperiment indicates an Experiment that fails Validate.
	ErrInvalidExperiment = errors.New("experiment: invalid experiment")

	// ErrSink indicates that a result could not be persisted.
	ErrSink = errors.New("experiment: sink failed")
)
