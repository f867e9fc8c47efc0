// SPDX-License-Identifier: MIT
// Package reduce: sentinel error set.
//
// Every error returned by a Reducer wraps exactly one of these sentinels (plus,
// for input problems, the cloud package sentinel). Callers branch with errors.Is.

package reduce

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetDim indicates a target dimension outside [1, M] (or above N for
	// the kernel variant). Reducers never truncate silently.
	ErrTargetDim = errors.New("reduce: target dimension out of range")

	// ErrNoConvergence indicates that the symmetric eigensolver failed or
	// produced non-finite output.
	ErrNoConvergence = errors.New("reduce: eigendecomposition did not converge")

	// ErrUnknownKind indicates a Kind outside {Linear, Kernel}.
	ErrUnknownKind = errors.New("reduce: unknown reducer kind")
)

// Operation tags.
const (
	opReduce    = "Reduce"
	opLinear    = "Linear"
	opKernel    = "Kernel"
	opParseKind = "ParseKind"
)

func reduceErrorf(tag string, err error) error {
	return fmt.Errorf("reduce.%s: %w", tag, err)
}
