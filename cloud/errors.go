// SPDX-License-Identifier: MIT
// Package cloud: sentinel error set.
// Every constructor and accessor in this package returns one of these
// sentinels, optionally wrapped with an operation tag via cloudErrorf.
// Callers and tests match them with errors.Is.

package cloud

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0, cols<=0)
	// or when the flat data length does not equal rows*cols.
	ErrBadShape = errors.New("cloud: invalid shape")

	// ErrRaggedRows indicates that FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("cloud: rows have differing lengths")

	// ErrNaNInf signals a NaN or ±Inf coordinate. Point clouds hold finite values only.
	ErrNaNInf = errors.New("cloud: NaN or Inf coordinate")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("cloud: index out of range")

	// ErrNilCloud indicates that a nil *PointCloud was passed where a cloud is required.
	ErrNilCloud = errors.New("cloud: nil point cloud")

	// ErrDimensionMismatch indicates incompatible shapes between two clouds,
	// e.g. HStack of clouds with different row counts.
	ErrDimensionMismatch = errors.New("cloud: dimension mismatch")
)

// Operation tags for uniform error wrapping.
const (
	opNew      = "New"
	opFromRows = "FromRows"
	opAt       = "At"
	opRow      = "Row"
	opColumn   = "Column"
	opHStack   = "HStack"
)

// cloudErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func cloudErrorf(tag string, err error) error {
	return fmt.Errorf("cloud.%s: %w", tag, err)
}
