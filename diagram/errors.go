// SPDX-License-Identifier: MIT
// Package diagram: sentinel errors.

package diagram

import "errors"

var (
	// ErrInvalidPair indicates a pair with NaN, negative birth, or death < birth.
	ErrInvalidPair = errors.New("diagram: invalid birth/death pair")

	// ErrDegreeCount indicates a Set whose length is not maxdim+1.
	ErrDegreeCount = errors.New("diagram: wrong number of degrees")

	// ErrIncomparable indicates two sets that do not cover the same degrees.
	ErrIncomparable = errors.New("diagram: sets are not comparable")
)
