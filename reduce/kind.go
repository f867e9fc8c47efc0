// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"strings"
)

// Kind selects the reduction method. The zero value is invalid so that an
// unset field is caught rather than silently treated as Linear.
type Kind int

const (
	// Linear is principal component analysis: components ordered by explained variance.
	Linear Kind = iota + 1
	// Kernel is RBF kernel PCA.
	Kernel
)

const (
	kindLinearName = "linear"
	kindKernelName = "kernel"
)

// String returns "linear", "kernel" or "Kind(n)" for invalid values.
func (k Kind) String() string {
	switch k {
	case Linear:
		return kindLinearName
	case Kernel:
		return kindKernelName
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is Linear or Kernel.
func (k Kind) Valid() bool { return k == Linear || k == Kernel }

// ParseKind maps a case-insensitive name ("linear", "pca", "kernel", "kpca")
// to a Kind. Unknown names yield ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case kindLinearName, "pca":
		return Linear, nil
	case kindKernelName, "kpca":
		return Kernel, nil
	default:
		return 0, reduceErrorf(opParseKind, fmt.Errorf("%q: %w", s, ErrUnknownKind))
	}
}
