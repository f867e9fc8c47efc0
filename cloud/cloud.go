// SPDX-License-Identifier: MIT

// Package cloud - PointCloud storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable N×D matrix of finite float64 coordinates.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep determinism: fixed i→j loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New/FromRows: O(r*c) copy + finiteness scan; At: O(1); Row: O(c); MinMax: O(r*c).

package cloud

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// PointCloud is an immutable row-major N×D matrix of coordinates.
//   - r,c hold dimensions (points, ambient dimension), both >= 1.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// A PointCloud never changes after construction; every constructor copies its
// input and every accessor that exposes storage returns a copy. Values are safe
// to share between goroutines.
type PointCloud struct {
	r, c int       // point count and ambient dimension
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*PointCloud)(nil)

// New creates an rows×cols cloud from a flat row-major slice.
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and len(data)==rows*cols.
//   - Stage 2: copy data while rejecting NaN/±Inf.
//
// Errors:
//   - ErrBadShape, ErrNaNInf (both wrapped with the "New" tag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, data []float64) (*PointCloud, error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, cloudErrorf(opNew, fmt.Errorf("%dx%d with %d values: %w", rows, cols, len(data), ErrBadShape))
	}
	buf := make([]float64, len(data))
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, cloudErrorf(opNew, fmt.Errorf("(%d,%d): %w", k/cols, k%cols, ErrNaNInf))
		}
		buf[k] = v
	}

	return &PointCloud{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a cloud from a slice of equally sized rows (one row per point).
// Errors: ErrBadShape (no rows or empty first row), ErrRaggedRows, ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*PointCloud, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, cloudErrorf(opFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, cloudErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows))
		}
		flat = append(flat, row...)
	}

	return New(len(rows), cols, flat)
}

// Zeros returns an rows×cols cloud of exact zeros.
func Zeros(rows, cols int) (*PointCloud, error) {
	if rows <= 0 || cols <= 0 {
		return nil, cloudErrorf(opNew, ErrBadShape)
	}

	return &PointCloud{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of points N.
func (p *PointCloud) Rows() int { return p.r }

// Cols returns the ambient dimension D.
func (p *PointCloud) Cols() int { return p.c }

// At returns the j-th coordinate of point i.
// Returns ErrOutOfRange if i or j is outside bounds.
func (p *PointCloud) At(i, j int) (float64, error) {
	if i < 0 || i >= p.r || j < 0 || j >= p.c {
		return 0, cloudErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return p.data[i*p.c+j], nil
}

// Row returns a copy of point i.
func (p *PointCloud) Row(i int) ([]float64, error) {
	if i < 0 || i >= p.r {
		return nil, cloudErrorf(opRow, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	out := make([]float64, p.c)
	copy(out, p.data[i*p.c:(i+1)*p.c])

	return out, nil
}

// Column returns a copy of coordinate j across all points.
func (p *PointCloud) Column(j int) ([]float64, error) {
	if j < 0 || j >= p.c {
		return nil, cloudErrorf(opColumn, fmt.Errorf("%d: %w", j, ErrOutOfRange))
	}
	out := make([]float64, p.r)
	for i := 0; i < p.r; i++ {
		out[i] = p.data[i*p.c+j]
	}

	return out, nil
}

// Data returns a copy of the flat row-major buffer.
func (p *PointCloud) Data() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)

	return out
}

// MinMax returns the global minimum and maximum over ALL entries of the cloud
// (not per column).
// Complexity: O(r*c).
func (p *PointCloud) MinMax() (lo, hi float64) {
	lo, hi = p.data[0], p.data[0] // r,c >= 1 is a construction invariant
	for _, v := range p.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Dist2 returns the squared Euclidean distance between points i and j.
// Indices are not bounds-checked; callers iterate over [0, Rows()).
func (p *PointCloud) Dist2(i, j int) float64 {
	a := p.data[i*p.c : (i+1)*p.c]
	b := p.data[j*p.c : (j+1)*p.c]
	var s, d float64
	for k := range a {
		d = a[k] - b[k]
		s += d * d
	}

	return s
}

// Equal reports whether q has the same shape and bit-identical coordinates.
// A nil receiver equals only a nil argument.
func (p *PointCloud) Equal(q *PointCloud) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.r != q.r || p.c != q.c {
		return false
	}
	for k := range p.data {
		if math.Float64bits(p.data[k]) != math.Float64bits(q.data[k]) {
			return false
		}
	}

	return true
}

// Fingerprint returns a SHA-256 digest of the shape and the IEEE-754 bits of
// every coordinate. Two clouds share a fingerprint iff Equal reports true
// (modulo hash collisions).
func (p *PointCloud) Fingerprint() [sha256.Size]byte {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.r))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(p.c))
	h.Write(buf[:])
	for _, v := range p.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	var out [sha256.Size]byte
	copy(out[:], h.Sum(nil))

	return out
}

// HStack concatenates the columns of left and right: the result is
// N×(left.Cols()+right.Cols()) with left's columns first, unchanged.
//
// Errors:
//   - ErrNilCloud if either operand is nil.
//   - ErrDimensionMismatch if row counts differ.
//
// Complexity: O(N*(c1+c2)).
func HStack(left, right *PointCloud) (*PointCloud, error) {
	if left == nil || right == nil {
		return nil, cloudErrorf(opHStack, ErrNilCloud)
	}
	if left.r != right.r {
		return nil, cloudErrorf(opHStack, fmt.Errorf("%d vs %d rows: %w", left.r, right.r, ErrDimensionMismatch))
	}
	cols := left.c + right.c
	buf := make([]float64, left.r*cols)
	for i := 0; i < left.r; i++ {
		copy(buf[i*cols:i*cols+left.c], left.data[i*left.c:(i+1)*left.c])
		copy(buf[i*cols+left.c:(i+1)*cols], right.data[i*right.c:(i+1)*right.c])
	}

	return &PointCloud{r: left.r, c: cols, data: buf}, nil
}

// String implements fmt.Stringer for debugging (one bracketed row per point).
func (p *PointCloud) String() string {
	var sb strings.Builder
	for i := 0; i < p.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < p.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", p.data[i*p.c+j]))
			if j < p.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
