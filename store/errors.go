// SPDX-License-Identifier: MIT
// Package store: sentinel errors.

package store

import "errors"

var (
	// ErrNotFound indicates that no run has the requested ID.
	ErrNotFound = errors.New("store: run not found")

	// ErrDuplicateID indicates that a run with the same ID is already stored.
	ErrDuplicateID = errors.New("store: duplicate run id")

	// ErrInvalidRecord indicates a record with a nil ID or invalid diagrams.
	ErrInvalidRecord = errors.New("store: invalid record")

	// ErrCorrupt indicates a diagram blob that cannot be decoded.
	ErrCorrupt = errors.New("store: corrupt diagram blob")

	// ErrNilDB indicates NewSQLiteStore was given a nil *sql.DB.
	ErrNilDB = errors.New("store: db is nil")
)
