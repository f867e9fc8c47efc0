// SPDX-License-Identifier: MIT

// Package store persists experiment runs in SQLite through the pure-Go
// modernc.org/sqlite driver. Each Record keeps the run parameters as columns
// and both persistence diagram sets as zstd-compressed binary blobs.
//
// Example:
//
//	db, err := store.Open("runs.db")
//	st, err := store.NewSQLiteStore(ctx, db)
//	err = st.Save(ctx, rec)
package store
