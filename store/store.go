// SPDX-License-Identifier: MIT
// Package: store
//
// store.go - durable run records in SQLite (pure-Go modernc.org/sqlite driver).
//
// One row per run. Diagram sets are stored as zstd-compressed binary blobs
// (codec.go); everything else is a plain column so runs can be queried with
// ordinary SQL.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite" // registers the pure-Go "sqlite" driver
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/alessimichele/PersHomEmbProj/diagram"
	"github.com/alessimichele/PersHomEmbProj/reduce"
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    shape         TEXT NOT NULL,
    points        INTEGER NOT NULL,
    extra_dims    INTEGER NOT NULL,
    noise         INTEGER NOT NULL,
    kind          TEXT NOT NULL,
    maxdim        INTEGER NOT NULL,
    seed          INTEGER NOT NULL,
    original      BLOB NOT NULL,
    reconstructed BLOB NOT NULL,
    created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at);
`

// createdLayout is fixed-width so that text order equals time order.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = `id, name, shape, points, extra_dims, noise, kind, maxdim, seed, original, reconstructed, created_at`

// Record is one persisted run: its parameters and both diagram sets.
type Record struct {
	ID            uuid.UUID
	Name          string
	Shape         string
	Points        int
	ExtraDims     int
	Noise         bool
	Kind          reduce.Kind
	MaxDim        int
	Seed          int64
	Original      diagram.Set
	Reconstructed diagram.Set
	CreatedAt     time.Time
}

// Validate checks the ID and both diagram sets against MaxDim.
func (r Record) Validate() error {
	if r.ID == uuid.Nil {
		return fmt.Errorf("%w: nil id", ErrInvalidRecord)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: kind %v", ErrInvalidRecord, r.Kind)
	}
	if err := r.Original.Validate(r.MaxDim); err != nil {
		return fmt.Errorf("%w: original: %w", ErrInvalidRecord, err)
	}
	if err := r.Reconstructed.Validate(r.MaxDim); err != nil {
		return fmt.Errorf("%w: reconstructed: %w", ErrInvalidRecord, err)
	}

	return nil
}

// busyTimeoutMillis is how long a writer waits on a locked database file.
const busyTimeoutMillis = 5000

// Open opens a SQLite database. Pass a file path or ":memory:".
//
// Every connection to ":memory:" would see its own empty database, so
// in-memory DSNs are pinned to a single connection that is never recycled.
// File DSNs get a busy timeout so concurrent writers wait instead of failing.
func Open(dsn string) (*sql.DB, error) {
	if isMemoryDSN(dsn) {
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return db, nil
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return sql.Open("sqlite", fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", dsn, sep, busyTimeoutMillis))
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}

// EnsureSchema creates the runs table and its index if missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, runsSchema)
	return err
}

// SQLiteStore persists run records. It is safe for concurrent use.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore ensures the schema exists and wraps db.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save inserts rec. Errors: ErrInvalidRecord, ErrDuplicateID.
// The duplicate check is the primary-key constraint itself, so concurrent
// saves of one ID yield exactly one success.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(`+selectColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Name, rec.Shape, rec.Points, rec.ExtraDims, rec.Noise,
		rec.Kind.String(), rec.MaxDim, rec.Seed,
		encodeSet(rec.Original), encodeSet(rec.Reconstructed),
		created.UTC().Format(createdLayout),
	)
	if isConstraint(err) {
		return fmt.Errorf("%s: %w", rec.ID, ErrDuplicateID)
	}

	return err
}

// isConstraint reports a SQLITE_CONSTRAINT failure, basic or extended code.
// The only constraint an insert of a validated record can break is the
// primary key.
func isConstraint(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}

	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// Load returns the run with the given ID or ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context, id uuid.UUID) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM runs WHERE id = ?`, id.String())
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return rec, err
}

// List returns all runs ordered by creation time, then ID.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the run with the given ID or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec                 Record
		id, kind, created   string
		original, recovered []byte
	)
	if err := sc.Scan(&id, &rec.Name, &rec.Shape, &rec.Points, &rec.ExtraDims, &rec.Noise,
		&kind, &rec.MaxDim, &rec.Seed, &original, &recovered, &created); err != nil {
		return Record{}, err
	}

	var err error
	if rec.ID, err = uuid.Parse(id); err != nil {
		return Record{}, fmt.Errorf("%w: id %q: %w", ErrCorrupt, id, err)
	}
	if rec.Kind, err = reduce.ParseKind(kind); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rec.Original, err = decodeSet(original); err != nil {
		return Record{}, fmt.Errorf("original: %w", err)
	}
	if rec.Reconstructed, err = decodeSet(recovered); err != nil {
		return Record{}, fmt.Errorf("reconstructed: %w", err)
	}
	if err = rec.Original.Validate(rec.MaxDim); err != nil {
		return Record{}, fmt.Errorf("%w: original: %w", ErrCorrupt, err)
	}
	if err = rec.Reconstructed.Validate(rec.MaxDim); err != nil {
		return Record{}, fmt.Errorf("%w: reconstructed: %w", ErrCorrupt, err)
	}
	if rec.CreatedAt, err = time.Parse(createdLayout, created); err != nil {
		return Record{}, fmt.Errorf("%w: created_at: %w", ErrCorrupt, err)
	}

	return rec, nil
}
