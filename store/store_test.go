// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessimichele/PersHomEmbProj/diagram"
	"github.com/alessimichele/PersHomEmbProj/reduce"
	"github.com/alessimichele/PersHomEmbProj/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	st, err := store.NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func sampleRecord(created time.Time) store.Record {
	inf := math.Inf(1)
	return store.Record{
		ID:        uuid.New(),
		Name:      "circle-linear-20-noise",
		Shape:     "circle",
		Points:    40,
		ExtraDims: 20,
		Noise:     true,
		Kind:      reduce.Linear,
		MaxDim:    1,
		Seed:      7,
		Original: diagram.Set{
			{{Birth: 0, Death: 0.25}, {Birth: 0, Death: inf}},
			{{Birth: 0.3, Death: 1.7}},
		},
		Reconstructed: diagram.Set{
			{{Birth: 0, Death: 0.5}, {Birth: 0, Death: inf}},
			{},
		},
		CreatedAt: created,
	}
}

func TestNewSQLiteStore_NilDB(t *testing.T) {
	t.Parallel()

	_, err := store.NewSQLiteStore(context.Background(), nil)
	assert.ErrorIs(t, err, store.ErrNilDB)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := openStore(t)
	rec := sampleRecord(time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC))
	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.Shape, got.Shape)
	assert.Equal(t, rec.Points, got.Points)
	assert.Equal(t, rec.ExtraDims, got.ExtraDims)
	assert.True(t, got.Noise)
	assert.Equal(t, reduce.Linear, got.Kind)
	assert.Equal(t, rec.MaxDim, got.MaxDim)
	assert.Equal(t, rec.Seed, got.Seed)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	// Bit-exact, including +Inf deaths and empty degrees.
	assert.True(t, diagram.ApproxEqual(rec.Original, got.Original, 0))
	assert.True(t, diagram.ApproxEqual(rec.Reconstructed, got.Reconstructed, 0))
	require.Len(t, got.Reconstructed, 2)
	assert.Empty(t, got.Reconstructed[1])
	assert.True(t, math.IsInf(got.Reconstructed[0][1].Death, 1))
}

func TestSave_Rejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := openStore(t)

	noID := sampleRecord(time.Now())
	noID.ID = uuid.Nil
	assert.ErrorIs(t, st.Save(ctx, noID), store.ErrInvalidRecord)

	tooDeep := sampleRecord(time.Now())
	tooDeep.MaxDim = 0
	assert.ErrorIs(t, st.Save(ctx, tooDeep), store.ErrInvalidRecord)

	badKind := sampleRecord(time.Now())
	badKind.Kind = reduce.Kind(0)
	assert.ErrorIs(t, st.Save(ctx, badKind), store.ErrInvalidRecord)

	rec := sampleRecord(time.Now())
	require.NoError(t, st.Save(ctx, rec))
	assert.ErrorIs(t, st.Save(ctx, rec), store.ErrDuplicateID)
}

func TestLoadDelete_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := openStore(t)

	_, err := st.Load(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, st.Delete(ctx, uuid.New()), store.ErrNotFound)

	rec := sampleRecord(time.Now())
	require.NoError(t, st.Save(ctx, rec))
	require.NoError(t, st.Delete(ctx, rec.ID))
	_, err = st.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_OrderedByCreation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := openStore(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := sampleRecord(base.Add(2 * time.Hour))
	early := sampleRecord(base)
	mid := sampleRecord(base.Add(time.Hour))
	mid.Kind = reduce.Kernel
	for _, r := range []store.Record{late, early, mid} {
		require.NoError(t, st.Save(ctx, r))
	}

	got, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, mid.ID, got[1].ID)
	assert.Equal(t, reduce.Kernel, got[1].Kind)
	assert.Equal(t, late.ID, got[2].ID)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	got, err := openStore(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_CorruptBlob(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")
	db, err := store.Open(path)
	require.NoError(t, err)
	st, err := store.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	defer st.Close()

	rec := sampleRecord(time.Now())
	require.NoError(t, st.Save(ctx, rec))

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.ExecContext(ctx, `UPDATE runs SET original = ? WHERE id = ?`, []byte("not zstd"), rec.ID.String())
	require.NoError(t, err)

	_, err = st.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, store.ErrCorrupt)
}

func TestOpen_MemorySharedAcrossCallers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	st, err := store.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	defer st.Close()

	// A connection handed to another caller sees the schema.
	conn, err := db.Conn(ctx)
	require.NoError(t, err)
	var count int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT count(*) FROM runs`).Scan(&count))
	assert.Zero(t, count)
	require.NoError(t, conn.Close())

	// Concurrent writers all land in the same database.
	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.Save(ctx, sampleRecord(time.Now()))
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	all, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, writers)
}

func TestSave_ConcurrentSameID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := openStore(t)
	rec := sampleRecord(time.Now())

	const writers = 6
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.Save(ctx, rec)
		}(i)
	}
	wg.Wait()

	saved := 0
	for _, err := range errs {
		if err == nil {
			saved++
			continue
		}
		assert.ErrorIs(t, err, store.ErrDuplicateID)
	}
	assert.Equal(t, 1, saved)
}

func TestLoad_DegreeCountMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")
	db, err := store.Open(path)
	require.NoError(t, err)
	st, err := store.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	defer st.Close()

	rec := sampleRecord(time.Now())
	require.NoError(t, st.Save(ctx, rec))

	// The blobs decode fine but hold MaxDim+1 = 2 degrees, not 4.
	_, err = db.ExecContext(ctx, `UPDATE runs SET maxdim = 3 WHERE id = ?`, rec.ID.String())
	require.NoError(t, err)

	_, err = st.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.ErrorIs(t, err, diagram.ErrDegreeCount)
}
