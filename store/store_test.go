// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jetobsmc/batch"
	"github.com/katalvlaran/jetobsmc/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleTable() *batch.Table {
	return &batch.Table{
		Names: []string{"pt", "mass", "tau21"},
		Rows: [][]float64{
			{100, 12.5, 0.4},
			{80, 3, math.NaN()},
			{0, 0, 0},
		},
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	ctx := context.Background()

	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	id, err := s.CreateRun(ctx, "first", "a.json")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Migrations are already applied; the run survives.
	s, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
}

func TestSaveTable_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.CreateRun(ctx, "nominal", "sim.yaml")
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, id, sampleTable()))

	names, err := s.Columns(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"pt", "mass", "tau21"}, names)

	pt, err := s.Column(ctx, id, "pt")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 80, 0}, pt)

	tau, err := s.Column(ctx, id, "tau21")
	require.NoError(t, err)
	require.Len(t, tau, 3)
	assert.Equal(t, 0.4, tau[0])
	assert.True(t, math.IsNaN(tau[1]))

	tbl, err := s.Table(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, names, tbl.Names)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []float64{100, 12.5, 0.4}, tbl.Rows[0])

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "nominal", runs[0].Label)
	assert.Equal(t, "sim.yaml", runs[0].Source)
	assert.Equal(t, 3, runs[0].Jets)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestSaveTable_Errors(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	err := s.SaveTable(ctx, uuid.New(), sampleTable())
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	id, err := s.CreateRun(ctx, "once", "x")
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, id, sampleTable()))
	assert.ErrorIs(t, s.SaveTable(ctx, id, sampleTable()), store.ErrTableSaved)

	_, err = s.Column(ctx, id, "e3")
	assert.ErrorIs(t, err, store.ErrUnknownColumn)
	_, err = s.Column(ctx, uuid.New(), "pt")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
	_, err = s.Table(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestDeleteRun(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	keep, err := s.CreateRun(ctx, "keep", "a")
	require.NoError(t, err)
	drop, err := s.CreateRun(ctx, "drop", "b")
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, drop, sampleTable()))

	require.NoError(t, s.DeleteRun(ctx, drop))
	assert.ErrorIs(t, s.DeleteRun(ctx, drop), store.ErrRunNotFound)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, keep, runs[0].ID)
}

func TestEmptyTable(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.CreateRun(ctx, "empty", "none")
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, id, &batch.Table{Names: []string{"pt"}}))

	col, err := s.Column(ctx, id, "pt")
	require.NoError(t, err)
	assert.Empty(t, col)
}
