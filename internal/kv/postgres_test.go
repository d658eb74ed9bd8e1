package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelplanner/internal/kv"
	"github.com/pkordes/travelplanner/testutil"
)

// newTestStore opens a transaction against the test database and returns a
// Store backed by that transaction. The transaction is rolled back when the
// test finishes, giving free per-test isolation.
func newTestStore(t *testing.T) kv.Store {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return kv.NewPostgresStore(tx)
}

func TestPostgresStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "profile:x:travelplanner:trips")

	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestPostgresStore_SetThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", `[{"id":"a"}]`))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, got)
}

func TestPostgresStore_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "one"))
	require.NoError(t, s.Set(ctx, "k", "two"))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestPostgresStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", "v"))

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}
