package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

func TestStopStore_GetMiss(t *testing.T) {
	store := NewStopStore()

	_, err := store.Get(context.Background(), 1234)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStopStore_SaveSetsTimestampsOnInsert(t *testing.T) {
	store := NewStopStore()
	stop := domain.NewStop(1234, "Pillbox North")

	err := store.Save(context.Background(), stop)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), 1234)
	require.NoError(t, err)
	assert.False(t, got.RegisteredAt.IsZero())
	assert.Equal(t, got.RegisteredAt, got.UpdatedAt)
}

func TestStopStore_SavePreservesRegisteredAtOnUpdate(t *testing.T) {
	store := NewStopStore()
	ctx := context.Background()

	t0 := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return t0 }
	require.NoError(t, store.Save(ctx, domain.NewStop(1, "Original")))

	t1 := t0.Add(time.Hour)
	store.now = func() time.Time { return t1 }
	require.NoError(t, store.Save(ctx, domain.NewStop(1, "Renamed")))

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, t0, got.RegisteredAt)
	assert.Equal(t, t1, got.UpdatedAt)
}

func TestStopStore_SaveNil(t *testing.T) {
	store := NewStopStore()

	err := store.Save(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidStop)
}

func TestStopStore_Exists(t *testing.T) {
	store := NewStopStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewStop(1, "a")))

	ok, err := store.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStopStore_Delete(t *testing.T) {
	store := NewStopStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewStop(1, "a")))

	deleted, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStopStore_ListIDs(t *testing.T) {
	store := NewStopStore()
	ctx := context.Background()
	for _, id := range []int{30, 10, 20} {
		require.NoError(t, store.Save(ctx, domain.NewStop(id, "stop")))
	}

	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, ids)
}
