package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Invalid path should fail to create the data directory.
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "stopline.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same directory must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

// ==================== Stop Store Tests ====================

func TestStopStore_GetMiss(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.StopStore().Get(context.Background(), 1234)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStopStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	stops := store.StopStore()
	ctx := context.Background()

	stop := domain.NewStop(1234, "Pillbox North").WithLocation(42.2406, -8.7207)
	require.NoError(t, stops.Save(ctx, stop))

	got, err := stops.Get(ctx, 1234)
	require.NoError(t, err)
	assert.Equal(t, 1234, got.ID)
	assert.Equal(t, "Pillbox North", got.Name)
	require.True(t, got.HasLocation())
	assert.InDelta(t, 42.2406, *got.Lat, 1e-9)
	assert.InDelta(t, -8.7207, *got.Lon, 1e-9)
	assert.False(t, got.RegisteredAt.IsZero())
	assert.Equal(t, got.RegisteredAt, got.UpdatedAt)
}

func TestStopStore_SaveWithoutLocation(t *testing.T) {
	store := setupTestStore(t)
	stops := store.StopStore()
	ctx := context.Background()

	require.NoError(t, stops.Save(ctx, domain.NewStop(42, "Unlocated")))

	got, err := stops.Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got.Lat)
	assert.Nil(t, got.Lon)
}

func TestStopStore_UpdatePreservesRegisteredAt(t *testing.T) {
	store := setupTestStore(t)
	stops := store.StopStore()
	ctx := context.Background()

	t0 := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return t0 }
	require.NoError(t, stops.Save(ctx, domain.NewStop(1, "Original")))

	t1 := t0.Add(2 * time.Hour)
	store.now = func() time.Time { return t1 }
	require.NoError(t, stops.Save(ctx, domain.NewStop(1, "Renamed").WithLocation(1.0, 2.0)))

	got, err := stops.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.RegisteredAt.Equal(t0))
	assert.True(t, got.UpdatedAt.Equal(t1))
}

func TestStopStore_SaveReflectsTimestamps(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	stop := domain.NewStop(7, "Echoed")
	require.NoError(t, store.StopStore().Save(ctx, stop))

	assert.False(t, stop.RegisteredAt.IsZero())
	assert.Equal(t, stop.RegisteredAt, stop.UpdatedAt)
}

func TestStopStore_EmptyNameIsPersisted(t *testing.T) {
	// Empty string is a valid "unknown name" placeholder.
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.StopStore().Save(ctx, domain.NewStop(5, "")))

	got, err := store.StopStore().Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
}

func TestStopStore_ExistsAndDelete(t *testing.T) {
	store := setupTestStore(t)
	stops := store.StopStore()
	ctx := context.Background()

	ok, err := stops.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, stops.Save(ctx, domain.NewStop(1, "a")))

	ok, err = stops.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := stops.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = stops.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStopStore_ListIDs(t *testing.T) {
	store := setupTestStore(t)
	stops := store.StopStore()
	ctx := context.Background()

	ids, err := stops.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []int{300, 100, 200} {
		require.NoError(t, stops.Save(ctx, domain.NewStop(id, "stop")))
	}

	ids, err = stops.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200, 300}, ids)
}

// ==================== Media Store Tests ====================

func TestMediaStore_MapImageRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	media := store.MediaStore()
	ctx := context.Background()
	variant := domain.MapVariant{Vertical: true, Terrain: true}

	_, err := media.GetMapImage(ctx, 1234, variant)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ref := &domain.MapImageRef{
		StopID:    1234,
		Variant:   variant,
		FileID:    "file-abc",
		CreatedAt: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, media.PutMapImage(ctx, ref))

	got, err := media.GetMapImage(ctx, 1234, variant)
	require.NoError(t, err)
	assert.Equal(t, "file-abc", got.FileID)
	assert.Equal(t, variant, got.Variant)

	// A different variant of the same stop is a separate record.
	_, err = media.GetMapImage(ctx, 1234, domain.MapVariant{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMediaStore_MapImageFirstWriteWins(t *testing.T) {
	store := setupTestStore(t)
	media := store.MediaStore()
	ctx := context.Background()
	variant := domain.MapVariant{}

	require.NoError(t, media.PutMapImage(ctx, &domain.MapImageRef{StopID: 1, Variant: variant, FileID: "first"}))
	require.NoError(t, media.PutMapImage(ctx, &domain.MapImageRef{StopID: 1, Variant: variant, FileID: "second"}))

	got, err := media.GetMapImage(ctx, 1, variant)
	require.NoError(t, err)
	assert.Equal(t, "first", got.FileID)
}

func TestMediaStore_StreetViewFirstWriteWins(t *testing.T) {
	store := setupTestStore(t)
	media := store.MediaStore()
	ctx := context.Background()

	require.NoError(t, media.PutStreetView(ctx, &domain.StreetViewRef{StopID: 9, FileID: "sv-1"}))
	require.NoError(t, media.PutStreetView(ctx, &domain.StreetViewRef{StopID: 9, FileID: "sv-2"}))

	got, err := media.GetStreetView(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "sv-1", got.FileID)
	assert.False(t, got.CreatedAt.IsZero())
}
