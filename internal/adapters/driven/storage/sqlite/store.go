package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/stopline-labs/stopline-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the stop
// and media store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stopline/data/stopline.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stopline", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "stopline.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		now:  time.Now,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StopStore returns a StopStore interface backed by this store.
func (s *Store) StopStore() driven.StopStore {
	return &stopStore{store: s}
}

// MediaStore returns a MediaStore interface backed by this store.
func (s *Store) MediaStore() driven.MediaStore {
	return &mediaStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Stop Store ====================

// stopStore implements driven.StopStore.
type stopStore struct {
	store *Store
}

var _ driven.StopStore = (*stopStore)(nil)

// Get retrieves a stop by ID.
func (s *stopStore) Get(ctx context.Context, id int) (*domain.Stop, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, lat, lon, registered_at, updated_at
		FROM stops WHERE id = ?
	`, id)

	var stop domain.Stop
	var lat, lon sql.NullFloat64
	if err := row.Scan(&stop.ID, &stop.Name, &lat, &lon, &stop.RegisteredAt, &stop.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning stop: %w", err)
	}

	if lat.Valid {
		stop.Lat = &lat.Float64
	}
	if lon.Valid {
		stop.Lon = &lon.Float64
	}
	return &stop, nil
}

// Save inserts or updates a stop. RegisteredAt is only written on insert;
// updates advance UpdatedAt and leave the original registration untouched.
func (s *stopStore) Save(ctx context.Context, stop *domain.Stop) error {
	if stop == nil {
		return domain.ErrInvalidStop
	}

	now := s.store.now().UTC()
	var lat, lon sql.NullFloat64
	if stop.Lat != nil {
		lat = sql.NullFloat64{Float64: *stop.Lat, Valid: true}
	}
	if stop.Lon != nil {
		lon = sql.NullFloat64{Float64: *stop.Lon, Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO stops (id, name, lat, lon, registered_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			lat = excluded.lat,
			lon = excluded.lon,
			updated_at = excluded.updated_at
	`, stop.ID, stop.Name, lat, lon, now, now)
	if err != nil {
		return fmt.Errorf("saving stop: %w", err)
	}

	// Reflect persistence timestamps back to the caller's entity.
	row := s.store.db.QueryRowContext(ctx,
		"SELECT registered_at, updated_at FROM stops WHERE id = ?", stop.ID)
	if err := row.Scan(&stop.RegisteredAt, &stop.UpdatedAt); err != nil {
		return fmt.Errorf("reading back timestamps: %w", err)
	}
	return nil
}

// Exists reports whether a stop is persisted.
func (s *stopStore) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(id) FROM stops WHERE id = ?", id)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("checking stop existence: %w", err)
	}
	return count > 0, nil
}

// Delete removes a stop and reports whether a record was removed.
func (s *stopStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM stops WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting stop: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting stop: %w", err)
	}
	return affected > 0, nil
}

// ListIDs returns the IDs of every persisted stop, ascending.
func (s *stopStore) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id FROM stops ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying stop ids: %w", err)
	}
	defer rows.Close()

	var ids []int //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning stop id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stop ids: %w", err)
	}
	return ids, nil
}

// ==================== Media Store ====================

// mediaStore implements driven.MediaStore. Puts use INSERT OR IGNORE: the
// first recorded reference wins and later writes are silent no-ops.
type mediaStore struct {
	store *Store
}

var _ driven.MediaStore = (*mediaStore)(nil)

// GetMapImage returns the recorded map image reference.
func (s *mediaStore) GetMapImage(ctx context.Context, stopID int, variant domain.MapVariant) (*domain.MapImageRef, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT stop_id, vertical, terrain, file_id, created_at
		FROM map_images WHERE stop_id = ? AND vertical = ? AND terrain = ?
	`, stopID, variant.Vertical, variant.Terrain)

	var ref domain.MapImageRef
	if err := row.Scan(&ref.StopID, &ref.Variant.Vertical, &ref.Variant.Terrain, &ref.FileID, &ref.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning map image: %w", err)
	}
	return &ref, nil
}

// PutMapImage records a map image reference. No-op on duplicate keys.
func (s *mediaStore) PutMapImage(ctx context.Context, ref *domain.MapImageRef) error {
	createdAt := ref.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.store.now().UTC()
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO map_images (stop_id, vertical, terrain, file_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, ref.StopID, ref.Variant.Vertical, ref.Variant.Terrain, ref.FileID, createdAt)
	if err != nil {
		return fmt.Errorf("saving map image: %w", err)
	}
	return nil
}

// GetStreetView returns the recorded street view reference.
func (s *mediaStore) GetStreetView(ctx context.Context, stopID int) (*domain.StreetViewRef, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT stop_id, file_id, created_at
		FROM streetview_images WHERE stop_id = ?
	`, stopID)

	var ref domain.StreetViewRef
	if err := row.Scan(&ref.StopID, &ref.FileID, &ref.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning street view: %w", err)
	}
	return &ref, nil
}

// PutStreetView records a street view reference. No-op on duplicate keys.
func (s *mediaStore) PutStreetView(ctx context.Context, ref *domain.StreetViewRef) error {
	createdAt := ref.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.store.now().UTC()
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO streetview_images (stop_id, file_id, created_at)
		VALUES (?, ?, ?)
	`, ref.StopID, ref.FileID, createdAt)
	if err != nil {
		return fmt.Errorf("saving street view: %w", err)
	}
	return nil
}
