package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Ensure StopStore implements the interface.
var _ driven.StopStore = (*StopStore)(nil)

// StopStore is an in-memory implementation of driven.StopStore.
// It applies the same timestamp semantics as the persistent backends.
type StopStore struct {
	mu    sync.RWMutex
	stops map[int]domain.Stop

	// now is swappable for tests.
	now func() time.Time
}

// NewStopStore creates a new in-memory stop store.
func NewStopStore() *StopStore {
	return &StopStore{
		stops: make(map[int]domain.Stop),
		now:   time.Now,
	}
}

// Get retrieves a stop by ID.
func (s *StopStore) Get(_ context.Context, id int) (*domain.Stop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stop, ok := s.stops[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &stop, nil
}

// Save inserts or updates a stop. On insert both timestamps are set to now;
// on update RegisteredAt is preserved and UpdatedAt advances.
func (s *StopStore) Save(_ context.Context, stop *domain.Stop) error {
	if stop == nil {
		return domain.ErrInvalidStop
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	record := *stop
	if existing, ok := s.stops[stop.ID]; ok {
		record.RegisteredAt = existing.RegisteredAt
		record.UpdatedAt = now
	} else {
		record.RegisteredAt = now
		record.UpdatedAt = now
	}
	s.stops[stop.ID] = record

	// Reflect persistence timestamps back to the caller's entity.
	stop.RegisteredAt = record.RegisteredAt
	stop.UpdatedAt = record.UpdatedAt
	return nil
}

// Exists reports whether a stop is persisted.
func (s *StopStore) Exists(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.stops[id]
	return ok, nil
}

// Delete removes a stop and reports whether a record was removed.
func (s *StopStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.stops[id]
	delete(s.stops, id)
	return ok, nil
}

// ListIDs returns the IDs of every persisted stop, ascending.
func (s *StopStore) ListIDs(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.stops))
	for id := range s.stops {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
