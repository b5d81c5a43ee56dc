package memory

import (
	"context"
	"sync"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Ensure MediaStore implements the interface.
var _ driven.MediaStore = (*MediaStore)(nil)

// mapKey identifies one map image record.
type mapKey struct {
	stopID  int
	variant domain.MapVariant
}

// MediaStore is an in-memory implementation of driven.MediaStore.
// Puts are insert-only: the first write wins.
type MediaStore struct {
	mu         sync.RWMutex
	maps       map[mapKey]domain.MapImageRef
	streetview map[int]domain.StreetViewRef
}

// NewMediaStore creates a new in-memory media store.
func NewMediaStore() *MediaStore {
	return &MediaStore{
		maps:       make(map[mapKey]domain.MapImageRef),
		streetview: make(map[int]domain.StreetViewRef),
	}
}

// GetMapImage returns the recorded map image reference.
func (s *MediaStore) GetMapImage(_ context.Context, stopID int, variant domain.MapVariant) (*domain.MapImageRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.maps[mapKey{stopID: stopID, variant: variant}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ref, nil
}

// PutMapImage records a map image reference. No-op if one already exists.
func (s *MediaStore) PutMapImage(_ context.Context, ref *domain.MapImageRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := mapKey{stopID: ref.StopID, variant: ref.Variant}
	if _, ok := s.maps[key]; ok {
		return nil
	}
	s.maps[key] = *ref
	return nil
}

// GetStreetView returns the recorded street view reference.
func (s *MediaStore) GetStreetView(_ context.Context, stopID int) (*domain.StreetViewRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.streetview[stopID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ref, nil
}

// PutStreetView records a street view reference. No-op if one already exists.
func (s *MediaStore) PutStreetView(_ context.Context, ref *domain.StreetViewRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.streetview[ref.StopID]; ok {
		return nil
	}
	s.streetview[ref.StopID] = *ref
	return nil
}
