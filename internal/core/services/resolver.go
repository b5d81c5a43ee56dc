package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

// Ensure StopResolverService implements the interface.
var _ driving.StopService = (*StopResolverService)(nil)

// StopResolverService resolves stops through an ordered chain of layers:
// volatile cache, persistent store, then external sources in configured
// order. The cache and store are owned exclusively by the resolver for the
// lifetime of the process; sources never see them.
//
// Concurrent resolutions of the same ID are not deduplicated: the write-back
// is an idempotent upsert, so a duplicate external fetch converges on the
// same state.
type StopResolverService struct {
	cache   driven.StopCache
	store   driven.StopStore
	sources []driven.StopSource
}

// NewStopResolver creates a resolver over the given cache, store and
// external sources. The source slice order is the consultation order.
func NewStopResolver(cache driven.StopCache, store driven.StopStore, sources []driven.StopSource) *StopResolverService {
	return &StopResolverService{
		cache:   cache,
		store:   store,
		sources: sources,
	}
}

// ResolveStop answers "what is the current state of stop id", stopping at
// the first authoritative answer.
//
// A cache hit is terminal. A store hit repopulates the cache and is
// terminal. Otherwise each external source is consulted in order: a found
// stop is written back into store and cache and returned; an authoritative
// negative fails immediately with domain.ErrStopNotExist; a source error is
// logged and the next source is tried. Exhausting the chain fails with
// domain.ErrSourceUnavailable.
func (s *StopResolverService) ResolveStop(ctx context.Context, id int) (*domain.Stop, error) {
	rid := uuid.NewString()[:8]
	logger.Section("Stop Resolution")
	logger.Trace(rid, "resolving stop %d with %d external sources", id, len(s.sources))

	// 1. Volatile cache. A hit is cheap and terminal.
	if stop, ok := s.cache.Get(id); ok {
		logger.Trace(rid, "cache hit for stop %d (%q)", id, stop.Name)
		return stop, nil
	}

	// 2. Persistent store. A hit repopulates the cache but is not written
	// back to the store itself. Read failures must not block the external
	// chain.
	stop, err := s.store.Get(ctx, id)
	switch {
	case err == nil:
		logger.Trace(rid, "store hit for stop %d (%q)", id, stop.Name)
		s.cache.Put(stop)
		return stop, nil
	case errors.Is(err, domain.ErrNotFound):
		logger.Trace(rid, "stop %d not in store", id)
	default:
		logger.Warn("[%s] store read for stop %d failed: %v", rid, id, err)
	}

	if len(s.sources) == 0 {
		return nil, fmt.Errorf("resolving stop %d: %w", id, domain.ErrNoSources)
	}

	// 3. External chain.
	for _, src := range s.sources {
		res := src.FindStop(ctx, id)
		switch res.Status {
		case domain.StatusFound:
			if !res.Resolved() {
				// A source that cannot supply the entity (or its name) has
				// not actually resolved the stop; try the next one.
				logger.Warn("[%s] source %s claimed stop %d found but returned no usable entity", rid, src.Name(), id)
				continue
			}
			logger.Info("[%s] stop %d resolved by source %s (%q)", rid, id, src.Name(), res.Stop.Name)
			return s.writeBack(ctx, rid, res.Stop)

		case domain.StatusNotFound:
			// First authoritative negative is final; consulting backups
			// would only invite inconsistent answers.
			logger.Info("[%s] source %s asserts stop %d does not exist", rid, src.Name(), id)
			return nil, fmt.Errorf("stop %d: %w", id, domain.ErrStopNotExist)

		case domain.StatusError:
			logger.Warn("[%s] source %s failed for stop %d: %v", rid, src.Name(), id, res.Err)
		}
	}

	logger.Warn("[%s] stop %d could not be determined by any source", rid, id)
	return nil, fmt.Errorf("resolving stop %d: %w", id, domain.ErrSourceUnavailable)
}

// writeBack persists a newly learned stop into store and cache. A store
// failure does not roll back the resolution: the stop is still returned,
// alongside an error wrapping domain.ErrStorage.
func (s *StopResolverService) writeBack(ctx context.Context, rid string, stop *domain.Stop) (*domain.Stop, error) {
	if err := s.store.Save(ctx, stop); err != nil {
		logger.Warn("[%s] write-back for stop %d failed: %v", rid, stop.ID, err)
		s.cache.Put(stop)
		return stop, fmt.Errorf("%w: saving stop %d: %v", domain.ErrStorage, stop.ID, err)
	}
	s.cache.Put(stop)
	logger.Trace(rid, "stop %d written back to store and cache", stop.ID)
	return stop, nil
}

// SaveStop persists a stop and refreshes the cached snapshot.
func (s *StopResolverService) SaveStop(ctx context.Context, stop *domain.Stop) error {
	if stop == nil {
		return domain.ErrInvalidStop
	}
	if err := s.store.Save(ctx, stop); err != nil {
		return fmt.Errorf("%w: saving stop %d: %v", domain.ErrStorage, stop.ID, err)
	}
	s.cache.Put(stop)
	return nil
}

// ForgetStop removes a stop from the store and drops the cached snapshot.
// Forgetting an unknown stop is not an error.
func (s *StopResolverService) ForgetStop(ctx context.Context, id int) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: deleting stop %d: %v", domain.ErrStorage, id, err)
	}
	s.cache.Remove(id)
	logger.Debug("forgot stop %d (persisted record removed: %t)", id, deleted)
	return deleted, nil
}
