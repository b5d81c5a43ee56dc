// Package memory provides in-memory implementations of the driven storage
// ports: the volatile stop cache plus store variants used in tests and in
// store-less setups.
package memory

import (
	"sync"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Ensure StopCache implements the interface.
var _ driven.StopCache = (*StopCache)(nil)

// StopCache is the volatile cache: a process-lifetime map from stop ID to
// the last-known snapshot. Safe for concurrent use.
type StopCache struct {
	mu    sync.RWMutex
	stops map[int]domain.Stop
}

// NewStopCache creates an empty stop cache.
func NewStopCache() *StopCache {
	return &StopCache{stops: make(map[int]domain.Stop)}
}

// Get returns the cached stop and whether it was present.
func (c *StopCache) Get(id int) (*domain.Stop, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stop, ok := c.stops[id]
	if !ok {
		return nil, false
	}
	return &stop, true
}

// Put inserts or replaces the cached snapshot for the stop's ID.
func (c *StopCache) Put(stop *domain.Stop) {
	if stop == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops[stop.ID] = *stop
}

// Remove drops a single entry, if present.
func (c *StopCache) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stops, id)
}

// Clear drops every entry.
func (c *StopCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops = make(map[int]domain.Stop)
}

// Len returns the number of cached stops.
func (c *StopCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stops)
}
