package driven

import "github.com/stopline-labs/stopline-cli/internal/core/domain"

// StopCache is a process-lifetime, in-memory mapping from stop ID to the
// last-known stop snapshot. Lookups never fail; absence is the only
// negative outcome, and it proves nothing about existence.
//
// There is deliberately no TTL or size eviction: the cache is bounded by
// process lifetime and caller discipline.
type StopCache interface {
	// Get returns the cached stop and whether it was present.
	Get(id int) (*domain.Stop, bool)

	// Put inserts or replaces the cached snapshot for the stop's ID.
	Put(stop *domain.Stop)

	// Remove drops a single entry, if present.
	Remove(id int)

	// Clear drops every entry.
	Clear()

	// Len returns the number of cached stops.
	Len() int
}
