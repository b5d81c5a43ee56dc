package driven

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// StopStore persists stops. Backed by SQLite or Elasticsearch.
//
// A miss is reported as domain.ErrNotFound and is never authoritative: the
// store not holding a stop proves nothing about whether the stop exists.
// Failed writes leave prior state intact.
type StopStore interface {
	// Get retrieves a stop by ID. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, id int) (*domain.Stop, error)

	// Save inserts or updates a stop. On insert, RegisteredAt and UpdatedAt
	// are both set to now; on update, mutable fields and UpdatedAt change
	// while RegisteredAt is left untouched.
	Save(ctx context.Context, stop *domain.Stop) error

	// Exists reports whether a stop is persisted.
	Exists(ctx context.Context, id int) (bool, error)

	// Delete removes a stop. Reports whether a record was actually removed;
	// deleting an absent stop is not an error.
	Delete(ctx context.Context, id int) (bool, error)

	// ListIDs returns the IDs of every persisted stop.
	ListIDs(ctx context.Context) ([]int, error)
}
