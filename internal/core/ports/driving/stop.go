package driving

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// StopService resolves, persists and forgets stops.
type StopService interface {
	// ResolveStop answers "what is the current state of this stop" by
	// consulting cache, store and the external chain in order.
	//
	// Fails with domain.ErrStopNotExist when an authoritative source
	// asserts the stop does not exist, or domain.ErrSourceUnavailable when
	// existence could not be determined. When resolution succeeded but the
	// write-back failed, the resolved stop is returned together with an
	// error wrapping domain.ErrStorage.
	ResolveStop(ctx context.Context, id int) (*domain.Stop, error)

	// SaveStop persists a stop and refreshes the cached snapshot.
	SaveStop(ctx context.Context, stop *domain.Stop) error

	// ForgetStop removes a stop from store and cache. Reports whether a
	// persisted record was removed.
	ForgetStop(ctx context.Context, id int) (bool, error)

	// PreloadStops resolves an inclusive ID range through the external
	// chain and persists every hit. Used when providers expose no full
	// stop listing.
	PreloadStops(ctx context.Context, from, to, workers int) (*PreloadReport, error)
}

// PreloadReport summarises a PreloadStops run.
type PreloadReport struct {
	// Resolved holds the IDs that were found and persisted.
	Resolved []int

	// Missing holds the IDs an authoritative source reported as nonexistent.
	Missing []int

	// Failed holds the IDs that could not be determined.
	Failed []int
}
