package driven

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// MediaStore keeps the external file IDs of images already produced for a
// stop, keyed by stop ID (plus variant for maps).
//
// Puts are insert-only: the first write wins and a duplicate-key put is a
// no-op, since a reference already handed to the external side must not be
// silently replaced.
type MediaStore interface {
	// GetMapImage returns the recorded map image reference.
	// Returns domain.ErrNotFound when none was recorded.
	GetMapImage(ctx context.Context, stopID int, variant domain.MapVariant) (*domain.MapImageRef, error)

	// PutMapImage records a map image reference. No-op if one already
	// exists for (stop, variant).
	PutMapImage(ctx context.Context, ref *domain.MapImageRef) error

	// GetStreetView returns the recorded street view reference.
	// Returns domain.ErrNotFound when none was recorded.
	GetStreetView(ctx context.Context, stopID int) (*domain.StreetViewRef, error)

	// PutStreetView records a street view reference. No-op if one already
	// exists for the stop.
	PutStreetView(ctx context.Context, ref *domain.StreetViewRef) error
}
