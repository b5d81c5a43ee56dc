package driving

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// MediaService looks up and records external media references for stops.
// Fetching the images themselves is out of scope; collaborators hand over
// the file IDs they obtained after delivering an image.
type MediaService interface {
	// MapImage returns the recorded map image reference for a stop variant.
	// Returns domain.ErrNotFound when none was recorded yet.
	MapImage(ctx context.Context, stopID int, variant domain.MapVariant) (*domain.MapImageRef, error)

	// RecordMapImage records a delivered map image's file ID.
	// First write wins; recording over an existing reference is a no-op.
	RecordMapImage(ctx context.Context, stopID int, variant domain.MapVariant, fileID string) error

	// StreetView returns the recorded street view reference for a stop.
	// Returns domain.ErrNotFound when none was recorded yet.
	StreetView(ctx context.Context, stopID int) (*domain.StreetViewRef, error)

	// RecordStreetView records a delivered street view image's file ID.
	// First write wins; recording over an existing reference is a no-op.
	RecordStreetView(ctx context.Context, stopID int, fileID string) error
}
