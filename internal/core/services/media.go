package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

// Ensure MediaService implements the interface.
var _ driving.MediaService = (*MediaService)(nil)

// MediaService fronts the media reference store. It only deals in external
// file IDs; fetching and delivering the images themselves is the job of
// outside collaborators.
type MediaService struct {
	store driven.MediaStore
	now   func() time.Time
}

// NewMediaService creates a media service over the given store.
func NewMediaService(store driven.MediaStore) *MediaService {
	return &MediaService{store: store, now: time.Now}
}

// MapImage returns the recorded map image reference for a stop variant.
func (m *MediaService) MapImage(ctx context.Context, stopID int, variant domain.MapVariant) (*domain.MapImageRef, error) {
	ref, err := m.store.GetMapImage(ctx, stopID, variant)
	if err != nil {
		return nil, err
	}
	logger.Debug("map image for stop %d (%s): file %s", stopID, variant, ref.FileID)
	return ref, nil
}

// RecordMapImage records a delivered map image's file ID.
// The first recorded reference for a (stop, variant) pair wins.
func (m *MediaService) RecordMapImage(ctx context.Context, stopID int, variant domain.MapVariant, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("recording map image for stop %d: empty file ID", stopID)
	}
	ref := &domain.MapImageRef{
		StopID:    stopID,
		Variant:   variant,
		FileID:    fileID,
		CreatedAt: m.now().UTC(),
	}
	if err := m.store.PutMapImage(ctx, ref); err != nil {
		return fmt.Errorf("%w: recording map image for stop %d: %v", domain.ErrStorage, stopID, err)
	}
	logger.Debug("recorded map image for stop %d (%s)", stopID, variant)
	return nil
}

// StreetView returns the recorded street view reference for a stop.
func (m *MediaService) StreetView(ctx context.Context, stopID int) (*domain.StreetViewRef, error) {
	ref, err := m.store.GetStreetView(ctx, stopID)
	if err != nil {
		return nil, err
	}
	logger.Debug("street view for stop %d: file %s", stopID, ref.FileID)
	return ref, nil
}

// RecordStreetView records a delivered street view image's file ID.
// The first recorded reference for a stop wins.
func (m *MediaService) RecordStreetView(ctx context.Context, stopID int, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("recording street view for stop %d: empty file ID", stopID)
	}
	ref := &domain.StreetViewRef{
		StopID:    stopID,
		FileID:    fileID,
		CreatedAt: m.now().UTC(),
	}
	if err := m.store.PutStreetView(ctx, ref); err != nil {
		return fmt.Errorf("%w: recording street view for stop %d: %v", domain.ErrStorage, stopID, err)
	}
	logger.Debug("recorded street view for stop %d", stopID)
	return nil
}
