package cli

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
)

// mockStopService is a configurable StopService for command tests.
type mockStopService struct {
	resolveStop   *domain.Stop
	resolveErr    error
	savedStops    []*domain.Stop
	saveErr       error
	forgetRemoved bool
	forgetErr     error
	preloadReport *driving.PreloadReport
	preloadErr    error
}

func (m *mockStopService) ResolveStop(_ context.Context, _ int) (*domain.Stop, error) {
	return m.resolveStop, m.resolveErr
}

func (m *mockStopService) SaveStop(_ context.Context, stop *domain.Stop) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedStops = append(m.savedStops, stop)
	return nil
}

func (m *mockStopService) ForgetStop(_ context.Context, _ int) (bool, error) {
	return m.forgetRemoved, m.forgetErr
}

func (m *mockStopService) PreloadStops(_ context.Context, _, _, _ int) (*driving.PreloadReport, error) {
	return m.preloadReport, m.preloadErr
}

// mockBusService is a configurable BusService for command tests.
type mockBusService struct {
	buses    []domain.Bus
	err      error
	lastSort domain.BusSortMethod
}

func (m *mockBusService) IncomingBuses(_ context.Context, _ int, sort domain.BusSortMethod) ([]domain.Bus, error) {
	m.lastSort = sort
	return m.buses, m.err
}

// mockMediaService is a configurable MediaService for command tests.
type mockMediaService struct {
	mapRef      *domain.MapImageRef
	mapErr      error
	streetRef   *domain.StreetViewRef
	streetErr   error
	recordedMap []string
	recordedSV  []string
}

func (m *mockMediaService) MapImage(_ context.Context, _ int, _ domain.MapVariant) (*domain.MapImageRef, error) {
	return m.mapRef, m.mapErr
}

func (m *mockMediaService) RecordMapImage(_ context.Context, _ int, _ domain.MapVariant, fileID string) error {
	m.recordedMap = append(m.recordedMap, fileID)
	return nil
}

func (m *mockMediaService) StreetView(_ context.Context, _ int) (*domain.StreetViewRef, error) {
	return m.streetRef, m.streetErr
}

func (m *mockMediaService) RecordStreetView(_ context.Context, _ int, fileID string) error {
	m.recordedSV = append(m.recordedSV, fileID)
	return nil
}

// setupTestServices installs fresh mocks and returns them with a cleanup
// that restores the previous wiring.
func setupTestServices() (*mockStopService, *mockBusService, *mockMediaService, func()) {
	prevStop, prevBus, prevMedia := stopService, busService, mediaService
	prevSort, prevLimit := defaultSort, defaultBusLimit

	stop := &mockStopService{}
	bus := &mockBusService{}
	media := &mockMediaService{}
	SetServices(Services{Stop: stop, Buses: bus, Media: media})

	return stop, bus, media, func() {
		stopService, busService, mediaService = prevStop, prevBus, prevMedia
		defaultSort, defaultBusLimit = prevSort, prevLimit
	}
}
