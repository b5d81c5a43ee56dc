package irail

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// stationCacheTTL bounds how long the full station list is reused before
// refetching. The list changes rarely.
const stationCacheTTL = 15 * time.Minute

// Ensure StopSource implements the interface.
var _ driven.StopSource = (*StopSource)(nil)

// StopSource resolves stops against the iRail stations endpoint.
//
// The endpoint returns the complete station list, so this source is
// authoritative: an ID absent from a successfully fetched list is a
// conclusive not-found, not a transient failure.
type StopSource struct {
	client *Client

	mu       sync.Mutex
	stations map[string]station
	loadedAt time.Time

	// now is swappable for tests.
	now func() time.Time
}

// station is a single entry of the stations payload. Coordinates arrive as
// strings; name may be null for stations without an English name.
type station struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	StandardName *string `json:"standardname"`
	LocationX    string  `json:"locationX"`
	LocationY    string  `json:"locationY"`
}

type stationsResponse struct {
	Station []station `json:"station"`
}

// NewStopSource creates a stop source over the given client.
func NewStopSource(client *Client) *StopSource {
	return &StopSource{client: client, now: time.Now}
}

// Name identifies this source in chain logs and configuration.
func (s *StopSource) Name() string {
	return "irail"
}

// FindStop looks the stop up in the station list.
func (s *StopSource) FindStop(ctx context.Context, id int) domain.StopResult {
	stations, err := s.stationList(ctx)
	if err != nil {
		return domain.StopLookupFailed(fmt.Errorf("irail stations: %w", err))
	}

	st, ok := stations[stationID(id)]
	if !ok {
		return domain.NoSuchStop()
	}

	name := st.displayName()
	if name == nil {
		// A record without a usable name cannot be returned as resolved.
		return domain.FoundStop(nil)
	}

	stop := domain.NewStop(id, *name)
	if lat, lon, ok := st.coordinates(); ok {
		stop.WithLocation(lat, lon)
	}
	return domain.FoundStop(stop)
}

// stationList returns the cached station index, refetching when stale.
func (s *StopSource) stationList(ctx context.Context) (map[string]station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stations != nil && s.now().Sub(s.loadedAt) < stationCacheTTL {
		return s.stations, nil
	}

	var payload stationsResponse
	query := url.Values{"format": {"json"}, "lang": {"en"}}
	if err := s.client.getJSON(ctx, "/stations/", query, &payload); err != nil {
		return nil, err
	}

	index := make(map[string]station, len(payload.Station))
	for _, st := range payload.Station {
		index[st.ID] = st
	}
	s.stations = index
	s.loadedAt = s.now()
	return index, nil
}

// displayName prefers the English name, falling back to the standard name.
func (st station) displayName() *string {
	if st.Name != nil && *st.Name != "" {
		return st.Name
	}
	if st.StandardName != nil && *st.StandardName != "" {
		return st.StandardName
	}
	return nil
}

// coordinates parses the string lat/lon pair. iRail uses 0 for unknown.
func (st station) coordinates() (lat, lon float64, ok bool) {
	lat, errY := strconv.ParseFloat(st.LocationY, 64)
	lon, errX := strconv.ParseFloat(st.LocationX, 64)
	if errY != nil || errX != nil {
		return 0, 0, false
	}
	if lat == 0 && lon == 0 {
		return 0, 0, false
	}
	return lat, lon, true
}
