package irail

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// maxDepartures caps how many liveboard entries are returned per lookup.
const maxDepartures = 20

// Ensure BusSource implements the interface.
var _ driven.BusSource = (*BusSource)(nil)

// BusSource reads upcoming departures from the iRail liveboard endpoint.
type BusSource struct {
	client *Client
}

// liveboardResponse mirrors the liveboard payload. All numeric values
// arrive as strings.
type liveboardResponse struct {
	Timestamp  string `json:"timestamp"`
	Departures struct {
		Departure []struct {
			Station     string `json:"station"`
			Time        string `json:"time"`
			Platform    string `json:"platform"`
			VehicleInfo struct {
				ShortName string `json:"shortname"`
			} `json:"vehicleinfo"`
		} `json:"departure"`
	} `json:"departures"`
}

// NewBusSource creates a bus source over the given client.
func NewBusSource(client *Client) *BusSource {
	return &BusSource{client: client}
}

// Name identifies this source in chain logs and configuration.
func (s *BusSource) Name() string {
	return "irail"
}

// Buses returns the stop's upcoming departures as incoming buses. A stop
// with no scheduled departures yields an empty list and a nil error; that
// answer is authoritative and does not fall through to other sources.
func (s *BusSource) Buses(ctx context.Context, stopID int) ([]domain.Bus, error) {
	query := url.Values{
		"id":     {stationID(stopID)},
		"format": {"json"},
		"arrdep": {"departure"},
	}

	var payload liveboardResponse
	if err := s.client.getJSON(ctx, "/liveboard/", query, &payload); err != nil {
		return nil, fmt.Errorf("irail liveboard for stop %d: %w", stopID, err)
	}

	boardTime, err := strconv.ParseInt(payload.Timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("irail liveboard for stop %d: bad timestamp %q", stopID, payload.Timestamp)
	}

	departures := payload.Departures.Departure
	if len(departures) > maxDepartures {
		departures = departures[:maxDepartures]
	}

	buses := make([]domain.Bus, 0, len(departures))
	for _, dep := range departures {
		depTime, err := strconv.ParseInt(dep.Time, 10, 64)
		if err != nil {
			continue // malformed entry, keep the rest of the board
		}
		buses = append(buses, domain.Bus{
			Line:  dep.VehicleInfo.ShortName,
			Route: dep.Station,
			// Whole minutes relative to the board timestamp. Departures
			// already gone come out negative.
			Time: int((depTime - boardTime) / 60),
		})
	}
	return buses, nil
}
