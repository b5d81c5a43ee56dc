// Package stationfile implements a stop source backed by a local JSON
// dataset, for offline use or as a fallback behind network sources.
//
// The dataset is a JSON array of stop records. It is a partial extract, not
// a registry: a stop absent from the file may still exist, so a miss is
// reported as a lookup failure rather than a conclusive not-found.
package stationfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Ensure StopSource implements the interface.
var _ driven.StopSource = (*StopSource)(nil)

// StopSource resolves stops from a JSON station file.
type StopSource struct {
	path string

	loadOnce sync.Once
	loadErr  error
	stops    map[int]record
}

// record is a single dataset entry. Name may be null for stops known only
// by ID; coordinates are optional.
type record struct {
	ID   int      `json:"id"`
	Name *string  `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// NewStopSource creates a stop source reading from the given file path. The
// file is loaded lazily on first lookup.
func NewStopSource(path string) *StopSource {
	return &StopSource{path: path}
}

// Name identifies this source in chain logs and configuration.
func (s *StopSource) Name() string {
	return "stationfile"
}

// FindStop looks the stop up in the dataset. A miss does not prove the stop
// nonexistent, so it surfaces as an error and the chain moves on.
func (s *StopSource) FindStop(ctx context.Context, id int) domain.StopResult {
	if err := ctx.Err(); err != nil {
		return domain.StopLookupFailed(err)
	}
	if err := s.load(); err != nil {
		return domain.StopLookupFailed(fmt.Errorf("station file: %w", err))
	}

	rec, ok := s.stops[id]
	if !ok {
		return domain.StopLookupFailed(fmt.Errorf("station file: stop %d not in dataset", id))
	}
	if rec.Name == nil {
		return domain.FoundStop(nil)
	}

	// An empty string is a valid name: the stop exists but is unnamed.
	stop := domain.NewStop(id, *rec.Name)
	if rec.Lat != nil && rec.Lon != nil {
		stop.WithLocation(*rec.Lat, *rec.Lon)
	}
	return domain.FoundStop(stop)
}

// load reads and indexes the dataset once.
func (s *StopSource) load() error {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.loadErr = err
			return
		}

		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			s.loadErr = fmt.Errorf("parsing %s: %w", s.path, err)
			return
		}

		s.stops = make(map[int]record, len(records))
		for _, rec := range records {
			s.stops[rec.ID] = rec
		}
	})
	return s.loadErr
}
