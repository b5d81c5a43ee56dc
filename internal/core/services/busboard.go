package services

import (
	"context"
	"fmt"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

// Ensure BusBoardService implements the interface.
var _ driving.BusService = (*BusBoardService)(nil)

// BusBoardService aggregates the live arrival list for a stop from an
// ordered chain of bus sources. Arrival lists are time-sensitive, so there
// is deliberately no cache or store layer here; ordering is the only local
// processing applied.
type BusBoardService struct {
	sources []driven.BusSource
}

// NewBusBoard creates a bus board over the given sources, queried in slice
// order.
func NewBusBoard(sources []driven.BusSource) *BusBoardService {
	return &BusBoardService{sources: sources}
}

// IncomingBuses returns the arrivals currently expected at a stop.
//
// The first source that answers is authoritative and terminal, including an
// answer of "no arrivals right now" (an empty list). A failing source is
// logged and the next one is tried; exhausting the chain fails with
// domain.ErrSourceUnavailable.
func (b *BusBoardService) IncomingBuses(ctx context.Context, stopID int, sort domain.BusSortMethod) ([]domain.Bus, error) {
	logger.Section("Bus Board")
	logger.Debug("querying %d bus sources for stop %d", len(b.sources), stopID)

	if len(b.sources) == 0 {
		return nil, fmt.Errorf("buses for stop %d: %w", stopID, domain.ErrNoSources)
	}

	for _, src := range b.sources {
		buses, err := src.Buses(ctx, stopID)
		if err != nil {
			logger.Warn("bus source %s failed for stop %d: %v", src.Name(), stopID, err)
			continue
		}

		logger.Info("source %s answered with %d buses for stop %d", src.Name(), len(buses), stopID)
		domain.SortBuses(buses, sort)
		return buses, nil
	}

	logger.Warn("no bus source could answer for stop %d", stopID)
	return nil, fmt.Errorf("buses for stop %d: %w", stopID, domain.ErrSourceUnavailable)
}
