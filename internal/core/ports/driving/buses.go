package driving

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// BusService produces the live arrival board for a stop.
type BusService interface {
	// IncomingBuses queries the bus sources in configured order and returns
	// the first authoritative list, sorted by the given method.
	//
	// An empty list is a valid answer ("confirmed no current arrivals").
	// Fails with domain.ErrSourceUnavailable when every source failed.
	IncomingBuses(ctx context.Context, stopID int, sort domain.BusSortMethod) ([]domain.Bus, error)
}
