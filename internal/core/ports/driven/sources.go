package driven

import (
	"context"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

// StopSource looks up a single stop in an external provider.
// Sources are queried by the resolver in configured order.
type StopSource interface {
	// Name identifies the source in log lines.
	Name() string

	// FindStop maps the provider's answer onto the tri-state result.
	// Implementations must never return the not-found variant unless they
	// hold ground-truth authority over existence: "not in my dataset"
	// without that authority maps to the error variant.
	FindStop(ctx context.Context, id int) domain.StopResult
}

// BusSource produces the live arrival list for a stop.
//
// A nil error makes the returned list authoritative, and an empty list is a
// valid answer meaning "confirmed no current arrivals". A non-nil error
// means the source could not answer and a backup should be tried.
type BusSource interface {
	// Name identifies the source in log lines.
	Name() string

	// Buses returns the arrivals currently expected at the stop.
	Buses(ctx context.Context, stopID int) ([]domain.Bus, error)
}
