package domain

import (
	"fmt"
	"time"
)

// Stop is a transit stop resolvable by its service-assigned integer ID.
// The ID is externally assigned and immutable; the name is required once
// resolved (an empty string is a valid "unknown name" placeholder).
// Latitude and longitude are optional and independently present.
type Stop struct {
	// ID is the unique stop identifier, assigned by the transit service.
	ID int

	// Name is the display name of the stop.
	Name string

	// Lat is the stop latitude. Nil when the location is unknown.
	Lat *float64

	// Lon is the stop longitude. Nil when the location is unknown.
	Lon *float64

	// RegisteredAt is when the stop was first persisted.
	RegisteredAt time.Time

	// UpdatedAt is when the stop was last persisted.
	UpdatedAt time.Time
}

// NewStop creates a stop with the required fields set.
func NewStop(id int, name string) *Stop {
	return &Stop{ID: id, Name: name}
}

// WithLocation returns the stop with its coordinates set.
func (s *Stop) WithLocation(lat, lon float64) *Stop {
	s.Lat = &lat
	s.Lon = &lon
	return s
}

// HasLocation reports whether both latitude and longitude are known.
func (s *Stop) HasLocation() bool {
	return s.Lat != nil && s.Lon != nil
}

// String renders the stop for log lines and plain CLI output.
func (s *Stop) String() string {
	if s.HasLocation() {
		return fmt.Sprintf("Stop #%d %q (%f, %f)", s.ID, s.Name, *s.Lat, *s.Lon)
	}
	return fmt.Sprintf("Stop #%d %q", s.ID, s.Name)
}
