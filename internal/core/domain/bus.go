package domain

import (
	"fmt"
	"sort"
)

// Bus is one expected arrival at a stop. Buses are transient: a fresh list
// is produced on every resolution and nothing is ever persisted.
type Bus struct {
	// Line is the line identifier (e.g. "9A").
	Line string

	// Route is the route description, usually the destination.
	Route string

	// Time is the remaining time until arrival, in minutes. Negative values
	// are valid and mean the bus already arrived or departed.
	Time int

	// Distance is the distance to the stop, if the source reports one.
	Distance *float64
}

// String renders the bus for log lines and plain CLI output.
func (b Bus) String() string {
	return fmt.Sprintf("%s (%s) - %dm", b.Line, b.Route, b.Time)
}

// BusSortMethod selects how an arrival list is ordered.
type BusSortMethod int

const (
	// SortByTime orders by remaining time ascending. Negative times sort
	// before zero and positive times. This is the default.
	SortByTime BusSortMethod = iota

	// SortByLine orders by line identifier.
	SortByLine

	// SortByRoute orders by route description.
	SortByRoute

	// SortByLineRoute orders by line, then route.
	SortByLineRoute

	// SortByTimeLineRoute orders by time, then line, then route.
	SortByTimeLineRoute
)

// ParseBusSortMethod maps a configuration name onto a sort method. The
// empty string selects the default time ordering.
func ParseBusSortMethod(name string) (BusSortMethod, error) {
	switch name {
	case "", "time":
		return SortByTime, nil
	case "line":
		return SortByLine, nil
	case "route":
		return SortByRoute, nil
	case "lineroute":
		return SortByLineRoute, nil
	case "timelineroute":
		return SortByTimeLineRoute, nil
	default:
		return SortByTime, fmt.Errorf("unknown bus sort method %q", name)
	}
}

// SortBuses orders buses in place by the given method. The sort is stable:
// records that compare equal keep their source-provided relative order.
func SortBuses(buses []Bus, method BusSortMethod) {
	sort.SliceStable(buses, func(i, j int) bool {
		a, b := buses[i], buses[j]
		switch method {
		case SortByLine:
			return a.Line < b.Line
		case SortByRoute:
			return a.Route < b.Route
		case SortByLineRoute:
			if a.Line != b.Line {
				return a.Line < b.Line
			}
			return a.Route < b.Route
		case SortByTimeLineRoute:
			if a.Time != b.Time {
				return a.Time < b.Time
			}
			if a.Line != b.Line {
				return a.Line < b.Line
			}
			return a.Route < b.Route
		default:
			return a.Time < b.Time
		}
	})
}
