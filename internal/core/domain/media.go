package domain

import "time"

// MapVariant discriminates the map images kept per stop: one per
// orientation × map-type combination.
type MapVariant struct {
	// Vertical selects portrait orientation instead of landscape.
	Vertical bool

	// Terrain selects the terrain map type instead of the road map.
	Terrain bool
}

// String renders the variant for log lines ("horizontal/roadmap" etc.).
func (v MapVariant) String() string {
	orientation := "horizontal"
	if v.Vertical {
		orientation = "vertical"
	}
	maptype := "roadmap"
	if v.Terrain {
		maptype = "terrain"
	}
	return orientation + "/" + maptype
}

// MapImageRef records the external file ID of a map image already delivered
// for a stop. Once recorded it is never replaced: the external side caches
// by that ID, so silently swapping it would orphan the reference.
type MapImageRef struct {
	StopID    int
	Variant   MapVariant
	FileID    string
	CreatedAt time.Time
}

// StreetViewRef records the external file ID of a street-level image for a
// stop. One per stop, first write wins.
type StreetViewRef struct {
	StopID    int
	FileID    string
	CreatedAt time.Time
}
