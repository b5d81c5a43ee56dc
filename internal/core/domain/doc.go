// Package domain defines the core business entities for Stopline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Stop: A transit stop with a stable integer ID
//   - Bus: A transient arrival record for a stop, never persisted
//   - StopResult: The tri-state outcome of a single source lookup
//   - MapImageRef / StreetViewRef: Cached external media references
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
