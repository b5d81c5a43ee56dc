package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a local store has no record for the key.
	// A local miss proves nothing about real-world existence; it must never
	// be presented to callers as an authoritative negative.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrStopNotExist indicates an authoritative source asserted the stop
	// does not exist. Terminal: backup sources are not consulted.
	ErrStopNotExist = errors.New("stop does not exist")

	// ErrSourceUnavailable indicates every source in the chain failed, so
	// existence could not be determined either way.
	ErrSourceUnavailable = errors.New("no source available")

	// ErrStorage indicates a local store read or write failed.
	ErrStorage = errors.New("storage failure")

	// ErrNoSources indicates the resolver was asked to consult its external
	// chain but no sources are configured.
	ErrNoSources = errors.New("no sources configured")

	// ErrInvalidStop indicates a stop is missing required fields (a resolved
	// stop must at least carry a name; empty string counts as a name).
	ErrInvalidStop = errors.New("invalid stop")
)
