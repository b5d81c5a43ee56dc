package domain

// LookupStatus is the shared vocabulary between every stop source and the
// resolver chain. Exactly three variants exist; collapsing them into a
// boolean would make a local cache miss indistinguishable from an
// authoritative "does not exist".
type LookupStatus int

const (
	// StatusError means the source could not determine existence: a
	// technical failure, or an ambiguous absence such as a local store
	// simply not holding the key.
	StatusError LookupStatus = iota

	// StatusFound means the source positively resolved the stop.
	StatusFound

	// StatusNotFound means the source positively asserts the stop does not
	// exist. Only sources with ground-truth authority over existence may
	// return this.
	StatusNotFound
)

// String returns the status name for log lines.
func (s LookupStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	default:
		return "error"
	}
}

// StopResult is the tri-state outcome of a single source lookup.
// Use the constructors below rather than building literals.
type StopResult struct {
	// Status selects the variant.
	Status LookupStatus

	// Stop carries the resolved stop when Status is StatusFound.
	Stop *Stop

	// Err carries the cause when Status is StatusError. May be nil for
	// ambiguous absences that have no underlying failure.
	Err error
}

// FoundStop builds the positive variant. The stop must carry at least its
// name; a source that cannot supply one has not actually resolved the stop
// and the chain will treat the result as an error.
func FoundStop(stop *Stop) StopResult {
	return StopResult{Status: StatusFound, Stop: stop}
}

// NoSuchStop builds the authoritative negative variant.
func NoSuchStop() StopResult {
	return StopResult{Status: StatusNotFound}
}

// StopLookupFailed builds the error variant.
func StopLookupFailed(err error) StopResult {
	return StopResult{Status: StatusError, Err: err}
}

// Resolved reports whether the result is a usable positive answer: found,
// with an entity present. Sources decode external names as nullable, so a
// payload with a null name never reaches this point as a found stop.
func (r StopResult) Resolved() bool {
	return r.Status == StatusFound && r.Stop != nil
}
