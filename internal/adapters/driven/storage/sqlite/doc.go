// Package sqlite provides the SQLite-backed implementations of the stop and
// media stores. A single database file holds both concerns; wrapper types
// expose them through the driven port interfaces.
//
// The driver is modernc.org/sqlite (pure Go, no cgo). The database runs in
// WAL mode so concurrent resolutions of distinct stops do not serialise on
// reads.
package sqlite
