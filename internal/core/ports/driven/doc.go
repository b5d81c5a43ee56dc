// Package driven defines the interfaces the core depends on
// (driven ports in hexagonal architecture).
//
// The resolver owns a cache, a store and an ordered chain of sources; this
// package defines those contracts. Adapters under internal/adapters/driven
// and internal/sources implement them.
//
// # Import Rules
//
//   - Can Import: domain, standard library
//   - Cannot Import: services, adapters, sources
package driven
