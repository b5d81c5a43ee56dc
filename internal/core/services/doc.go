// Package services implements the core use cases behind the driving ports.
//
// StopResolverService is the source-chain resolver: it answers stop lookups
// from a volatile cache, then the persistent store, then an ordered chain of
// external sources, reconciling anything newly learned back into the local
// layers. BusBoardService aggregates live arrival lists without any local
// layer. MediaService fronts the first-write-wins media reference store.
//
// Services depend only on domain types and driven ports; all concrete
// storage and transport lives in adapters.
package services
