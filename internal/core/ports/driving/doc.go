// Package driving defines the interfaces through which the outside world
// drives the core (driving ports in hexagonal architecture).
//
// The CLI is the only driving adapter today; the ports exist so it depends
// on contracts rather than concrete services.
package driving
