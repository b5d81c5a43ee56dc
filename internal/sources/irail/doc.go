// Package irail implements stop and bus sources backed by the iRail API
// (https://docs.irail.be).
//
// The stations endpoint exposes the complete station list, so this stop
// source is authoritative: when a fetch succeeds and the requested ID is
// absent, the stop conclusively does not exist. The liveboard endpoint
// provides upcoming departures, which are mapped onto incoming buses with
// times in whole minutes relative to the board timestamp.
//
// All requests go through a shared token-bucket throttle so chained lookups
// and preloads stay within the API's fair-use policy.
package irail
