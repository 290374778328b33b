// Package dashboard publishes robot telemetry to operator consoles and
// accepts tuning writes back.
//
// Code registers typed entries on a Board, grouped into tabs and
// layouts, and updates them from subsystem periodics. The Server pushes
// a full snapshot to each connecting client followed by dirty-entry
// deltas on a fixed flush cadence, as length-prefixed CBOR frames over
// TCP. Writable entries accept client writes (preferences, the
// autonomous chooser). The service is advertised over mDNS so consoles
// can find the robot without configuration.
package dashboard
