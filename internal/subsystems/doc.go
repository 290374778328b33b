// Package subsystems implements the robot's mechanisms. Each subsystem
// owns its hardware through the hal interfaces, runs closed-loop
// control from its Periodic method, and publishes telemetry to the
// dashboard. Commands in internal/commands coordinate subsystems; the
// subsystems themselves never schedule anything.
package subsystems
