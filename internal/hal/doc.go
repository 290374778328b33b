// Package hal defines the hardware abstraction used by subsystems.
// Subsystems depend only on the interfaces here; the robot binary
// wires in simulated devices, and a RoboRIO build would substitute
// real ones without touching subsystem code.
package hal
