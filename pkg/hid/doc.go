// Package hid models operator input devices.
//
// A Gamepad is a thread-safe snapshot of button, axis, and POV hat
// state. Input sources (a driver-station bridge, the simulation console)
// write to it from their own goroutines; trigger conditions sample it
// from the robot loop. XboxController overlays the Xbox button and axis
// layout on a Gamepad and hands out scheduler triggers per control.
package hid
