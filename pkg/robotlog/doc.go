// Package robotlog provides structured match logging for the robot
// program.
//
// Events are captured at every layer (scheduler, subsystems, dashboard)
// and encoded as compact CBOR records with integer keys, so a full
// match can be logged to flash and replayed afterwards with Reader.
// The Logger interface decouples event producers from sinks; FileLogger
// writes the CBOR stream, SlogAdapter mirrors events to the console,
// and MultiLogger fans out to both.
package robotlog
