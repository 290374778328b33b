// Package command implements the command-based control model: subsystems
// own hardware, commands own behavior, and a cooperative scheduler
// arbitrates which command may use which subsystem.
//
// The scheduler is ticked from the robot loop at a fixed cadence. Each
// tick it runs subsystem periodics, polls trigger bindings for edges,
// executes scheduled commands, and starts default commands on idle
// subsystems. Scheduling a command interrupts any running command that
// shares one of its required subsystems.
//
// The scheduler is not safe for concurrent use: all methods must be
// called from the robot loop goroutine. Input sources that run on other
// goroutines (controllers, consoles) publish state through their own
// synchronized types and are sampled by trigger conditions during the
// tick.
package command
