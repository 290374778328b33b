// Package commands builds the robot's commands. Every function here
// returns a command.Command wired to the subsystems it coordinates;
// internal/robot binds them to controller triggers.
package commands
