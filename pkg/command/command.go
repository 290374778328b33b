package command

import (
	"errors"
	"time"
)

// Scheduler errors.
var (
	// ErrNotRequired indicates a default command that does not require
	// its subsystem.
	ErrNotRequired = errors.New("default command must require its subsystem")

	// ErrNilCommand indicates a nil command was passed where one is required.
	ErrNilCommand = errors.New("command is nil")
)

// Command is a unit of robot behavior with exclusive use of its required
// subsystems while scheduled.
//
// The scheduler calls Initialize once when the command is scheduled,
// Execute every tick while it runs, and End exactly once when it finishes
// or is interrupted. IsFinished is polled after Execute.
type Command interface {
	// Name returns the command name for logging and dashboards.
	Name() string

	// Requirements returns the subsystems this command needs exclusive
	// use of. The slice must be stable for the command's lifetime.
	Requirements() []Subsystem

	// Initialize is called once each time the command is scheduled.
	Initialize()

	// Execute is called once per tick while the command is scheduled.
	Execute()

	// IsFinished reports whether the command has completed its work.
	IsFinished() bool

	// End is called once when the command completes or is interrupted.
	End(interrupted bool)
}

// DisabledRunner is implemented by commands that may keep running while
// the robot is disabled (LED feedback, dashboard updates). Commands
// without this marker are cancelled when the robot disables.
type DisabledRunner interface {
	RunsWhenDisabled() bool
}

// runsWhenDisabled reports whether the command may run while disabled.
func runsWhenDisabled(c Command) bool {
	if dr, ok := c.(DisabledRunner); ok {
		return dr.RunsWhenDisabled()
	}
	return false
}

// clockUser is implemented by commands that measure time. The scheduler
// hands its time source to commands when they are scheduled; groups and
// wrappers forward it to their members.
type clockUser interface {
	useClock(now func() time.Time)
}

// forwardClock passes the time source to every command that keeps time.
func forwardClock(now func() time.Time, commands ...Command) {
	for _, c := range commands {
		if cu, ok := c.(clockUser); ok {
			cu.useClock(now)
		}
	}
}

// named wraps a command with a replacement name.
type named struct {
	Command
	name string
}

func (n named) Name() string { return n.name }

// RunsWhenDisabled preserves the wrapped command's disabled behavior.
func (n named) RunsWhenDisabled() bool { return runsWhenDisabled(n.Command) }

func (n named) useClock(now func() time.Time) { forwardClock(now, n.Command) }

// Named returns the command with its name replaced. The wrapped command's
// behavior is unchanged.
func Named(name string, c Command) Command {
	return named{Command: c, name: name}
}
