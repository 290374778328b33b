package commands

import (
	"github.com/reef-robotics/reefbot/pkg/command"
)

// InterruptAll cancels everything the scheduler is running. Default
// commands come back on the next tick, so this is the manipulator's
// panic button: whatever the robot was doing, it stops.
func InterruptAll(sched *command.Scheduler) command.Command {
	return command.RunOnce("InterruptAll", sched.CancelAll).WhenDisabled()
}
