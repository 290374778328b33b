package commands

import (
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// Climb winds the climber winch while held and stops it on release.
// The winch halts on its own at the limit switch.
func Climb(c *subsystems.Climber) command.Command {
	return command.RunEnd("Climb", c.Climb, c.Stop, c)
}
