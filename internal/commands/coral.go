package commands

import (
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// IntakeUntilCoralDetected runs the roller inward until the beam break
// sees a piece, then stops it. Interrupting also stops the roller.
func IntakeUntilCoralDetected(c *subsystems.CoralRoller) command.Command {
	return command.NewFunc("IntakeUntilCoralDetected", c).
		OnInitialize(c.Intake).
		Until(c.HasCoral).
		OnEnd(func(bool) { c.Stop() })
}

// OuttakeUntilCoralNotDetected scores the held piece: the roller runs
// outward until the beam break clears, then stops.
func OuttakeUntilCoralNotDetected(c *subsystems.CoralRoller) command.Command {
	return command.NewFunc("OuttakeUntilCoralNotDetected", c).
		OnInitialize(c.Outtake).
		Until(func() bool { return !c.HasCoral() }).
		OnEnd(func(bool) { c.Stop() })
}
