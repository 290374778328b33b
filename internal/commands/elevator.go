package commands

import (
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// GoToElevatorLevel raises the elevator to the level's scoring height
// and tilts the arm out to score. It finishes when both mechanisms
// reach their setpoints; the elevator keeps holding the height
// afterward.
func GoToElevatorLevel(e *subsystems.Elevator, a *subsystems.Arm, lvl subsystems.Level) command.Command {
	return command.Named("GoToElevator"+lvl.String(), command.Parallel(
		command.NewFunc("ElevatorTo"+lvl.String(), e).
			OnInitialize(func() { e.GoToLevel(lvl) }).
			Until(e.AtTarget),
		command.NewFunc("ArmToScore", a).
			OnInitialize(func() { a.GoToAngle(subsystems.ArmScoreAngle) }).
			Until(a.AtTarget),
	))
}

// StowElevatorAndArm brings the elevator and arm back to their travel
// positions. It finishes when both are stowed.
func StowElevatorAndArm(e *subsystems.Elevator, a *subsystems.Arm) command.Command {
	return command.Named("StowElevatorAndArm", command.Parallel(
		command.NewFunc("StowElevator", e).
			OnInitialize(e.Stow).
			Until(e.AtTarget),
		command.NewFunc("StowArm", a).
			OnInitialize(a.Stow).
			Until(a.AtTarget),
	))
}
