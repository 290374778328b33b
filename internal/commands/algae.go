package commands

import (
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// IntakeAlgae deploys the grabber and runs the roller inward. It never
// finishes; bind it WhileTrue with StopAndStowIntake OnFalse so the
// grabber stows when the button is released.
func IntakeAlgae(g *subsystems.AlgaeGrabber) command.Command {
	return command.NewFunc("IntakeAlgae", g).OnInitialize(g.Intake)
}

// OuttakeAlgae deploys the grabber and runs the roller outward to
// eject the held ball. It never finishes; bind it WhileTrue.
func OuttakeAlgae(g *subsystems.AlgaeGrabber) command.Command {
	return command.NewFunc("OuttakeAlgae", g).OnInitialize(g.Outtake)
}

// StopAndStowIntake stows the grabber pivot. The roller keeps a light
// grip while a ball is held.
func StopAndStowIntake(g *subsystems.AlgaeGrabber) command.Command {
	return command.RunOnce("StopAndStowIntake", g.StopAndStow, g)
}

// RemoveAlgaeAtLevel reaches between the reef branches at the level
// and spins the grabber to knock the algae loose. It never finishes;
// bind it WhileTrue with a stow command OnFalse.
func RemoveAlgaeAtLevel(e *subsystems.Elevator, a *subsystems.Arm, g *subsystems.AlgaeGrabber, lvl subsystems.Level) command.Command {
	return command.Named("RemoveAlgaeAt"+lvl.String(), command.Parallel(
		command.NewFunc("ElevatorToAlgae"+lvl.String(), e).
			OnInitialize(func() { e.GoToHeight(lvl.AlgaeHeight()) }),
		command.NewFunc("ArmSweep", a).
			OnInitialize(func() { a.GoToAngle(subsystems.ArmAlgaeSweepAngle) }),
		command.NewFunc("GrabAlgae", g).
			OnInitialize(g.Intake),
	))
}
