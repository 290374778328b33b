package auto

import (
	"time"

	"github.com/reef-robotics/reefbot/internal/commands"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// Auto driving constants.
const (
	taxiSpeed     = 0.4
	taxiDuration  = 1500 * time.Millisecond
	algaeSweepFor = 2 * time.Second
)

// Routines returns the standard autonomous programs in chooser order.
// "None" is first so a robot with an unconfigured dashboard sits
// still.
func Routines() []Routine {
	return []Routine{
		{Name: "None", Build: noAuto},
		{Name: "Taxi", Build: taxi},
		{Name: "One Coral L1", Build: oneCoral(subsystems.L1)},
		{Name: "One Coral L4", Build: oneCoral(subsystems.L4)},
		{Name: "One Coral L4 + Algae", Build: oneCoralAndAlgae},
	}
}

// noAuto does nothing.
func noAuto(*subsystems.Subsystems) command.Command {
	return command.Named("NoAuto", command.Wait(0))
}

// taxi drives out of the starting zone for the leave points.
func taxi(s *subsystems.Subsystems) command.Command {
	return command.Named("Taxi", driveForward(s.Drivetrain, taxiDuration))
}

// oneCoral leaves the starting zone, raises the preloaded coral to the
// level, scores it, and stows.
func oneCoral(lvl subsystems.Level) func(*subsystems.Subsystems) command.Command {
	return func(s *subsystems.Subsystems) command.Command {
		return command.Named("OneCoral"+lvl.String(), command.Sequence(
			driveForward(s.Drivetrain, taxiDuration),
			commands.GoToElevatorLevel(s.Elevator, s.Arm, lvl),
			commands.OuttakeUntilCoralNotDetected(s.CoralRoller),
			commands.StowElevatorAndArm(s.Elevator, s.Arm),
		))
	}
}

// oneCoralAndAlgae scores the preloaded coral on L4, then drops to the
// L3 algae and sweeps it off the reef before stowing.
func oneCoralAndAlgae(s *subsystems.Subsystems) command.Command {
	return command.Named("OneCoralL4AndAlgae", command.Sequence(
		driveForward(s.Drivetrain, taxiDuration),
		commands.GoToElevatorLevel(s.Elevator, s.Arm, subsystems.L4),
		commands.OuttakeUntilCoralNotDetected(s.CoralRoller),
		command.WithTimeout(
			commands.RemoveAlgaeAtLevel(s.Elevator, s.Arm, s.AlgaeGrabber, subsystems.L3),
			algaeSweepFor,
		),
		commands.StopAndStowIntake(s.AlgaeGrabber),
		commands.StowElevatorAndArm(s.Elevator, s.Arm),
	))
}

// driveForward runs the drivetrain straight ahead for the duration.
func driveForward(d *subsystems.Drivetrain, duration time.Duration) command.Command {
	drive := command.Run("DriveForward", func() {
		d.Drive(taxiSpeed, 0, 0)
	}, d).OnEnd(func(bool) { d.Stop() })
	return command.WithTimeout(drive, duration)
}
