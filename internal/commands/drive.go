package commands

import (
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/hid"
)

// alignKP converts branch offset error in meters to strafe output.
const alignKP = 3.0

// DriveUsingController is the default drivetrain command. Stick axes
// follow the driver station convention: pushing forward reads
// negative, so forward and strafe are negated into robot units.
func DriveUsingController(d *subsystems.Drivetrain, ctl *hid.XboxController) command.Command {
	return command.Run("DriveUsingController", func() {
		d.Drive(-ctl.LeftY(), -ctl.LeftX(), -ctl.RightX())
	}, d).OnEnd(func(bool) { d.Stop() })
}

// ResetOrientation zeroes the gyro so the robot's current heading
// becomes field-forward. It touches no motors, so it does not require
// the drivetrain and leaves the default drive command running.
func ResetOrientation(d *subsystems.Drivetrain) command.Command {
	return command.RunOnce("ResetOrientation", d.ResetOrientation)
}

// AlignToBranch strafes the robot onto the given reef branch. It never
// finishes on its own; bind it WhileTrue so releasing the button hands
// the drivetrain back to the driver.
func AlignToBranch(d *subsystems.Drivetrain, b subsystems.Branch) command.Command {
	name := "AlignToLeftBranch"
	if b == subsystems.BranchRight {
		name = "AlignToRightBranch"
	}
	return command.NewFunc(name, d).
		OnExecute(func() {
			err := b.Offset() - d.BranchOffset()
			d.Drive(0, alignKP*err, 0)
		}).
		OnEnd(func(bool) { d.Stop() })
}
