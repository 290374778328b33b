package subsystems

import (
	"math"

	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Branch selects which reef branch to line up on.
type Branch uint8

const (
	// BranchLeft is the left branch of the nearest reef face.
	BranchLeft Branch = iota + 1

	// BranchRight is the right branch.
	BranchRight
)

// String returns the branch name.
func (b Branch) String() string {
	switch b {
	case BranchLeft:
		return "LEFT"
	case BranchRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Offset returns the robot lateral offset from the reef face center
// that centers the end effector on the branch, in meters. Branches sit
// either side of the face apriltag.
func (b Branch) Offset() float64 {
	switch b {
	case BranchLeft:
		return -0.165
	case BranchRight:
		return 0.165
	default:
		return 0
	}
}

// AlignTolerance is how close the lateral offset must be to the branch
// target to count as aligned, in meters.
const AlignTolerance = 0.02

// Drivetrain is the holonomic drive base.
type Drivetrain struct {
	frontLeft  hal.Motor
	frontRight hal.Motor
	backLeft   hal.Motor
	backRight  hal.Motor
	gyro       hal.Gyro
	offset     hal.Encoder

	headingEntry *dashboard.Entry
	offsetEntry  *dashboard.Entry
}

// NewDrivetrain creates the drivetrain from its hardware.
func NewDrivetrain(d Devices) *Drivetrain {
	return &Drivetrain{
		frontLeft:  d.DriveFrontLeft,
		frontRight: d.DriveFrontRight,
		backLeft:   d.DriveBackLeft,
		backRight:  d.DriveBackRight,
		gyro:       d.Gyro,
		offset:     d.BranchOffset,
	}
}

// Name returns the subsystem name.
func (d *Drivetrain) Name() string { return "Drivetrain" }

// Drive commands the chassis. forward and strafe are field units in
// [-1, 1], rotate is turn rate in [-1, 1] counterclockwise positive.
func (d *Drivetrain) Drive(forward, strafe, rotate float64) {
	fl := forward + strafe - rotate
	fr := forward - strafe + rotate
	bl := forward - strafe - rotate
	br := forward + strafe + rotate

	// Normalize so no wheel exceeds full output.
	max := math.Max(math.Max(math.Abs(fl), math.Abs(fr)), math.Max(math.Abs(bl), math.Abs(br)))
	if max > 1 {
		fl /= max
		fr /= max
		bl /= max
		br /= max
	}

	d.frontLeft.Set(fl)
	d.frontRight.Set(fr)
	d.backLeft.Set(bl)
	d.backRight.Set(br)
}

// Stop halts all drive motors.
func (d *Drivetrain) Stop() {
	d.frontLeft.Stop()
	d.frontRight.Stop()
	d.backLeft.Stop()
	d.backRight.Stop()
}

// Heading returns the robot heading in degrees.
func (d *Drivetrain) Heading() float64 { return d.gyro.Heading() }

// ResetOrientation zeroes the gyro so the current heading becomes the
// field-forward reference.
func (d *Drivetrain) ResetOrientation() { d.gyro.Reset() }

// BranchOffset returns the robot's lateral offset from the nearest
// reef face center in meters, positive when the robot sits right of
// center.
func (d *Drivetrain) BranchOffset() float64 { return d.offset.Position() }

// AlignedTo reports whether the chassis is centered on the branch.
func (d *Drivetrain) AlignedTo(b Branch) bool {
	return math.Abs(d.BranchOffset()-b.Offset()) <= AlignTolerance
}

// InitDashboard registers drivetrain telemetry.
func (d *Drivetrain) InitDashboard(tab *dashboard.Tab) {
	d.headingEntry = tab.AddNumber("Heading", 0).WithWidget("gyro")
	d.offsetEntry = tab.AddNumber("Branch Offset", 0)
}

// Periodic publishes telemetry.
func (d *Drivetrain) Periodic() {
	if d.headingEntry != nil {
		_ = d.headingEntry.SetFloat(d.Heading())
	}
	if d.offsetEntry != nil {
		_ = d.offsetEntry.SetFloat(d.BranchOffset())
	}
}

// Disable stops the drive base.
func (d *Drivetrain) Disable() { d.Stop() }
