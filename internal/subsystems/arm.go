package subsystems

import (
	"math"

	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Arm angle presets in degrees. Zero is straight down.
const (
	// ArmStowAngle is the travel position.
	ArmStowAngle = 0.0

	// ArmScoreAngle tilts the end effector for placing coral.
	ArmScoreAngle = 35.0

	// ArmAlgaeSweepAngle reaches between branches to knock algae out.
	ArmAlgaeSweepAngle = 70.0

	// ArmTolerance is the at-target window in degrees.
	ArmTolerance = 2.0

	armKP = 0.05
)

// Arm is the coral arm on the elevator carriage. It runs proportional
// control toward an angle setpoint from Periodic.
type Arm struct {
	motor   hal.Motor
	encoder hal.Encoder

	target      float64
	controlling bool

	angleEntry *dashboard.Entry
}

// NewArm creates the arm from its hardware.
func NewArm(d Devices) *Arm {
	return &Arm{
		motor:   d.ArmMotor,
		encoder: d.ArmEncoder,
	}
}

// Name returns the subsystem name.
func (a *Arm) Name() string { return "Arm" }

// GoToAngle sets the angle setpoint in degrees and enables control.
func (a *Arm) GoToAngle(deg float64) {
	a.target = deg
	a.controlling = true
}

// Stow sets the setpoint to the travel position.
func (a *Arm) Stow() { a.GoToAngle(ArmStowAngle) }

// Angle returns the current angle in degrees.
func (a *Arm) Angle() float64 { return a.encoder.Position() }

// AtTarget reports whether the arm is within tolerance of its
// setpoint. It is false while control is off.
func (a *Arm) AtTarget() bool {
	return a.controlling && math.Abs(a.Angle()-a.target) <= ArmTolerance
}

// Stop turns control off and stops the motor.
func (a *Arm) Stop() {
	a.controlling = false
	a.motor.Stop()
}

// InitDashboard registers arm telemetry.
func (a *Arm) InitDashboard(tab *dashboard.Tab) {
	a.angleEntry = tab.AddNumber("Arm Angle", 0)
}

// Periodic runs the angle control loop and publishes telemetry.
func (a *Arm) Periodic() {
	if a.controlling {
		a.motor.Set(armKP * (a.target - a.Angle()))
	}
	if a.angleEntry != nil {
		_ = a.angleEntry.SetFloat(a.Angle())
	}
}

// Disable turns control off.
func (a *Arm) Disable() { a.Stop() }
