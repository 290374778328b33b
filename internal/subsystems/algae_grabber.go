package subsystems

import (
	"math"

	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Algae grabber constants.
const (
	algaeIntakeSpeed  = 0.7
	algaeOuttakeSpeed = -0.7
	algaeHoldSpeed    = 0.1

	// AlgaePivotStowAngle is the pivot travel position in degrees.
	AlgaePivotStowAngle = 0.0

	// AlgaePivotDeployAngle is the pivot intake position in degrees.
	AlgaePivotDeployAngle = 95.0

	// AlgaePivotTolerance is the pivot at-target window in degrees.
	AlgaePivotTolerance = 3.0

	algaePivotKP = 0.04
)

// AlgaeGrabber is the pivoting roller intake for algae. The pivot runs
// proportional control toward a setpoint from Periodic; the roller is
// open loop. A proximity sensor in the grabber mouth detects a held
// ball.
type AlgaeGrabber struct {
	roller       hal.Motor
	pivot        hal.Motor
	pivotEncoder hal.Encoder
	sensor       hal.DigitalInput

	pivotTarget float64
	holding     bool

	heldEntry  *dashboard.Entry
	pivotEntry *dashboard.Entry
}

// NewAlgaeGrabber creates the grabber from its hardware.
func NewAlgaeGrabber(d Devices) *AlgaeGrabber {
	return &AlgaeGrabber{
		roller:       d.AlgaeRoller,
		pivot:        d.AlgaePivotMotor,
		pivotEncoder: d.AlgaePivotEncoder,
		sensor:       d.AlgaeSensor,
		pivotTarget:  AlgaePivotStowAngle,
	}
}

// Name returns the subsystem name.
func (g *AlgaeGrabber) Name() string { return "AlgaeGrabber" }

// Intake deploys the pivot and runs the roller inward.
func (g *AlgaeGrabber) Intake() {
	g.pivotTarget = AlgaePivotDeployAngle
	g.holding = false
	g.roller.Set(algaeIntakeSpeed)
}

// Outtake deploys the pivot and runs the roller outward.
func (g *AlgaeGrabber) Outtake() {
	g.pivotTarget = AlgaePivotDeployAngle
	g.holding = false
	g.roller.Set(algaeOuttakeSpeed)
}

// StopAndStow stows the pivot. While a ball is held the roller keeps a
// light grip; otherwise it stops.
func (g *AlgaeGrabber) StopAndStow() {
	g.pivotTarget = AlgaePivotStowAngle
	if g.HasAlgae() {
		g.holding = true
		g.roller.Set(algaeHoldSpeed)
	} else {
		g.holding = false
		g.roller.Stop()
	}
}

// HasAlgae reports whether the proximity sensor sees a held ball.
func (g *AlgaeGrabber) HasAlgae() bool { return g.sensor.Get() }

// PivotAngle returns the pivot angle in degrees.
func (g *AlgaeGrabber) PivotAngle() float64 { return g.pivotEncoder.Position() }

// PivotAtTarget reports whether the pivot reached its setpoint.
func (g *AlgaeGrabber) PivotAtTarget() bool {
	return math.Abs(g.PivotAngle()-g.pivotTarget) <= AlgaePivotTolerance
}

// Stop halts the roller and pivot without changing the setpoint logic.
func (g *AlgaeGrabber) Stop() {
	g.holding = false
	g.roller.Stop()
	g.pivot.Stop()
}

// InitDashboard registers grabber telemetry.
func (g *AlgaeGrabber) InitDashboard(tab *dashboard.Tab) {
	g.heldEntry = tab.AddBoolean("Has Algae", false)
	g.pivotEntry = tab.AddNumber("Algae Pivot", 0)
}

// Periodic runs the pivot control loop and publishes telemetry.
func (g *AlgaeGrabber) Periodic() {
	g.pivot.Set(algaePivotKP * (g.pivotTarget - g.PivotAngle()))
	if g.heldEntry != nil {
		_ = g.heldEntry.SetBool(g.HasAlgae())
	}
	if g.pivotEntry != nil {
		_ = g.pivotEntry.SetFloat(g.PivotAngle())
	}
}

// Disable stops the roller and pivot.
func (g *AlgaeGrabber) Disable() { g.Stop() }
