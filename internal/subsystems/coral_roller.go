package subsystems

import (
	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Coral roller speeds.
const (
	coralIntakeSpeed  = 0.6
	coralOuttakeSpeed = -0.4
)

// CoralRoller is the end-effector roller that holds and scores coral.
// A beam break across the roller throat detects a held piece.
type CoralRoller struct {
	motor  hal.Motor
	sensor hal.DigitalInput

	heldEntry *dashboard.Entry
}

// NewCoralRoller creates the roller from its hardware.
func NewCoralRoller(d Devices) *CoralRoller {
	return &CoralRoller{
		motor:  d.CoralMotor,
		sensor: d.CoralSensor,
	}
}

// Name returns the subsystem name.
func (c *CoralRoller) Name() string { return "CoralRoller" }

// Intake runs the roller inward.
func (c *CoralRoller) Intake() { c.motor.Set(coralIntakeSpeed) }

// Outtake runs the roller outward to score.
func (c *CoralRoller) Outtake() { c.motor.Set(coralOuttakeSpeed) }

// Stop halts the roller.
func (c *CoralRoller) Stop() { c.motor.Stop() }

// HasCoral reports whether the beam break sees a held piece.
func (c *CoralRoller) HasCoral() bool { return c.sensor.Get() }

// InitDashboard registers roller telemetry.
func (c *CoralRoller) InitDashboard(tab *dashboard.Tab) {
	c.heldEntry = tab.AddBoolean("Has Coral", false)
}

// Periodic publishes telemetry.
func (c *CoralRoller) Periodic() {
	if c.heldEntry != nil {
		_ = c.heldEntry.SetBool(c.HasCoral())
	}
}

// Disable stops the roller.
func (c *CoralRoller) Disable() { c.Stop() }
