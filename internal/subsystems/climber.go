package subsystems

import (
	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// climbSpeed is the winch output while climbing.
const climbSpeed = 1.0

// Climber is the end-game cage climber. A limit switch marks the
// fully-climbed winch position.
type Climber struct {
	winch hal.Motor
	limit hal.DigitalInput

	climbedEntry *dashboard.Entry
}

// NewClimber creates the climber from its hardware.
func NewClimber(d Devices) *Climber {
	return &Climber{
		winch: d.ClimberMotor,
		limit: d.ClimberLimit,
	}
}

// Name returns the subsystem name.
func (c *Climber) Name() string { return "Climber" }

// Climb winds the winch. The caller stops at the limit.
func (c *Climber) Climb() {
	if c.AtLimit() {
		c.winch.Stop()
		return
	}
	c.winch.Set(climbSpeed)
}

// Stop halts the winch.
func (c *Climber) Stop() { c.winch.Stop() }

// AtLimit reports whether the winch reached the fully-climbed
// position.
func (c *Climber) AtLimit() bool { return c.limit.Get() }

// InitDashboard registers climber telemetry.
func (c *Climber) InitDashboard(tab *dashboard.Tab) {
	c.climbedEntry = tab.AddBoolean("Climbed", false)
}

// Periodic publishes telemetry.
func (c *Climber) Periodic() {
	if c.climbedEntry != nil {
		_ = c.climbedEntry.SetBool(c.AtLimit())
	}
}

// Disable stops the winch. The ratchet holds the robot if it is
// already hanging.
func (c *Climber) Disable() { c.Stop() }
