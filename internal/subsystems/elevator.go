package subsystems

import (
	"fmt"
	"math"

	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Level is a coral scoring level on the reef.
type Level uint8

const (
	// L1 is the trough.
	L1 Level = iota + 1
	// L2 is the low branch.
	L2
	// L3 is the mid branch.
	L3
	// L4 is the high branch.
	L4
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	case L4:
		return "L4"
	default:
		return fmt.Sprintf("LEVEL(%d)", uint8(l))
	}
}

// Height returns the elevator height for scoring at the level, in
// meters.
func (l Level) Height() float64 {
	switch l {
	case L1:
		return 0.46
	case L2:
		return 0.81
	case L3:
		return 1.21
	case L4:
		return 1.83
	default:
		return 0
	}
}

// AlgaeHeight returns the elevator height for reaching algae lodged
// between the branches at the level. Algae only sits at L2 and L3.
func (l Level) AlgaeHeight() float64 {
	switch l {
	case L2:
		return 0.95
	case L3:
		return 1.35
	default:
		return 0
	}
}

// Elevator control constants.
const (
	// ElevatorStowHeight is the travel position, in meters.
	ElevatorStowHeight = 0.0

	// ElevatorMaxHeight is the mechanical limit, in meters.
	ElevatorMaxHeight = 1.9

	// ElevatorTolerance is the at-target window, in meters.
	ElevatorTolerance = 0.02

	elevatorKP = 4.0
)

// Elevator is the coral elevator. It runs proportional control toward
// a height setpoint from Periodic.
type Elevator struct {
	motor   hal.Motor
	encoder hal.Encoder

	target      float64
	controlling bool

	heightEntry *dashboard.Entry
	targetEntry *dashboard.Entry
}

// NewElevator creates the elevator from its hardware.
func NewElevator(d Devices) *Elevator {
	return &Elevator{
		motor:   d.ElevatorMotor,
		encoder: d.ElevatorEncoder,
	}
}

// Name returns the subsystem name.
func (e *Elevator) Name() string { return "Elevator" }

// GoToHeight sets the height setpoint in meters, clamped to the
// mechanical range, and enables closed-loop control.
func (e *Elevator) GoToHeight(m float64) {
	if m < 0 {
		m = 0
	} else if m > ElevatorMaxHeight {
		m = ElevatorMaxHeight
	}
	e.target = m
	e.controlling = true
}

// GoToLevel sets the setpoint to the level's scoring height.
func (e *Elevator) GoToLevel(l Level) { e.GoToHeight(l.Height()) }

// Stow sets the setpoint to the travel position.
func (e *Elevator) Stow() { e.GoToHeight(ElevatorStowHeight) }

// Height returns the current height in meters.
func (e *Elevator) Height() float64 { return e.encoder.Position() }

// Target returns the current setpoint in meters.
func (e *Elevator) Target() float64 { return e.target }

// AtTarget reports whether the elevator is within tolerance of its
// setpoint. It is false while control is off.
func (e *Elevator) AtTarget() bool {
	return e.controlling && math.Abs(e.Height()-e.target) <= ElevatorTolerance
}

// Stop turns control off and stops the motor.
func (e *Elevator) Stop() {
	e.controlling = false
	e.motor.Stop()
}

// InitDashboard registers elevator telemetry.
func (e *Elevator) InitDashboard(tab *dashboard.Tab) {
	e.heightEntry = tab.AddNumber("Elevator Height", 0)
	e.targetEntry = tab.AddNumber("Elevator Target", 0)
}

// Periodic runs the height control loop and publishes telemetry.
func (e *Elevator) Periodic() {
	if e.controlling {
		out := elevatorKP * (e.target - e.Height())
		e.motor.Set(out)
	}
	if e.heightEntry != nil {
		_ = e.heightEntry.SetFloat(e.Height())
	}
	if e.targetEntry != nil {
		_ = e.targetEntry.SetFloat(e.target)
	}
}

// Disable turns control off so the elevator does not move on re-enable.
func (e *Elevator) Disable() { e.Stop() }
