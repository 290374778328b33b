package hid

import (
	"math"

	"github.com/reef-robotics/reefbot/pkg/command"
)

// Xbox controller button numbers.
const (
	ButtonA           Button = 1
	ButtonB           Button = 2
	ButtonX           Button = 3
	ButtonY           Button = 4
	ButtonLeftBumper  Button = 5
	ButtonRightBumper Button = 6
	ButtonBack        Button = 7
	ButtonStart       Button = 8
	ButtonLeftStick   Button = 9
	ButtonRightStick  Button = 10
)

// Xbox controller axis numbers.
const (
	AxisLeftX        Axis = 0
	AxisLeftY        Axis = 1
	AxisLeftTrigger  Axis = 2
	AxisRightTrigger Axis = 3
	AxisRightX       Axis = 4
	AxisRightY       Axis = 5
)

// DefaultDeadband is the default stick deadband.
const DefaultDeadband = 0.08

// XboxController overlays the Xbox layout on a gamepad and hands out
// scheduler triggers per control. Axis accessors apply a scaled deadband
// so worn sticks that don't return to exactly zero read as zero.
type XboxController struct {
	pad      *Gamepad
	sched    *command.Scheduler
	deadband float64
}

// NewXboxController creates an Xbox controller on the given operator
// port, with triggers bound to the given scheduler.
func NewXboxController(sched *command.Scheduler, port int) *XboxController {
	return &XboxController{
		pad:      NewGamepad(port),
		sched:    sched,
		deadband: DefaultDeadband,
	}
}

// Gamepad returns the underlying gamepad for input sources to write to.
func (c *XboxController) Gamepad() *Gamepad {
	return c.pad
}

// SetDeadband sets the stick deadband applied by the axis accessors.
func (c *XboxController) SetDeadband(deadband float64) {
	c.deadband = deadband
}

// button returns a trigger for a raw button.
func (c *XboxController) button(b Button) *command.Trigger {
	return c.sched.Trigger(func() bool { return c.pad.Button(b) })
}

// A returns a trigger for the A button.
func (c *XboxController) A() *command.Trigger { return c.button(ButtonA) }

// B returns a trigger for the B button.
func (c *XboxController) B() *command.Trigger { return c.button(ButtonB) }

// X returns a trigger for the X button.
func (c *XboxController) X() *command.Trigger { return c.button(ButtonX) }

// Y returns a trigger for the Y button.
func (c *XboxController) Y() *command.Trigger { return c.button(ButtonY) }

// LeftBumper returns a trigger for the left bumper.
func (c *XboxController) LeftBumper() *command.Trigger { return c.button(ButtonLeftBumper) }

// RightBumper returns a trigger for the right bumper.
func (c *XboxController) RightBumper() *command.Trigger { return c.button(ButtonRightBumper) }

// Back returns a trigger for the back button.
func (c *XboxController) Back() *command.Trigger { return c.button(ButtonBack) }

// Start returns a trigger for the start button.
func (c *XboxController) Start() *command.Trigger { return c.button(ButtonStart) }

// pov returns a trigger active while the POV hat points at the given angle.
func (c *XboxController) povTrigger(degrees int) *command.Trigger {
	return c.sched.Trigger(func() bool { return c.pad.POV() == degrees })
}

// POVUp returns a trigger for the POV hat up direction.
func (c *XboxController) POVUp() *command.Trigger { return c.povTrigger(0) }

// POVRight returns a trigger for the POV hat right direction.
func (c *XboxController) POVRight() *command.Trigger { return c.povTrigger(90) }

// POVDown returns a trigger for the POV hat down direction.
func (c *XboxController) POVDown() *command.Trigger { return c.povTrigger(180) }

// POVLeft returns a trigger for the POV hat left direction.
func (c *XboxController) POVLeft() *command.Trigger { return c.povTrigger(270) }

// applyDeadband zeroes small inputs and rescales the rest so output is
// continuous from the deadband edge to full deflection.
func applyDeadband(value, deadband float64) float64 {
	if math.Abs(value) < deadband {
		return 0
	}
	sign := 1.0
	if value < 0 {
		sign = -1.0
	}
	return sign * (math.Abs(value) - deadband) / (1 - deadband)
}

// LeftX returns the left stick X axis with deadband applied.
func (c *XboxController) LeftX() float64 {
	return applyDeadband(c.pad.Axis(AxisLeftX), c.deadband)
}

// LeftY returns the left stick Y axis with deadband applied.
func (c *XboxController) LeftY() float64 {
	return applyDeadband(c.pad.Axis(AxisLeftY), c.deadband)
}

// RightX returns the right stick X axis with deadband applied.
func (c *XboxController) RightX() float64 {
	return applyDeadband(c.pad.Axis(AxisRightX), c.deadband)
}

// RightY returns the right stick Y axis with deadband applied.
func (c *XboxController) RightY() float64 {
	return applyDeadband(c.pad.Axis(AxisRightY), c.deadband)
}

// LeftTriggerAxis returns the left analog trigger value (0 to 1).
func (c *XboxController) LeftTriggerAxis() float64 {
	return c.pad.Axis(AxisLeftTrigger)
}

// RightTriggerAxis returns the right analog trigger value (0 to 1).
func (c *XboxController) RightTriggerAxis() float64 {
	return c.pad.Axis(AxisRightTrigger)
}
