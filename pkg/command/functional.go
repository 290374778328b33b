package command

import (
	"time"
)

// FuncCommand is a Command assembled from closures. The zero value is a
// command that finishes immediately and does nothing; use the New* and
// builder functions to attach behavior.
type FuncCommand struct {
	name         string
	requirements []Subsystem
	onInitialize func()
	onExecute    func()
	onEnd        func(interrupted bool)
	finished     func() bool
	whenDisabled bool
	now          func() time.Time
}

// NewFunc creates an empty functional command with the given name and
// requirements. Attach behavior with the On*/Until builder methods.
func NewFunc(name string, requirements ...Subsystem) *FuncCommand {
	return &FuncCommand{
		name:         name,
		requirements: requirements,
		now:          time.Now,
	}
}

// Run creates a command that calls run every tick and never finishes on
// its own. Use WhileTrue bindings or WithTimeout to bound it.
func Run(name string, run func(), requirements ...Subsystem) *FuncCommand {
	return NewFunc(name, requirements...).OnExecute(run)
}

// RunOnce creates a command that calls run once and finishes immediately.
func RunOnce(name string, run func(), requirements ...Subsystem) *FuncCommand {
	c := NewFunc(name, requirements...).OnInitialize(run)
	c.finished = func() bool { return true }
	return c
}

// RunEnd creates a command that calls run every tick and end when it is
// interrupted. It never finishes on its own.
func RunEnd(name string, run func(), end func(), requirements ...Subsystem) *FuncCommand {
	return NewFunc(name, requirements...).
		OnExecute(run).
		OnEnd(func(bool) { end() })
}

// StartEnd creates a command that calls start once, then end when it is
// interrupted. It never finishes on its own.
func StartEnd(name string, start func(), end func(), requirements ...Subsystem) *FuncCommand {
	return NewFunc(name, requirements...).
		OnInitialize(start).
		OnEnd(func(bool) { end() })
}

// WaitUntil creates a command that finishes when the condition becomes
// true. It requires no subsystems.
func WaitUntil(name string, condition func() bool) *FuncCommand {
	c := NewFunc(name)
	c.finished = condition
	return c
}

// Wait creates a command that finishes after the given duration,
// measured on the scheduler's clock once scheduled.
func Wait(d time.Duration) *FuncCommand {
	var deadline time.Time
	c := NewFunc("Wait")
	c.onInitialize = func() { deadline = c.now().Add(d) }
	c.finished = func() bool { return !c.now().Before(deadline) }
	return c
}

// Idle creates a command that holds the given subsystems and does
// nothing until interrupted.
func Idle(requirements ...Subsystem) *FuncCommand {
	return NewFunc("Idle", requirements...)
}

// OnInitialize sets the function called when the command is scheduled.
func (c *FuncCommand) OnInitialize(fn func()) *FuncCommand {
	c.onInitialize = fn
	return c
}

// OnExecute sets the function called every tick.
func (c *FuncCommand) OnExecute(fn func()) *FuncCommand {
	c.onExecute = fn
	return c
}

// OnEnd sets the function called when the command ends.
func (c *FuncCommand) OnEnd(fn func(interrupted bool)) *FuncCommand {
	c.onEnd = fn
	return c
}

// Until sets the finish condition.
func (c *FuncCommand) Until(condition func() bool) *FuncCommand {
	c.finished = condition
	return c
}

// WhenDisabled marks the command as allowed to run while the robot is
// disabled.
func (c *FuncCommand) WhenDisabled() *FuncCommand {
	c.whenDisabled = true
	return c
}

// Name returns the command name.
func (c *FuncCommand) Name() string { return c.name }

// Requirements returns the required subsystems.
func (c *FuncCommand) Requirements() []Subsystem { return c.requirements }

// Initialize calls the initialize closure if set.
func (c *FuncCommand) Initialize() {
	if c.onInitialize != nil {
		c.onInitialize()
	}
}

// Execute calls the execute closure if set.
func (c *FuncCommand) Execute() {
	if c.onExecute != nil {
		c.onExecute()
	}
}

// IsFinished evaluates the finish condition. A command without one never
// finishes on its own.
func (c *FuncCommand) IsFinished() bool {
	if c.finished == nil {
		return false
	}
	return c.finished()
}

// End calls the end closure if set.
func (c *FuncCommand) End(interrupted bool) {
	if c.onEnd != nil {
		c.onEnd(interrupted)
	}
}

// RunsWhenDisabled reports whether the command may run while disabled.
func (c *FuncCommand) RunsWhenDisabled() bool { return c.whenDisabled }

func (c *FuncCommand) useClock(now func() time.Time) { c.now = now }

// Compile-time interface satisfaction check.
var _ Command = (*FuncCommand)(nil)
var _ DisabledRunner = (*FuncCommand)(nil)
