package command

import (
	"time"
)

// Trigger is an edge-detected boolean condition owned by a scheduler.
// Binding methods attach commands that start or stop on condition edges;
// the scheduler polls all bindings once per tick, before running
// commands.
type Trigger struct {
	s    *Scheduler
	cond func() bool
}

// Trigger creates a trigger on this scheduler from an arbitrary
// condition. The condition is sampled once per tick.
func (s *Scheduler) Trigger(cond func() bool) *Trigger {
	return &Trigger{s: s, cond: cond}
}

// bindingKind selects the edge behavior of a binding.
type bindingKind uint8

const (
	bindOnTrue bindingKind = iota
	bindOnFalse
	bindWhileTrue
	bindToggleOnTrue
)

// binding couples a condition edge to a command.
type binding struct {
	kind bindingKind
	cond func() bool
	cmd  Command
	last bool
}

// OnTrue schedules the command on the condition's rising edge.
// Returns the trigger for chaining.
func (t *Trigger) OnTrue(c Command) *Trigger {
	t.s.addBinding(bindOnTrue, t.cond, c)
	return t
}

// OnFalse schedules the command on the condition's falling edge.
func (t *Trigger) OnFalse(c Command) *Trigger {
	t.s.addBinding(bindOnFalse, t.cond, c)
	return t
}

// WhileTrue schedules the command on the rising edge and cancels it on
// the falling edge.
func (t *Trigger) WhileTrue(c Command) *Trigger {
	t.s.addBinding(bindWhileTrue, t.cond, c)
	return t
}

// ToggleOnTrue toggles the command on each rising edge: schedules it if
// it is not running, cancels it if it is.
func (t *Trigger) ToggleOnTrue(c Command) *Trigger {
	t.s.addBinding(bindToggleOnTrue, t.cond, c)
	return t
}

// And returns a trigger that is active when both triggers are.
func (t *Trigger) And(other *Trigger) *Trigger {
	a, b := t.cond, other.cond
	return &Trigger{s: t.s, cond: func() bool { return a() && b() }}
}

// Or returns a trigger that is active when either trigger is.
func (t *Trigger) Or(other *Trigger) *Trigger {
	a, b := t.cond, other.cond
	return &Trigger{s: t.s, cond: func() bool { return a() || b() }}
}

// Negate returns a trigger with the inverted condition.
func (t *Trigger) Negate() *Trigger {
	c := t.cond
	return &Trigger{s: t.s, cond: func() bool { return !c() }}
}

// Debounce returns a trigger that only changes state after the underlying
// condition has held its new value for the given duration. Used for noisy
// sensor inputs (beam breaks bouncing as a game piece settles).
func (t *Trigger) Debounce(d time.Duration) *Trigger {
	cond := t.cond
	now := t.s.now
	state := cond()
	flipAt := time.Time{}
	return &Trigger{s: t.s, cond: func() bool {
		cur := cond()
		if cur == state {
			flipAt = time.Time{}
			return state
		}
		if flipAt.IsZero() {
			flipAt = now().Add(d)
			return state
		}
		if now().Before(flipAt) {
			return state
		}
		state = cur
		flipAt = time.Time{}
		return state
	}}
}
