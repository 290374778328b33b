package command

import (
	"time"

	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

// Scheduler runs commands cooperatively and arbitrates subsystem access.
// All methods must be called from the robot loop goroutine; see the
// package documentation.
type Scheduler struct {
	logger robotlog.Logger
	phase  robotlog.Phase
	now    func() time.Time

	// Registered subsystems, in registration order. Order fixes the
	// periodic call order and default-command start order.
	subsystems []Subsystem
	defaults   map[Subsystem]Command

	// Scheduled commands in schedule order, plus the subsystem ownership
	// table used for arbitration.
	order        []Command
	scheduled    map[Command]bool
	requirements map[Subsystem]Command

	bindings []*binding
	disabled bool

	// Re-entrancy: commands scheduled or cancelled from inside a command
	// body during Run are queued and applied after the command pass.
	inRunLoop  bool
	toSchedule []Command
	toCancel   []Command
}

// NewScheduler creates a scheduler. A nil logger disables logging.
func NewScheduler(logger robotlog.Logger) *Scheduler {
	if logger == nil {
		logger = robotlog.NoopLogger{}
	}
	return &Scheduler{
		logger:       logger,
		now:          time.Now,
		defaults:     make(map[Subsystem]Command),
		scheduled:    make(map[Command]bool),
		requirements: make(map[Subsystem]Command),
	}
}

// SetClock replaces the scheduler's time source. Timed commands and
// debounce triggers follow it, so tests can step time explicitly.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// SetPhase records the current match phase for log events.
func (s *Scheduler) SetPhase(phase robotlog.Phase) {
	s.phase = phase
}

// RegisterSubsystem registers subsystems with the scheduler. Registered
// subsystems get their Periodic called every tick and may carry a
// default command.
func (s *Scheduler) RegisterSubsystem(subsystems ...Subsystem) {
	s.subsystems = append(s.subsystems, subsystems...)
}

// SetDefaultCommand sets the command to run on a subsystem whenever no
// other command requires it. The command must require the subsystem.
func (s *Scheduler) SetDefaultCommand(sub Subsystem, c Command) error {
	if c == nil {
		return ErrNilCommand
	}
	for _, r := range c.Requirements() {
		if r == sub {
			s.defaults[sub] = c
			return nil
		}
	}
	return ErrNotRequired
}

// Schedule schedules commands. Scheduling interrupts any running command
// that shares a required subsystem. While the robot is disabled only
// commands marked to run when disabled start.
func (s *Scheduler) Schedule(commands ...Command) {
	for _, c := range commands {
		if c == nil {
			continue
		}
		if s.inRunLoop {
			s.toSchedule = append(s.toSchedule, c)
			continue
		}
		s.schedule(c)
	}
}

func (s *Scheduler) schedule(c Command) {
	if s.scheduled[c] {
		return
	}
	if s.disabled && !runsWhenDisabled(c) {
		return
	}

	// Interrupt whoever holds a required subsystem.
	for _, r := range c.Requirements() {
		if holder, ok := s.requirements[r]; ok {
			s.remove(holder, true, c.Name())
		}
	}

	s.scheduled[c] = true
	s.order = append(s.order, c)
	for _, r := range c.Requirements() {
		s.requirements[r] = c
	}
	// The indirection keeps commands on the current source across a
	// later SetClock.
	forwardClock(func() time.Time { return s.now() }, c)
	c.Initialize()
	s.logCommand(c, robotlog.ActionScheduled, "")
}

// Cancel interrupts commands if they are scheduled.
func (s *Scheduler) Cancel(commands ...Command) {
	for _, c := range commands {
		if c == nil {
			continue
		}
		if s.inRunLoop {
			s.toCancel = append(s.toCancel, c)
			continue
		}
		s.remove(c, true, "")
	}
}

// CancelAll interrupts every scheduled command, including defaults.
// Defaults restart on the next tick.
func (s *Scheduler) CancelAll() {
	s.Cancel(append([]Command(nil), s.order...)...)
}

// IsScheduled reports whether the command is currently scheduled.
func (s *Scheduler) IsScheduled(c Command) bool {
	return s.scheduled[c]
}

// SetDisabled sets the robot's disabled state. Entering the disabled
// state cancels every command not marked to run when disabled.
func (s *Scheduler) SetDisabled(disabled bool) {
	s.disabled = disabled
	if !disabled {
		return
	}
	for _, c := range append([]Command(nil), s.order...) {
		if !runsWhenDisabled(c) {
			s.remove(c, true, "")
		}
	}
}

// Disabled reports whether the scheduler is in the disabled state.
func (s *Scheduler) Disabled() bool {
	return s.disabled
}

// Run performs one scheduler tick: subsystem periodics, trigger polling,
// command execution, and default-command scheduling.
func (s *Scheduler) Run() {
	for _, sub := range s.subsystems {
		sub.Periodic()
	}

	s.pollBindings()

	// Command pass. Commands scheduled or cancelled by command bodies
	// are deferred to after the pass.
	s.inRunLoop = true
	for _, c := range append([]Command(nil), s.order...) {
		if !s.scheduled[c] {
			continue
		}
		if s.disabled && !runsWhenDisabled(c) {
			s.remove(c, true, "")
			continue
		}
		c.Execute()
		if c.IsFinished() {
			s.remove(c, false, "")
		}
	}
	s.inRunLoop = false

	for _, c := range s.toCancel {
		s.remove(c, true, "")
	}
	s.toCancel = s.toCancel[:0]
	for _, c := range s.toSchedule {
		s.schedule(c)
	}
	s.toSchedule = s.toSchedule[:0]

	// Start defaults on idle subsystems.
	for _, sub := range s.subsystems {
		if _, held := s.requirements[sub]; held {
			continue
		}
		if d, ok := s.defaults[sub]; ok {
			s.schedule(d)
		}
	}
}

// addBinding registers a trigger binding. The condition is sampled
// immediately so a condition already true at bind time does not produce
// a spurious rising edge.
func (s *Scheduler) addBinding(kind bindingKind, cond func() bool, c Command) {
	s.bindings = append(s.bindings, &binding{
		kind: kind,
		cond: cond,
		cmd:  c,
		last: cond(),
	})
}

// pollBindings samples every trigger condition and applies edge actions.
func (s *Scheduler) pollBindings() {
	for _, b := range s.bindings {
		cur := b.cond()
		rising := cur && !b.last
		falling := !cur && b.last
		b.last = cur

		switch b.kind {
		case bindOnTrue:
			if rising {
				s.schedule(b.cmd)
			}
		case bindOnFalse:
			if falling {
				s.schedule(b.cmd)
			}
		case bindWhileTrue:
			if rising {
				s.schedule(b.cmd)
			}
			if falling {
				s.remove(b.cmd, true, "")
			}
		case bindToggleOnTrue:
			if rising {
				if s.scheduled[b.cmd] {
					s.remove(b.cmd, true, "")
				} else {
					s.schedule(b.cmd)
				}
			}
		}
	}
}

// remove unschedules a command, calling End and releasing requirements.
func (s *Scheduler) remove(c Command, interrupted bool, interruptedBy string) {
	if !s.scheduled[c] {
		return
	}
	delete(s.scheduled, c)
	for i, o := range s.order {
		if o == c {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for _, r := range c.Requirements() {
		if s.requirements[r] == c {
			delete(s.requirements, r)
		}
	}
	c.End(interrupted)

	action := robotlog.ActionFinished
	if interrupted {
		action = robotlog.ActionInterrupted
	}
	s.logCommand(c, action, interruptedBy)
}

func (s *Scheduler) logCommand(c Command, action robotlog.CommandAction, interruptedBy string) {
	s.logger.Log(robotlog.Event{
		Timestamp: s.now(),
		Phase:     s.phase,
		Category:  robotlog.CategoryCommand,
		Source:    "scheduler",
		Command: &robotlog.CommandEvent{
			Name:          c.Name(),
			Action:        action,
			Requirements:  SubsystemNames(c.Requirements()),
			InterruptedBy: interruptedBy,
		},
	})
}
