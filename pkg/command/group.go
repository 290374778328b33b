package command

import (
	"strings"
	"time"
)

// unionRequirements merges the requirements of the given commands,
// preserving first-seen order.
func unionRequirements(commands []Command) []Subsystem {
	var out []Subsystem
	seen := make(map[Subsystem]bool)
	for _, c := range commands {
		for _, r := range c.Requirements() {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// allRunWhenDisabled reports whether every member command may run while
// the robot is disabled. A group may only run disabled if all members may.
func allRunWhenDisabled(commands []Command) bool {
	for _, c := range commands {
		if !runsWhenDisabled(c) {
			return false
		}
	}
	return true
}

func joinNames(kind string, commands []Command) string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name()
	}
	return kind + "(" + strings.Join(names, ", ") + ")"
}

// sequenceCommand runs its members one after another.
type sequenceCommand struct {
	commands []Command
	reqs     []Subsystem
	current  int
}

// Sequence creates a command that runs the given commands in order,
// finishing when the last one finishes. The group requires the union of
// its members' requirements for its whole duration.
func Sequence(commands ...Command) Command {
	return &sequenceCommand{
		commands: commands,
		reqs:     unionRequirements(commands),
	}
}

func (s *sequenceCommand) Name() string              { return joinNames("Sequence", s.commands) }
func (s *sequenceCommand) Requirements() []Subsystem { return s.reqs }
func (s *sequenceCommand) RunsWhenDisabled() bool    { return allRunWhenDisabled(s.commands) }

func (s *sequenceCommand) useClock(now func() time.Time) { forwardClock(now, s.commands...) }

func (s *sequenceCommand) Initialize() {
	s.current = 0
	if len(s.commands) > 0 {
		s.commands[0].Initialize()
	}
}

func (s *sequenceCommand) Execute() {
	if s.current >= len(s.commands) {
		return
	}
	cmd := s.commands[s.current]
	cmd.Execute()
	if cmd.IsFinished() {
		cmd.End(false)
		s.current++
		if s.current < len(s.commands) {
			s.commands[s.current].Initialize()
		}
	}
}

func (s *sequenceCommand) IsFinished() bool {
	return s.current >= len(s.commands)
}

func (s *sequenceCommand) End(interrupted bool) {
	if interrupted && s.current < len(s.commands) {
		s.commands[s.current].End(true)
	}
}

// parallelCommand runs its members simultaneously.
// Members must not share requirements.
type parallelCommand struct {
	commands []Command
	reqs     []Subsystem
	running  []bool

	// race finishes the group when the first member finishes instead of
	// the last.
	race bool
}

// Parallel creates a command that runs the given commands simultaneously,
// finishing when all of them have finished. Members must not share
// required subsystems.
func Parallel(commands ...Command) Command {
	return &parallelCommand{
		commands: commands,
		reqs:     unionRequirements(commands),
	}
}

// Race creates a command that runs the given commands simultaneously and
// finishes as soon as one of them finishes, interrupting the rest.
// Members must not share required subsystems.
func Race(commands ...Command) Command {
	return &parallelCommand{
		commands: commands,
		reqs:     unionRequirements(commands),
		race:     true,
	}
}

// Deadline creates a command that runs the deadline command alongside the
// others and finishes when the deadline command finishes, interrupting
// any member still running.
func Deadline(deadline Command, commands ...Command) Command {
	all := append([]Command{deadline}, commands...)
	group := &parallelCommand{
		commands: all,
		reqs:     unionRequirements(all),
	}
	return Named(joinNames("Deadline", all), &deadlineCommand{parallelCommand: group, deadline: deadline})
}

// WithTimeout bounds the command's run time. When the timeout elapses
// first, the command is interrupted.
func WithTimeout(c Command, timeout time.Duration) Command {
	return Named(c.Name()+"+timeout", Race(c, Wait(timeout)))
}

func (p *parallelCommand) Name() string {
	if p.race {
		return joinNames("Race", p.commands)
	}
	return joinNames("Parallel", p.commands)
}

func (p *parallelCommand) Requirements() []Subsystem { return p.reqs }
func (p *parallelCommand) RunsWhenDisabled() bool    { return allRunWhenDisabled(p.commands) }

func (p *parallelCommand) useClock(now func() time.Time) { forwardClock(now, p.commands...) }

func (p *parallelCommand) Initialize() {
	p.running = make([]bool, len(p.commands))
	for i, c := range p.commands {
		c.Initialize()
		p.running[i] = true
	}
}

func (p *parallelCommand) Execute() {
	for i, c := range p.commands {
		if !p.running[i] {
			continue
		}
		c.Execute()
		if c.IsFinished() {
			c.End(false)
			p.running[i] = false
		}
	}
}

func (p *parallelCommand) IsFinished() bool {
	if p.race {
		for i := range p.commands {
			if !p.running[i] {
				return true
			}
		}
		return len(p.commands) == 0
	}
	for i := range p.commands {
		if p.running[i] {
			return false
		}
	}
	return true
}

func (p *parallelCommand) End(_ bool) {
	// Members still running when the group ends were cut short, whatever
	// ended the group itself.
	for i, c := range p.commands {
		if p.running[i] {
			c.End(true)
			p.running[i] = false
		}
	}
}

// deadlineCommand finishes the parallel group when its deadline member
// finishes.
type deadlineCommand struct {
	*parallelCommand
	deadline Command
}

func (d *deadlineCommand) IsFinished() bool {
	for i, c := range d.commands {
		if c == d.deadline {
			return !d.running[i]
		}
	}
	return true
}
