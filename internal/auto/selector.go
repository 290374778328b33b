package auto

import (
	"time"

	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/preferences"
)

// Routine is a named autonomous program. Build constructs a fresh
// command each run so per-run state is not shared between matches.
type Routine struct {
	Name  string
	Build func(s *subsystems.Subsystems) command.Command
}

// Selector owns the registered routines and the dashboard chooser the
// drive team picks from.
type Selector struct {
	routines map[string]Routine
	order    []string
	chooser  *dashboard.Chooser
	delay    *preferences.Float
}

// NewSelector creates an empty selector. The start delay tunable comes
// from preferences so it survives restarts.
func NewSelector(prefs *preferences.Store) *Selector {
	return &Selector{
		routines: make(map[string]Routine),
		delay:    prefs.Float("Auto Start Delay (s)", 0),
	}
}

// Register adds a routine. The first registered routine is the
// default selection. Registering a name twice replaces the routine but
// keeps its position.
func (s *Selector) Register(r Routine) {
	if _, ok := s.routines[r.Name]; !ok {
		s.order = append(s.order, r.Name)
		if s.chooser != nil {
			s.chooser.AddOption(r.Name)
		}
	}
	s.routines[r.Name] = r
}

// AddDashboardLayout puts the routine chooser on the given tab. Call
// after registering routines so they all appear as options.
func (s *Selector) AddDashboardLayout(tab *dashboard.Tab) {
	s.chooser = dashboard.NewChooser(tab.Layout("Autonomous"), "Routine")
	for _, name := range s.order {
		s.chooser.AddOption(name)
	}
}

// Selected returns the name of the chosen routine. Without a dashboard
// it falls back to the first registered routine.
func (s *Selector) Selected() string {
	if s.chooser != nil {
		return s.chooser.Selected()
	}
	if len(s.order) > 0 {
		return s.order[0]
	}
	return ""
}

// Delay returns the configured start delay.
func (s *Selector) Delay() time.Duration {
	return time.Duration(s.delay.Get() * float64(time.Second))
}

// AutonomousCommand builds the selected routine, prefixed with the
// start delay when one is set. It returns nil when no routine is
// registered.
func (s *Selector) AutonomousCommand(subs *subsystems.Subsystems) command.Command {
	r, ok := s.routines[s.Selected()]
	if !ok {
		return nil
	}
	c := r.Build(subs)
	if c == nil {
		return nil
	}
	if d := s.Delay(); d > 0 {
		c = command.Named(r.Name, command.Sequence(command.Wait(d), c))
	}
	return c
}
