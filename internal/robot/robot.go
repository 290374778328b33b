package robot

import (
	"context"
	"sync"
	"time"

	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

// Mode is the robot phase the driver station (or console) commands.
type Mode uint8

const (
	// ModeDisabled keeps all actuators off. LED and dashboard
	// commands still run.
	ModeDisabled Mode = iota

	// ModeAutonomous runs the selected routine with no driver input.
	ModeAutonomous

	// ModeTeleop runs driver control.
	ModeTeleop
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "DISABLED"
	case ModeAutonomous:
		return "AUTONOMOUS"
	case ModeTeleop:
		return "TELEOP"
	default:
		return "UNKNOWN"
	}
}

// phase maps a mode to its log phase.
func (m Mode) phase() robotlog.Phase {
	switch m {
	case ModeAutonomous:
		return robotlog.PhaseAutonomous
	case ModeTeleop:
		return robotlog.PhaseTeleop
	default:
		return robotlog.PhaseDisabled
	}
}

// Robot runs the periodic loop and sequences phase transitions. Mode
// changes may come from any goroutine; they take effect at the start
// of the next tick so all scheduler access stays on the loop
// goroutine.
type Robot struct {
	sched     *command.Scheduler
	container *Container
	logger    robotlog.Logger
	period    time.Duration

	mu      sync.Mutex
	pending Mode
	mode    Mode

	autoCommand command.Command
}

// NewRobot creates a robot in the disabled mode. A nil logger disables
// logging.
func NewRobot(sched *command.Scheduler, container *Container, period time.Duration, logger robotlog.Logger) *Robot {
	if logger == nil {
		logger = robotlog.NoopLogger{}
	}
	sched.SetDisabled(true)
	return &Robot{
		sched:     sched,
		container: container,
		logger:    logger,
		period:    period,
		mode:      ModeDisabled,
		pending:   ModeDisabled,
	}
}

// SetMode requests a phase change, applied at the next tick.
func (r *Robot) SetMode(m Mode) {
	r.mu.Lock()
	r.pending = m
	r.mu.Unlock()
}

// Mode returns the active phase.
func (r *Robot) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Run executes the periodic loop until the context is cancelled.
func (r *Robot) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick applies any pending mode transition and runs one scheduler
// pass. Exposed so tests and the console can step the robot without
// the wall-clock ticker.
func (r *Robot) Tick() {
	r.mu.Lock()
	from, to := r.mode, r.pending
	r.mode = to
	r.mu.Unlock()

	if from != to {
		r.transition(from, to)
	}
	r.sched.Run()
}

// transition sequences a phase change before the next scheduler pass.
func (r *Robot) transition(from, to Mode) {
	r.sched.SetPhase(to.phase())
	r.logger.Log(robotlog.Event{
		Timestamp: time.Now(),
		Phase:     to.phase(),
		Category:  robotlog.CategoryState,
		Source:    "robot",
		State: &robotlog.StateChangeEvent{
			Entity:   "robot",
			OldState: from.String(),
			NewState: to.String(),
		},
	})

	// Leaving autonomous cancels the routine wherever it got to.
	if from == ModeAutonomous && r.autoCommand != nil {
		r.sched.Cancel(r.autoCommand)
		r.autoCommand = nil
	}

	switch to {
	case ModeDisabled:
		r.sched.SetDisabled(true)
		r.container.DisabledInit()
	case ModeAutonomous:
		r.sched.SetDisabled(false)
		r.autoCommand = r.container.AutonomousCommand()
		if r.autoCommand != nil {
			r.sched.Schedule(r.autoCommand)
		}
	case ModeTeleop:
		r.sched.SetDisabled(false)
	}
}
