package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubsystem counts periodic calls.
type fakeSubsystem struct {
	name      string
	periodics int
}

func (f *fakeSubsystem) Name() string { return f.name }
func (f *fakeSubsystem) Periodic()    { f.periodics++ }

// countingCommand records lifecycle calls.
type countingCommand struct {
	name        string
	reqs        []Subsystem
	inits       int
	executes    int
	ends        int
	interrupted bool
	finish      func() bool
	disabledOK  bool
}

func (c *countingCommand) Name() string              { return c.name }
func (c *countingCommand) Requirements() []Subsystem { return c.reqs }
func (c *countingCommand) Initialize()               { c.inits++ }
func (c *countingCommand) Execute()                  { c.executes++ }
func (c *countingCommand) End(interrupted bool) {
	c.ends++
	c.interrupted = interrupted
}
func (c *countingCommand) IsFinished() bool {
	if c.finish == nil {
		return false
	}
	return c.finish()
}
func (c *countingCommand) RunsWhenDisabled() bool { return c.disabledOK }

func TestScheduleRunsCommandLifecycle(t *testing.T) {
	s := NewScheduler(nil)
	done := false
	cmd := &countingCommand{name: "test", finish: func() bool { return done }}

	s.Schedule(cmd)
	assert.True(t, s.IsScheduled(cmd))
	assert.Equal(t, 1, cmd.inits)

	s.Run()
	s.Run()
	assert.Equal(t, 2, cmd.executes)

	done = true
	s.Run()
	assert.False(t, s.IsScheduled(cmd))
	assert.Equal(t, 1, cmd.ends)
	assert.False(t, cmd.interrupted)
}

func TestScheduleInterruptsRequirementHolder(t *testing.T) {
	s := NewScheduler(nil)
	elevator := &fakeSubsystem{name: "elevator"}
	first := &countingCommand{name: "first", reqs: []Subsystem{elevator}}
	second := &countingCommand{name: "second", reqs: []Subsystem{elevator}}

	s.Schedule(first)
	s.Schedule(second)

	assert.False(t, s.IsScheduled(first))
	assert.True(t, s.IsScheduled(second))
	assert.Equal(t, 1, first.ends)
	assert.True(t, first.interrupted)
}

func TestDefaultCommandStartsWhenSubsystemIdle(t *testing.T) {
	s := NewScheduler(nil)
	drive := &fakeSubsystem{name: "drivetrain"}
	s.RegisterSubsystem(drive)

	def := &countingCommand{name: "default", reqs: []Subsystem{drive}}
	require.NoError(t, s.SetDefaultCommand(drive, def))

	s.Run()
	assert.True(t, s.IsScheduled(def))

	// Scheduling another command over the subsystem interrupts the
	// default; it resumes once the other command finishes.
	other := &countingCommand{name: "other", reqs: []Subsystem{drive}, finish: func() bool { return true }}
	s.Schedule(other)
	assert.False(t, s.IsScheduled(def))

	s.Run() // other finishes, default rescheduled in same tick
	assert.True(t, s.IsScheduled(def))
}

func TestSetDefaultCommandRejectsNonRequiring(t *testing.T) {
	s := NewScheduler(nil)
	drive := &fakeSubsystem{name: "drivetrain"}
	bad := &countingCommand{name: "bad"}

	assert.ErrorIs(t, s.SetDefaultCommand(drive, bad), ErrNotRequired)
	assert.ErrorIs(t, s.SetDefaultCommand(drive, nil), ErrNilCommand)
}

func TestDisableCancelsCommands(t *testing.T) {
	s := NewScheduler(nil)
	normal := &countingCommand{name: "normal"}
	leds := &countingCommand{name: "leds", disabledOK: true}

	s.Schedule(normal, leds)
	s.SetDisabled(true)

	assert.False(t, s.IsScheduled(normal))
	assert.True(t, s.IsScheduled(leds))
	assert.True(t, normal.interrupted)

	// New non-disabled commands do not start while disabled.
	late := &countingCommand{name: "late"}
	s.Schedule(late)
	assert.False(t, s.IsScheduled(late))

	s.Run()
	assert.Equal(t, 1, leds.executes)
}

func TestSubsystemPeriodicRunsEveryTick(t *testing.T) {
	s := NewScheduler(nil)
	a := &fakeSubsystem{name: "a"}
	b := &fakeSubsystem{name: "b"}
	s.RegisterSubsystem(a, b)

	s.Run()
	s.Run()
	assert.Equal(t, 2, a.periodics)
	assert.Equal(t, 2, b.periodics)
}

func TestCancelAllFromWithinCommand(t *testing.T) {
	s := NewScheduler(nil)
	holder := &countingCommand{name: "holder"}

	interrupt := RunOnce("interruptAll", func() {
		s.CancelAll()
	})

	s.Schedule(holder)
	s.Schedule(interrupt)
	s.Run()

	assert.False(t, s.IsScheduled(holder))
	assert.Equal(t, 1, holder.ends)
	assert.True(t, holder.interrupted)
}

func TestScheduleIsIdempotentWhileRunning(t *testing.T) {
	s := NewScheduler(nil)
	cmd := &countingCommand{name: "test"}

	s.Schedule(cmd)
	s.Schedule(cmd)
	assert.Equal(t, 1, cmd.inits)
}
