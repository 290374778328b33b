package auto

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/preferences"
)

func newSelector(t *testing.T) (*Selector, *preferences.Store) {
	t.Helper()
	prefs := preferences.NewStore(filepath.Join(t.TempDir(), "prefs.json"), nil)
	return NewSelector(prefs), prefs
}

func testSubsystems() *subsystems.Subsystems {
	return subsystems.New(subsystems.NewSimDevices().Devices())
}

func TestFirstRoutineIsDefault(t *testing.T) {
	s, _ := newSelector(t)
	for _, r := range Routines() {
		s.Register(r)
	}

	assert.Equal(t, "None", s.Selected())
}

func TestDashboardChooserSelectsRoutine(t *testing.T) {
	s, _ := newSelector(t)
	for _, r := range Routines() {
		s.Register(r)
	}

	board := dashboard.NewBoard()
	tab := board.Tab("Operator")
	s.AddDashboardLayout(tab)

	require.NoError(t, board.Write("Operator/Autonomous/Routine", "Taxi"))
	assert.Equal(t, "Taxi", s.Selected())

	c := s.AutonomousCommand(testSubsystems())
	require.NotNil(t, c)
	assert.Equal(t, "Taxi", c.Name())
}

func TestRoutinesRegisteredAfterLayoutAppear(t *testing.T) {
	s, _ := newSelector(t)
	s.Register(Routine{Name: "None", Build: noAuto})

	board := dashboard.NewBoard()
	s.AddDashboardLayout(board.Tab("Operator"))

	s.Register(Routine{Name: "Late", Build: noAuto})
	require.NoError(t, board.Write("Operator/Autonomous/Routine", "Late"))
	assert.Equal(t, "Late", s.Selected())
}

func TestAutonomousCommandWithoutRoutines(t *testing.T) {
	s, _ := newSelector(t)
	assert.Nil(t, s.AutonomousCommand(testSubsystems()))
}

func TestStartDelayWrapsRoutine(t *testing.T) {
	s, prefs := newSelector(t)
	s.Register(Routine{Name: "Taxi", Build: taxi})

	assert.Zero(t, s.Delay())

	prefs.Float("Auto Start Delay (s)", 0).Set(2.5)
	assert.Equal(t, 2500*time.Millisecond, s.Delay())

	c := s.AutonomousCommand(testSubsystems())
	require.NotNil(t, c)
	assert.Equal(t, "Taxi", c.Name())
}

func TestTaxiDrivesThenStops(t *testing.T) {
	sim := subsystems.NewSimDevices()
	subs := subsystems.New(sim.Devices())
	sched := command.NewScheduler(nil)
	subs.Register(sched)

	c := taxi(subs)
	sched.Schedule(c)
	sched.Run()
	assert.Positive(t, sim.DriveFrontLeft.Get())

	sched.Cancel(c)
	assert.Zero(t, sim.DriveFrontLeft.Get())
}

func TestOneCoralAndAlgaeReachesSweepStage(t *testing.T) {
	sim := subsystems.NewSimDevices()
	subs := subsystems.New(sim.Devices())
	sched := command.NewScheduler(nil)
	subs.Register(sched)

	clock := time.Unix(0, 0)
	sched.SetClock(func() time.Time { return clock })

	sim.CoralSensor.SetState(true) // preloaded coral
	sched.Schedule(oneCoralAndAlgae(subs))

	step := func(n int) {
		for i := 0; i < n; i++ {
			sched.Run()
			sim.Step(0.02)
			clock = clock.Add(20 * time.Millisecond)
		}
	}

	step(1)
	require.Positive(t, sim.DriveFrontLeft.Get())

	// Past the taxi leg, then through the L4 raise until the outtake
	// leg is active.
	step(80)
	step(400)
	require.Negative(t, sim.CoralMotor.Get())

	// Releasing the coral moves the sequence into the algae sweep: the
	// grabber spins up and the elevator descends to the L3 algae.
	sim.CoralSensor.SetState(false)
	step(5)
	assert.Positive(t, sim.AlgaeRoller.Get())
	assert.Negative(t, sim.ElevatorMotor.Get())
}
