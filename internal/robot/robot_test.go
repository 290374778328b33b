package robot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-robotics/reefbot/internal/auto"
	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/hid"
)

func TestRobotStartsDisabled(t *testing.T) {
	r := newRobotRig(t)

	assert.Equal(t, ModeDisabled, r.robot.Mode())
	assert.True(t, r.sched.Disabled())
}

func TestActuatorsStayOffWhileDisabled(t *testing.T) {
	r := newRobotRig(t)

	// Held buttons must not move anything while disabled.
	r.press(r.driver.Gamepad(), hid.ButtonRightBumper)
	r.manipulator.Gamepad().SetPOV(270)
	r.tick(3)

	assert.Zero(t, r.sim.ClimberMotor.Get())
	assert.Zero(t, r.sim.CoralMotor.Get())
}

func TestFlameCycleRunsWhileDisabled(t *testing.T) {
	r := newRobotRig(t)
	r.tick(3)

	lit := false
	for i := 0; i < r.subs.LEDs.Len(); i++ {
		if r.sim.LEDs.Pixel(i) != (hal.Color{}) {
			lit = true
		}
	}
	assert.True(t, lit)
}

func TestDisableStopsMechanisms(t *testing.T) {
	r := newRobotRig(t)
	r.teleop()

	r.press(r.manipulator.Gamepad(), hid.ButtonY)
	r.tick(5)
	require.NotZero(t, r.sim.ElevatorMotor.Get())

	r.robot.SetMode(ModeDisabled)
	r.tick(1)

	assert.Equal(t, ModeDisabled, r.robot.Mode())
	assert.Zero(t, r.sim.ElevatorMotor.Get())
	assert.Zero(t, r.sim.DriveFrontLeft.Get())
}

func TestAutonomousRunsAndTeleopCancelsIt(t *testing.T) {
	r := newRobotRig(t)
	// Without a dashboard chooser the first registered routine is
	// selected, so register Taxi alone.
	r.selector.Register(auto.Routines()[1]) // Taxi

	r.robot.SetMode(ModeAutonomous)
	r.tick(3)
	assert.Equal(t, ModeAutonomous, r.robot.Mode())
	assert.Positive(t, r.sim.DriveFrontLeft.Get(), "taxi should drive forward")

	r.robot.SetMode(ModeTeleop)
	r.tick(1)
	assert.Zero(t, r.sim.DriveFrontLeft.Get(), "routine cancelled on teleop")
}

func TestAutonomousWithNoRoutineIsSafe(t *testing.T) {
	r := newRobotRig(t)

	r.robot.SetMode(ModeAutonomous)
	r.tick(3)

	assert.Equal(t, ModeAutonomous, r.robot.Mode())
	assert.Zero(t, r.sim.DriveFrontLeft.Get())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	r := newRobotRig(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.robot.Run(ctx) }()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestModeChangesEmitStateEvents(t *testing.T) {
	r := newRobotRig(t)

	r.robot.SetMode(ModeAutonomous)
	r.tick(1)
	r.robot.SetMode(ModeTeleop)
	r.tick(1)
	r.robot.SetMode(ModeDisabled)
	r.tick(1)

	changes := r.log.stateChanges()
	require.Len(t, changes, 3)
	for _, c := range changes {
		assert.Equal(t, "robot", c.Entity)
	}
	assert.Equal(t, "DISABLED", changes[0].OldState)
	assert.Equal(t, "AUTONOMOUS", changes[0].NewState)
	assert.Equal(t, "AUTONOMOUS", changes[1].OldState)
	assert.Equal(t, "TELEOP", changes[1].NewState)
	assert.Equal(t, "TELEOP", changes[2].OldState)
	assert.Equal(t, "DISABLED", changes[2].NewState)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "DISABLED", ModeDisabled.String())
	assert.Equal(t, "AUTONOMOUS", ModeAutonomous.String())
	assert.Equal(t, "TELEOP", ModeTeleop.String())
}
