package subsystems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// stepSim runs n control ticks with 20ms of simulated physics between
// each, the same cadence as the robot loop.
func stepSim(sim *SimDevices, subs *Subsystems, n int) {
	for i := 0; i < n; i++ {
		for _, s := range subs.All() {
			s.Periodic()
		}
		sim.Step(0.02)
	}
}

func newTestSubsystems() (*SimDevices, *Subsystems) {
	sim := NewSimDevices()
	return sim, New(sim.Devices())
}

func TestElevatorReachesLevel(t *testing.T) {
	sim, subs := newTestSubsystems()
	e := subs.Elevator

	e.GoToLevel(L2)
	assert.Equal(t, L2.Height(), e.Target())

	stepSim(sim, subs, 200)
	require.True(t, e.AtTarget())
	assert.InDelta(t, L2.Height(), e.Height(), ElevatorTolerance)
}

func TestElevatorStopDisablesControl(t *testing.T) {
	sim, subs := newTestSubsystems()
	e := subs.Elevator

	e.GoToLevel(L4)
	stepSim(sim, subs, 5)
	assert.NotZero(t, sim.ElevatorMotor.Get())

	e.Stop()
	assert.False(t, e.AtTarget())
	assert.Zero(t, sim.ElevatorMotor.Get())

	// Control stays off across later ticks.
	stepSim(sim, subs, 5)
	assert.Zero(t, sim.ElevatorMotor.Get())
}

func TestElevatorClampsSetpoint(t *testing.T) {
	_, subs := newTestSubsystems()
	e := subs.Elevator

	e.GoToHeight(99)
	assert.Equal(t, ElevatorMaxHeight, e.Target())

	e.GoToHeight(-1)
	assert.Equal(t, 0.0, e.Target())
}

func TestLevelHeights(t *testing.T) {
	assert.Less(t, L1.Height(), L2.Height())
	assert.Less(t, L2.Height(), L3.Height())
	assert.Less(t, L3.Height(), L4.Height())
	assert.Equal(t, "L4", L4.String())

	// Algae only sits between branches at L2 and L3.
	assert.Zero(t, L1.AlgaeHeight())
	assert.NotZero(t, L2.AlgaeHeight())
	assert.NotZero(t, L3.AlgaeHeight())
	assert.Zero(t, L4.AlgaeHeight())
}

func TestArmReachesAngle(t *testing.T) {
	sim, subs := newTestSubsystems()
	a := subs.Arm

	a.GoToAngle(ArmAlgaeSweepAngle)
	stepSim(sim, subs, 300)

	require.True(t, a.AtTarget())
	assert.InDelta(t, ArmAlgaeSweepAngle, a.Angle(), ArmTolerance)
}

func TestCoralRollerSensor(t *testing.T) {
	sim, subs := newTestSubsystems()
	c := subs.CoralRoller

	assert.False(t, c.HasCoral())
	c.Intake()
	assert.Positive(t, sim.CoralMotor.Get())

	sim.CoralSensor.SetState(true)
	assert.True(t, c.HasCoral())

	c.Stop()
	assert.Zero(t, sim.CoralMotor.Get())
}

func TestAlgaeGrabberStowKeepsGripOnBall(t *testing.T) {
	sim, subs := newTestSubsystems()
	g := subs.AlgaeGrabber

	g.Intake()
	assert.Positive(t, sim.AlgaeRoller.Get())
	stepSim(sim, subs, 300)
	assert.True(t, g.PivotAtTarget())
	assert.InDelta(t, AlgaePivotDeployAngle, g.PivotAngle(), AlgaePivotTolerance)

	// With a ball held, stowing keeps a light grip.
	sim.AlgaeSensor.SetState(true)
	g.StopAndStow()
	assert.Positive(t, sim.AlgaeRoller.Get())
	assert.Less(t, sim.AlgaeRoller.Get(), algaeIntakeSpeed)

	// Without a ball, stowing stops the roller.
	sim.AlgaeSensor.SetState(false)
	g.StopAndStow()
	assert.Zero(t, sim.AlgaeRoller.Get())

	stepSim(sim, subs, 300)
	assert.InDelta(t, AlgaePivotStowAngle, g.PivotAngle(), AlgaePivotTolerance)
}

func TestClimberStopsAtLimit(t *testing.T) {
	sim, subs := newTestSubsystems()
	c := subs.Climber

	c.Climb()
	assert.Positive(t, sim.ClimberMotor.Get())

	sim.ClimberLimit.SetState(true)
	assert.True(t, c.AtLimit())
	c.Climb()
	assert.Zero(t, sim.ClimberMotor.Get())
}

func TestDrivetrainNormalizesWheelOutputs(t *testing.T) {
	sim, subs := newTestSubsystems()
	d := subs.Drivetrain

	d.Drive(1, 1, 1)
	for _, m := range []float64{
		sim.DriveFrontLeft.Get(),
		sim.DriveFrontRight.Get(),
		sim.DriveBackLeft.Get(),
		sim.DriveBackRight.Get(),
	} {
		assert.LessOrEqual(t, m, 1.0)
		assert.GreaterOrEqual(t, m, -1.0)
	}

	d.Stop()
	assert.Zero(t, sim.DriveFrontLeft.Get())
}

func TestDrivetrainResetOrientation(t *testing.T) {
	sim, subs := newTestSubsystems()
	d := subs.Drivetrain

	sim.Gyro.SetHeading(47)
	assert.Equal(t, 47.0, d.Heading())

	d.ResetOrientation()
	assert.Equal(t, 0.0, d.Heading())
}

func TestDrivetrainBranchAlignment(t *testing.T) {
	sim, subs := newTestSubsystems()
	d := subs.Drivetrain

	sim.BranchOffset.SetPosition(BranchRight.Offset())
	assert.True(t, d.AlignedTo(BranchRight))
	assert.False(t, d.AlignedTo(BranchLeft))
}

func TestAggregateDisableStopsMechanisms(t *testing.T) {
	sim, subs := newTestSubsystems()

	subs.Drivetrain.Drive(1, 0, 0)
	subs.Elevator.GoToLevel(L3)
	stepSim(sim, subs, 5)
	subs.CoralRoller.Intake()
	subs.Climber.Climb()

	subs.Disable()

	assert.Zero(t, sim.DriveFrontLeft.Get())
	assert.Zero(t, sim.ElevatorMotor.Get())
	assert.Zero(t, sim.CoralMotor.Get())
	assert.Zero(t, sim.ClimberMotor.Get())
}

func TestInitDashboardPublishesTelemetry(t *testing.T) {
	sim, subs := newTestSubsystems()
	board := dashboard.NewBoard()
	subs.InitDashboard(board)

	sim.Gyro.SetHeading(90)
	sim.CoralSensor.SetState(true)
	stepSim(sim, subs, 1)

	heading, err := board.Entry("Drivetrain/Heading")
	require.NoError(t, err)
	assert.Equal(t, 90.0, heading.Float())

	held, err := board.Entry("Manipulator/Has Coral")
	require.NoError(t, err)
	assert.True(t, held.Bool())
}
