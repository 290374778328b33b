package robot

import (
	"fmt"

	"github.com/reef-robotics/reefbot/internal/auto"
	"github.com/reef-robotics/reefbot/internal/commands"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/hid"
	"github.com/reef-robotics/reefbot/pkg/preferences"
)

// Container wires subsystems, controllers, and the autonomous
// selector together. Building it registers every subsystem, installs
// the default commands, and binds all controller buttons; after that
// the scheduler runs the robot.
type Container struct {
	Subs        *subsystems.Subsystems
	Driver      *hid.XboxController
	Manipulator *hid.XboxController
	Selector    *auto.Selector

	sched *command.Scheduler
}

// NewContainer builds the robot wiring on the given scheduler.
func NewContainer(
	sched *command.Scheduler,
	subs *subsystems.Subsystems,
	driver, manipulator *hid.XboxController,
	selector *auto.Selector,
) (*Container, error) {
	c := &Container{
		Subs:        subs,
		Driver:      driver,
		Manipulator: manipulator,
		Selector:    selector,
		sched:       sched,
	}

	subs.Register(sched)
	if err := c.configureDefaultCommands(); err != nil {
		return nil, err
	}
	c.configureDriverBindings()
	c.configureManipulatorBindings()
	c.configureSensorTriggers()
	return c, nil
}

// configureDefaultCommands installs what runs when nothing else claims
// a subsystem: sticks drive the chassis, the flame cycle runs the
// LEDs.
func (c *Container) configureDefaultCommands() error {
	if err := c.sched.SetDefaultCommand(
		c.Subs.Drivetrain,
		commands.DriveUsingController(c.Subs.Drivetrain, c.Driver),
	); err != nil {
		return fmt.Errorf("drivetrain default: %w", err)
	}
	if err := c.sched.SetDefaultCommand(
		c.Subs.LEDs,
		commands.FlameCycle(c.Subs.LEDs),
	); err != nil {
		return fmt.Errorf("led default: %w", err)
	}
	return nil
}

// configureDriverBindings binds the driver controller. The driver
// owns field orientation, branch alignment, and the climb.
func (c *Container) configureDriverBindings() {
	d := c.Driver

	d.Start().OnTrue(commands.ResetOrientation(c.Subs.Drivetrain))
	d.X().WhileTrue(commands.AlignToBranch(c.Subs.Drivetrain, subsystems.BranchLeft))
	d.B().WhileTrue(commands.AlignToBranch(c.Subs.Drivetrain, subsystems.BranchRight))
	d.RightBumper().WhileTrue(commands.Climb(c.Subs.Climber))
}

// configureManipulatorBindings binds the manipulator controller. The
// manipulator owns the elevator, coral, and algae mechanisms.
func (c *Container) configureManipulatorBindings() {
	m := c.Manipulator
	subs := c.Subs

	// Face buttons select elevator scoring levels, low to high.
	m.A().OnTrue(commands.GoToElevatorLevel(subs.Elevator, subs.Arm, subsystems.L1))
	m.X().OnTrue(commands.GoToElevatorLevel(subs.Elevator, subs.Arm, subsystems.L2))
	m.B().OnTrue(commands.GoToElevatorLevel(subs.Elevator, subs.Arm, subsystems.L3))
	m.Y().OnTrue(commands.GoToElevatorLevel(subs.Elevator, subs.Arm, subsystems.L4))

	m.RightBumper().
		WhileTrue(commands.IntakeAlgae(subs.AlgaeGrabber)).
		OnFalse(commands.StopAndStowIntake(subs.AlgaeGrabber))
	m.LeftBumper().
		WhileTrue(commands.OuttakeAlgae(subs.AlgaeGrabber)).
		OnFalse(commands.StopAndStowIntake(subs.AlgaeGrabber))

	m.POVLeft().WhileTrue(commands.IntakeUntilCoralDetected(subs.CoralRoller))
	m.POVRight().
		WhileTrue(commands.OuttakeUntilCoralNotDetected(subs.CoralRoller)).
		OnFalse(commands.StowElevatorAndArm(subs.Elevator, subs.Arm))

	m.POVDown().
		WhileTrue(commands.RemoveAlgaeAtLevel(subs.Elevator, subs.Arm, subs.AlgaeGrabber, subsystems.L2)).
		OnFalse(commands.StowElevatorAndArm(subs.Elevator, subs.Arm))
	m.POVUp().
		WhileTrue(commands.RemoveAlgaeAtLevel(subs.Elevator, subs.Arm, subs.AlgaeGrabber, subsystems.L3)).
		OnFalse(commands.StowElevatorAndArm(subs.Elevator, subs.Arm))

	m.Start().OnTrue(commands.StowElevatorAndArm(subs.Elevator, subs.Arm))
	m.Back().OnTrue(commands.InterruptAll(c.sched))
}

// configureSensorTriggers binds game piece acquisition feedback to the
// LEDs.
func (c *Container) configureSensorTriggers() {
	c.sched.Trigger(c.Subs.CoralRoller.HasCoral).
		OnTrue(commands.IndicateCoralAcquired(c.Subs.LEDs))
	c.sched.Trigger(c.Subs.AlgaeGrabber.HasAlgae).
		OnTrue(commands.IndicateAlgaeAcquired(c.Subs.LEDs))
}

// InitDashboard lays out the full competition dashboard: subsystem
// telemetry, the autonomous chooser, and the preference tunables.
func (c *Container) InitDashboard(board *dashboard.Board, prefs *preferences.Store) {
	c.Subs.InitDashboard(board)
	c.Selector.AddDashboardLayout(board.Tab("Operator"))
	prefs.AddDashboardTab(board.Tab("Preferences"))
}

// DisabledInit stops every mechanism. The robot loop calls it on the
// transition into the disabled phase.
func (c *Container) DisabledInit() {
	c.Subs.Disable()
}

// AutonomousCommand builds the routine the drive team selected, or nil
// when none is registered.
func (c *Container) AutonomousCommand() command.Command {
	return c.Selector.AutonomousCommand(c.Subs)
}
