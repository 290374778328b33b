package subsystems

import (
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// Subsystems aggregates every mechanism on the robot. It is built once
// at startup and passed wherever subsystem access is needed.
type Subsystems struct {
	Drivetrain   *Drivetrain
	Elevator     *Elevator
	Arm          *Arm
	CoralRoller  *CoralRoller
	AlgaeGrabber *AlgaeGrabber
	Climber      *Climber
	LEDs         *StatusLEDs
}

// New constructs all subsystems from the given hardware.
func New(d Devices) *Subsystems {
	return &Subsystems{
		Drivetrain:   NewDrivetrain(d),
		Elevator:     NewElevator(d),
		Arm:          NewArm(d),
		CoralRoller:  NewCoralRoller(d),
		AlgaeGrabber: NewAlgaeGrabber(d),
		Climber:      NewClimber(d),
		LEDs:         NewStatusLEDs(d),
	}
}

// All returns every subsystem in a stable order.
func (s *Subsystems) All() []command.Subsystem {
	return []command.Subsystem{
		s.Drivetrain,
		s.Elevator,
		s.Arm,
		s.CoralRoller,
		s.AlgaeGrabber,
		s.Climber,
		s.LEDs,
	}
}

// Register adds every subsystem to the scheduler so their Periodic
// methods run each tick.
func (s *Subsystems) Register(sched *command.Scheduler) {
	sched.RegisterSubsystem(s.All()...)
}

// InitDashboard registers every subsystem's telemetry on its own tab.
func (s *Subsystems) InitDashboard(board *dashboard.Board) {
	s.Drivetrain.InitDashboard(board.Tab("Drivetrain"))
	s.Elevator.InitDashboard(board.Tab("Elevator"))
	s.Arm.InitDashboard(board.Tab("Elevator"))
	s.CoralRoller.InitDashboard(board.Tab("Manipulator"))
	s.AlgaeGrabber.InitDashboard(board.Tab("Manipulator"))
	s.Climber.InitDashboard(board.Tab("Climber"))
	s.LEDs.InitDashboard(board.Tab("Status"))
}

// Disable halts every mechanism. Called on the transition into the
// disabled phase.
func (s *Subsystems) Disable() {
	for _, sub := range s.All() {
		if d, ok := sub.(command.Disableable); ok {
			d.Disable()
		}
	}
}

// Compile-time subsystem interface checks.
var (
	_ command.Subsystem   = (*Drivetrain)(nil)
	_ command.Subsystem   = (*Elevator)(nil)
	_ command.Subsystem   = (*Arm)(nil)
	_ command.Subsystem   = (*CoralRoller)(nil)
	_ command.Subsystem   = (*AlgaeGrabber)(nil)
	_ command.Subsystem   = (*Climber)(nil)
	_ command.Subsystem   = (*StatusLEDs)(nil)
	_ command.Disableable = (*Drivetrain)(nil)
	_ command.Disableable = (*Elevator)(nil)
	_ command.Disableable = (*Arm)(nil)
	_ command.Disableable = (*CoralRoller)(nil)
	_ command.Disableable = (*AlgaeGrabber)(nil)
	_ command.Disableable = (*Climber)(nil)
)
