package subsystems

import "github.com/reef-robotics/reefbot/internal/hal"

// Devices bundles every hardware handle the robot uses. The robot
// binary fills it with simulated devices; a RoboRIO build would fill
// it with real ones.
type Devices struct {
	// Drive base.
	DriveFrontLeft  hal.Motor
	DriveFrontRight hal.Motor
	DriveBackLeft   hal.Motor
	DriveBackRight  hal.Motor
	Gyro            hal.Gyro

	// BranchOffset reads the robot's lateral offset from the nearest
	// reef face center in meters, positive when the robot sits right
	// of center.
	BranchOffset hal.Encoder

	// Elevator.
	ElevatorMotor   hal.Motor
	ElevatorEncoder hal.Encoder

	// Arm.
	ArmMotor   hal.Motor
	ArmEncoder hal.Encoder

	// Coral roller.
	CoralMotor  hal.Motor
	CoralSensor hal.DigitalInput

	// Algae grabber.
	AlgaeRoller       hal.Motor
	AlgaePivotMotor   hal.Motor
	AlgaePivotEncoder hal.Encoder
	AlgaeSensor       hal.DigitalInput

	// Climber.
	ClimberMotor hal.Motor
	ClimberLimit hal.DigitalInput

	// LEDs.
	LEDs hal.LEDStrip
}

// SimDevices is a full set of simulated devices plus a small physics
// model so mechanisms move when their motors run.
type SimDevices struct {
	DriveFrontLeft  *hal.SimMotor
	DriveFrontRight *hal.SimMotor
	DriveBackLeft   *hal.SimMotor
	DriveBackRight  *hal.SimMotor
	Gyro            *hal.SimGyro
	BranchOffset    *hal.SimEncoder

	ElevatorMotor   *hal.SimMotor
	ElevatorEncoder *hal.SimEncoder

	ArmMotor   *hal.SimMotor
	ArmEncoder *hal.SimEncoder

	CoralMotor  *hal.SimMotor
	CoralSensor *hal.SimDigitalInput

	AlgaeRoller       *hal.SimMotor
	AlgaePivotMotor   *hal.SimMotor
	AlgaePivotEncoder *hal.SimEncoder
	AlgaeSensor       *hal.SimDigitalInput

	ClimberMotor *hal.SimMotor
	ClimberLimit *hal.SimDigitalInput

	LEDs *hal.SimLEDStrip

	heading float64
}

// Simulated mechanism speeds at full motor output.
const (
	simMaxTurnRate     = 270.0 // deg/s
	simElevatorSpeed   = 1.5   // m/s
	simArmSpeed        = 180.0 // deg/s
	simAlgaePivotSpeed = 120.0 // deg/s
	simLEDCount        = 30
)

// NewSimDevices creates a full simulated device set at rest.
func NewSimDevices() *SimDevices {
	return &SimDevices{
		DriveFrontLeft:  hal.NewSimMotor(),
		DriveFrontRight: hal.NewSimMotor(),
		DriveBackLeft:   hal.NewSimMotor(),
		DriveBackRight:  hal.NewSimMotor(),
		Gyro:            hal.NewSimGyro(),
		BranchOffset:    hal.NewSimEncoder(),

		ElevatorMotor:   hal.NewSimMotor(),
		ElevatorEncoder: hal.NewSimEncoder(),

		ArmMotor:   hal.NewSimMotor(),
		ArmEncoder: hal.NewSimEncoder(),

		CoralMotor:  hal.NewSimMotor(),
		CoralSensor: hal.NewSimDigitalInput(),

		AlgaeRoller:       hal.NewSimMotor(),
		AlgaePivotMotor:   hal.NewSimMotor(),
		AlgaePivotEncoder: hal.NewSimEncoder(),
		AlgaeSensor:       hal.NewSimDigitalInput(),

		ClimberMotor: hal.NewSimMotor(),
		ClimberLimit: hal.NewSimDigitalInput(),

		LEDs: hal.NewSimLEDStrip(simLEDCount),
	}
}

// Devices returns the set as hardware interfaces for subsystem wiring.
func (s *SimDevices) Devices() Devices {
	return Devices{
		DriveFrontLeft:  s.DriveFrontLeft,
		DriveFrontRight: s.DriveFrontRight,
		DriveBackLeft:   s.DriveBackLeft,
		DriveBackRight:  s.DriveBackRight,
		Gyro:            s.Gyro,
		BranchOffset:    s.BranchOffset,

		ElevatorMotor:   s.ElevatorMotor,
		ElevatorEncoder: s.ElevatorEncoder,

		ArmMotor:   s.ArmMotor,
		ArmEncoder: s.ArmEncoder,

		CoralMotor:  s.CoralMotor,
		CoralSensor: s.CoralSensor,

		AlgaeRoller:       s.AlgaeRoller,
		AlgaePivotMotor:   s.AlgaePivotMotor,
		AlgaePivotEncoder: s.AlgaePivotEncoder,
		AlgaeSensor:       s.AlgaeSensor,

		ClimberMotor: s.ClimberMotor,
		ClimberLimit: s.ClimberLimit,

		LEDs: s.LEDs,
	}
}

// Step advances the physics model by dt seconds. Motors drive their
// mechanisms at speed proportional to output.
func (s *SimDevices) Step(dt float64) {
	// Turning: average of the left/right wheel speed difference.
	left := (s.DriveFrontLeft.Get() + s.DriveBackLeft.Get()) / 2
	right := (s.DriveFrontRight.Get() + s.DriveBackRight.Get()) / 2
	s.heading += (right - left) / 2 * simMaxTurnRate * dt
	s.Gyro.SetHeading(s.heading)

	s.ElevatorEncoder.SetVelocity(s.ElevatorMotor.Get() * simElevatorSpeed)
	s.ElevatorEncoder.Advance(dt)
	if s.ElevatorEncoder.Position() < 0 {
		s.ElevatorEncoder.SetPosition(0)
	}

	s.ArmEncoder.SetVelocity(s.ArmMotor.Get() * simArmSpeed)
	s.ArmEncoder.Advance(dt)

	s.AlgaePivotEncoder.SetVelocity(s.AlgaePivotMotor.Get() * simAlgaePivotSpeed)
	s.AlgaePivotEncoder.Advance(dt)
}
