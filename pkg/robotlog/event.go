package robotlog

import (
	"time"
)

// Event represents a match log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Phase is the match phase the robot was in.
	Phase Phase `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Source names the originating component (subsystem, scheduler,
	// dashboard).
	Source string `cbor:"4,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command   *CommandEvent     `cbor:"10,keyasint,omitempty"` // Scheduler activity
	State     *StateChangeEvent `cbor:"11,keyasint,omitempty"` // Subsystem/robot state
	Dashboard *DashboardEvent   `cbor:"12,keyasint,omitempty"` // Dashboard traffic
	Error     *ErrorEventData   `cbor:"13,keyasint,omitempty"` // Errors at any layer
}

// Phase identifies the match phase.
type Phase uint8

const (
	// PhaseDisabled indicates the robot is disabled.
	PhaseDisabled Phase = 0
	// PhaseAutonomous indicates the autonomous period.
	PhaseAutonomous Phase = 1
	// PhaseTeleop indicates the teleoperated period.
	PhaseTeleop Phase = 2
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "DISABLED"
	case PhaseAutonomous:
		return "AUTONOMOUS"
	case PhaseTeleop:
		return "TELEOP"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates scheduler activity (start/finish/interrupt).
	CategoryCommand Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryDashboard indicates dashboard traffic.
	CategoryDashboard Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryState:
		return "STATE"
	case CategoryDashboard:
		return "DASHBOARD"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandAction describes what happened to a command.
type CommandAction uint8

const (
	// ActionScheduled indicates the command was scheduled.
	ActionScheduled CommandAction = 0
	// ActionFinished indicates the command finished on its own.
	ActionFinished CommandAction = 1
	// ActionInterrupted indicates the command was interrupted.
	ActionInterrupted CommandAction = 2
)

// String returns the action name.
func (a CommandAction) String() string {
	switch a {
	case ActionScheduled:
		return "SCHEDULED"
	case ActionFinished:
		return "FINISHED"
	case ActionInterrupted:
		return "INTERRUPTED"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures scheduler activity for a single command.
type CommandEvent struct {
	// Name is the command name.
	Name string `cbor:"1,keyasint"`

	// Action is what happened to the command.
	Action CommandAction `cbor:"2,keyasint"`

	// Requirements lists the subsystems the command requires.
	Requirements []string `cbor:"3,keyasint,omitempty"`

	// InterruptedBy names the command that caused an interruption.
	InterruptedBy string `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures a state transition.
type StateChangeEvent struct {
	// Entity is what changed state (robot, subsystem name).
	Entity string `cbor:"1,keyasint"`

	// OldState is the previous state name.
	OldState string `cbor:"2,keyasint"`

	// NewState is the new state name.
	NewState string `cbor:"3,keyasint"`

	// Reason provides optional context for the transition.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// Direction indicates the direction of dashboard traffic.
type Direction uint8

const (
	// DirectionIn indicates traffic from a dashboard client.
	DirectionIn Direction = 0
	// DirectionOut indicates traffic to dashboard clients.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// DashboardEvent captures dashboard client traffic.
type DashboardEvent struct {
	// ClientID identifies the dashboard client session (UUID).
	ClientID string `cbor:"1,keyasint"`

	// Direction indicates traffic flow.
	Direction Direction `cbor:"2,keyasint"`

	// Entry is the dashboard entry path, if the event concerns one.
	Entry string `cbor:"3,keyasint,omitempty"`

	// Size is the encoded frame size in bytes.
	Size int `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	// Op is the operation that failed.
	Op string `cbor:"1,keyasint,omitempty"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`
}
