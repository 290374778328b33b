package robotlog

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	// Should not panic with any event type
	event := Event{
		Timestamp: time.Now(),
		Phase:     PhaseTeleop,
		Category:  CategoryCommand,
		Source:    "scheduler",
	}

	// Test with nil payloads
	logger.Log(event)

	// Test with command payload
	event.Command = &CommandEvent{Name: "IntakeAlgae", Action: ActionScheduled}
	logger.Log(event)

	// Test with state change payload
	event.Command = nil
	event.State = &StateChangeEvent{Entity: "robot", NewState: "TELEOP"}
	logger.Log(event)

	// Test with dashboard payload
	event.State = nil
	event.Dashboard = &DashboardEvent{ClientID: "test-client", Direction: DirectionOut}
	logger.Log(event)

	// Test with error payload
	event.Dashboard = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	// NoopLogger should be usable as zero value
	var logger NoopLogger
	logger.Log(Event{})
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{PhaseDisabled.String(), "DISABLED"},
		{PhaseAutonomous.String(), "AUTONOMOUS"},
		{PhaseTeleop.String(), "TELEOP"},
		{Phase(99).String(), "UNKNOWN"},
		{CategoryCommand.String(), "COMMAND"},
		{CategoryError.String(), "ERROR"},
		{ActionScheduled.String(), "SCHEDULED"},
		{ActionInterrupted.String(), "INTERRUPTED"},
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
