package robotlog

import (
	"testing"
	"time"
)

// recordingLogger collects events for assertions.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(e Event) { r.events = append(r.events, e) }

func TestMultiLoggerFansOutToAllTargets(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	m := NewMultiLogger(a, b)

	event := Event{
		Timestamp: time.Now(),
		Phase:     PhaseTeleop,
		Category:  CategoryState,
		Source:    "robot",
		State:     &StateChangeEvent{Entity: "robot", OldState: "DISABLED", NewState: "TELEOP"},
	}
	m.Log(event)
	m.Log(Event{Category: CategoryCommand})

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Fatalf("expected both targets to see 2 events, got %d and %d",
			len(a.events), len(b.events))
	}
	if a.events[0].State == nil || a.events[0].State.NewState != "TELEOP" {
		t.Errorf("first target lost the state payload: %+v", a.events[0])
	}
	if b.events[1].Category != CategoryCommand {
		t.Errorf("second target got category %s, want COMMAND", b.events[1].Category)
	}
}

func TestMultiLoggerWithNoTargets(t *testing.T) {
	m := NewMultiLogger()
	m.Log(Event{Category: CategoryError})
}
