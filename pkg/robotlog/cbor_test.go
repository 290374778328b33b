package robotlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Now().Truncate(time.Nanosecond),
		Phase:     PhaseAutonomous,
		Category:  CategoryCommand,
		Source:    "scheduler",
		Command: &CommandEvent{
			Name:         "GoToElevatorLevel(L4)",
			Action:       ActionInterrupted,
			Requirements: []string{"elevator", "arm"},
			InterruptedBy: "StowElevatorAndArm",
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.Equal(t, event.Phase, decoded.Phase)
	assert.Equal(t, event.Category, decoded.Category)
	assert.Equal(t, event.Source, decoded.Source)
	require.NotNil(t, decoded.Command)
	assert.Equal(t, event.Command.Name, decoded.Command.Name)
	assert.Equal(t, event.Command.Action, decoded.Command.Action)
	assert.Equal(t, event.Command.Requirements, decoded.Command.Requirements)
	assert.Equal(t, event.Command.InterruptedBy, decoded.Command.InterruptedBy)
	assert.True(t, event.Timestamp.Equal(decoded.Timestamp))
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}
