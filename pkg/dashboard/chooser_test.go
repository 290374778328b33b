package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooserFirstOptionIsDefault(t *testing.T) {
	b := NewBoard()
	ch := NewChooser(b.Tab("Operator").Layout("Autonomous"), "Routine")

	ch.AddOption("Taxi")
	ch.AddOption("One Coral L1")

	assert.Equal(t, "Taxi", ch.Selected())
	assert.Equal(t, []string{"Taxi", "One Coral L1"}, ch.Options())
}

func TestChooserSetDefault(t *testing.T) {
	b := NewBoard()
	ch := NewChooser(b.Tab("Operator"), "Routine")
	ch.AddOption("Taxi")
	ch.AddOption("One Coral L4")

	ch.SetDefault("One Coral L4")
	assert.Equal(t, "One Coral L4", ch.Selected())

	// Unknown options are ignored.
	ch.SetDefault("nope")
	assert.Equal(t, "One Coral L4", ch.Selected())
}

func TestChooserClientWriteSelects(t *testing.T) {
	b := NewBoard()
	ch := NewChooser(b.Tab("Operator"), "Routine")
	ch.AddOption("Taxi")
	ch.AddOption("One Coral L1")

	require.NoError(t, b.Write("Operator/Routine", "One Coral L1"))
	assert.Equal(t, "One Coral L1", ch.Selected())

	// Writing an unregistered option leaves the selection alone.
	require.NoError(t, b.Write("Operator/Routine", "bogus"))
	assert.Equal(t, "One Coral L1", ch.Selected())
}

func TestChooserRejectedWriteResyncsEntry(t *testing.T) {
	b := NewBoard()
	ch := NewChooser(b.Tab("Operator"), "Routine")
	ch.AddOption("Taxi")

	require.NoError(t, b.Write("Operator/Routine", "bogus"))

	// The entry must show the accepted selection, not the rejected
	// write, so the next flush corrects the client's display.
	e, err := b.Entry("Operator/Routine")
	require.NoError(t, err)
	assert.Equal(t, "Taxi", e.String())
	assert.Equal(t, "Taxi", ch.Selected())
}
