package hid

import (
	"sync"
)

// Button is a raw button number on a gamepad.
type Button uint8

// Axis is a raw axis number on a gamepad.
type Axis uint8

// POVCenter is the POV hat value when no direction is pressed.
const POVCenter = -1

// Gamepad holds the last reported state of an operator input device.
// It is safe for concurrent use: input sources write, trigger conditions
// and commands read.
type Gamepad struct {
	mu      sync.RWMutex
	port    int
	buttons map[Button]bool
	axes    map[Axis]float64
	pov     int
}

// NewGamepad creates a gamepad for the given operator port.
func NewGamepad(port int) *Gamepad {
	return &Gamepad{
		port:    port,
		buttons: make(map[Button]bool),
		axes:    make(map[Axis]float64),
		pov:     POVCenter,
	}
}

// Port returns the operator port this gamepad is plugged into.
func (g *Gamepad) Port() int {
	return g.port
}

// SetButton records a button state.
func (g *Gamepad) SetButton(b Button, pressed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pressed {
		g.buttons[b] = true
	} else {
		delete(g.buttons, b)
	}
}

// Button returns the last reported state of a button.
func (g *Gamepad) Button(b Button) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.buttons[b]
}

// SetAxis records an axis value, clamped to [-1, 1].
func (g *Gamepad) SetAxis(a Axis, value float64) {
	if value > 1 {
		value = 1
	} else if value < -1 {
		value = -1
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.axes[a] = value
}

// Axis returns the last reported value of an axis. Unreported axes read 0.
func (g *Gamepad) Axis(a Axis) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.axes[a]
}

// SetPOV records the POV hat angle in degrees, or POVCenter for released.
func (g *Gamepad) SetPOV(degrees int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pov = degrees
}

// POV returns the POV hat angle in degrees, or POVCenter when released.
func (g *Gamepad) POV() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pov
}

// Reset clears all reported state, as on device disconnect.
func (g *Gamepad) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buttons = make(map[Button]bool)
	g.axes = make(map[Axis]float64)
	g.pov = POVCenter
}
