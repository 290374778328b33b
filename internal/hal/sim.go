package hal

import "sync"

// SimMotor is an in-memory motor. It is safe for concurrent use; the
// console inspects outputs while the robot loop commands them.
type SimMotor struct {
	mu     sync.RWMutex
	output float64
}

// NewSimMotor creates a stopped simulated motor.
func NewSimMotor() *SimMotor { return &SimMotor{} }

// Set commands the motor output, clamped to [-1, 1].
func (m *SimMotor) Set(output float64) {
	if output > 1 {
		output = 1
	} else if output < -1 {
		output = -1
	}
	m.mu.Lock()
	m.output = output
	m.mu.Unlock()
}

// Get returns the last commanded output.
func (m *SimMotor) Get() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.output
}

// Stop sets the output to zero.
func (m *SimMotor) Stop() { m.Set(0) }

// SimEncoder is an in-memory encoder whose readings are driven by the
// simulation or by tests.
type SimEncoder struct {
	mu       sync.RWMutex
	position float64
	velocity float64
}

// NewSimEncoder creates a zeroed simulated encoder.
func NewSimEncoder() *SimEncoder { return &SimEncoder{} }

// Position returns the current position.
func (e *SimEncoder) Position() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.position
}

// Velocity returns the current velocity.
func (e *SimEncoder) Velocity() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.velocity
}

// Reset zeroes the position.
func (e *SimEncoder) Reset() {
	e.mu.Lock()
	e.position = 0
	e.mu.Unlock()
}

// SetPosition drives the simulated position.
func (e *SimEncoder) SetPosition(p float64) {
	e.mu.Lock()
	e.position = p
	e.mu.Unlock()
}

// SetVelocity drives the simulated velocity.
func (e *SimEncoder) SetVelocity(v float64) {
	e.mu.Lock()
	e.velocity = v
	e.mu.Unlock()
}

// Advance integrates the position by dt seconds of the current
// velocity.
func (e *SimEncoder) Advance(dt float64) {
	e.mu.Lock()
	e.position += e.velocity * dt
	e.mu.Unlock()
}

// SimGyro is an in-memory gyro.
type SimGyro struct {
	mu      sync.RWMutex
	heading float64
	offset  float64
}

// NewSimGyro creates a simulated gyro reading zero.
func NewSimGyro() *SimGyro { return &SimGyro{} }

// Heading returns the heading relative to the last Reset.
func (g *SimGyro) Heading() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.heading - g.offset
}

// Reset makes the current heading read as zero.
func (g *SimGyro) Reset() {
	g.mu.Lock()
	g.offset = g.heading
	g.mu.Unlock()
}

// SetHeading drives the simulated raw heading.
func (g *SimGyro) SetHeading(h float64) {
	g.mu.Lock()
	g.heading = h
	g.mu.Unlock()
}

// SimDigitalInput is an in-memory boolean sensor.
type SimDigitalInput struct {
	mu    sync.RWMutex
	state bool
}

// NewSimDigitalInput creates a simulated sensor reading false.
func NewSimDigitalInput() *SimDigitalInput { return &SimDigitalInput{} }

// Get returns the sensor state.
func (d *SimDigitalInput) Get() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// SetState drives the simulated sensor.
func (d *SimDigitalInput) SetState(v bool) {
	d.mu.Lock()
	d.state = v
	d.mu.Unlock()
}

// SimLEDStrip is an in-memory LED strip. Staged colors become visible
// on Show, matching addressable strip hardware.
type SimLEDStrip struct {
	mu     sync.RWMutex
	staged []Color
	shown  []Color
}

// NewSimLEDStrip creates a strip of n pixels, all off.
func NewSimLEDStrip(n int) *SimLEDStrip {
	return &SimLEDStrip{
		staged: make([]Color, n),
		shown:  make([]Color, n),
	}
}

// Len returns the number of pixels.
func (s *SimLEDStrip) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staged)
}

// Set stages the color of one pixel.
func (s *SimLEDStrip) Set(i int, c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.staged) {
		return
	}
	s.staged[i] = c
}

// Fill stages every pixel to the same color.
func (s *SimLEDStrip) Fill(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staged {
		s.staged[i] = c
	}
}

// Show makes staged pixels visible.
func (s *SimLEDStrip) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.shown, s.staged)
}

// Pixel returns the visible color of one pixel.
func (s *SimLEDStrip) Pixel(i int) Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.shown) {
		return Color{}
	}
	return s.shown[i]
}

// Compile-time interface satisfaction checks.
var (
	_ Motor        = (*SimMotor)(nil)
	_ Encoder      = (*SimEncoder)(nil)
	_ Gyro         = (*SimGyro)(nil)
	_ DigitalInput = (*SimDigitalInput)(nil)
	_ LEDStrip     = (*SimLEDStrip)(nil)
)
