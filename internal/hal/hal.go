package hal

// Motor is a single speed controller.
type Motor interface {
	// Set commands the motor output in [-1, 1]. Out-of-range values
	// are clamped.
	Set(output float64)

	// Get returns the last commanded output.
	Get() float64

	// Stop sets the output to zero.
	Stop()
}

// Encoder measures the position of a mechanism.
type Encoder interface {
	// Position returns the current position in mechanism units
	// (meters for linear mechanisms, degrees for rotary ones).
	Position() float64

	// Velocity returns the current velocity in units per second.
	Velocity() float64

	// Reset zeroes the position.
	Reset()
}

// Gyro measures robot heading.
type Gyro interface {
	// Heading returns the robot heading in degrees, counterclockwise
	// positive, unbounded.
	Heading() float64

	// Reset makes the current heading read as zero.
	Reset()
}

// DigitalInput is a boolean sensor such as a beam break or limit
// switch.
type DigitalInput interface {
	// Get returns the sensor state.
	Get() bool
}

// Color is an RGB LED color.
type Color struct {
	R, G, B uint8
}

// LEDStrip is an addressable LED strip.
type LEDStrip interface {
	// Len returns the number of pixels.
	Len() int

	// Set stages the color of one pixel. Out-of-range indices are
	// ignored.
	Set(i int, c Color)

	// Fill stages every pixel to the same color.
	Fill(c Color)

	// Show pushes staged pixel data to the strip.
	Show()
}
