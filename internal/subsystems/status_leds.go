package subsystems

import (
	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
)

// StatusLEDs drives the addressable strip along the elevator. LED
// commands keep running while the robot is disabled so the strip stays
// alive in the pit.
type StatusLEDs struct {
	strip hal.LEDStrip

	patternEntry *dashboard.Entry
	pattern      string
}

// NewStatusLEDs creates the LED subsystem from its hardware.
func NewStatusLEDs(d Devices) *StatusLEDs {
	return &StatusLEDs{strip: d.LEDs}
}

// Name returns the subsystem name.
func (s *StatusLEDs) Name() string { return "StatusLEDs" }

// Len returns the number of pixels on the strip.
func (s *StatusLEDs) Len() int { return s.strip.Len() }

// Set stages one pixel.
func (s *StatusLEDs) Set(i int, c hal.Color) { s.strip.Set(i, c) }

// Fill stages every pixel to the same color.
func (s *StatusLEDs) Fill(c hal.Color) { s.strip.Fill(c) }

// Show pushes staged pixels to the strip.
func (s *StatusLEDs) Show() { s.strip.Show() }

// SetPattern records the active pattern name for telemetry.
func (s *StatusLEDs) SetPattern(name string) { s.pattern = name }

// InitDashboard registers LED telemetry.
func (s *StatusLEDs) InitDashboard(tab *dashboard.Tab) {
	s.patternEntry = tab.AddString("LED Pattern", "")
}

// Periodic publishes telemetry.
func (s *StatusLEDs) Periodic() {
	if s.patternEntry != nil {
		_ = s.patternEntry.SetString(s.pattern)
	}
}
